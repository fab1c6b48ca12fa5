// Command triangle-legacy draws a triangle with fixed-function immediate-mode
// calls into a single-buffered window.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"gltut/internal/app"
	"gltut/internal/config"
	"gltut/internal/scene"
	"gltut/internal/window"

	"github.com/go-gl/gl/v2.1/gl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML settings file (default "+config.DefaultPath+" if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("triangle-legacy failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	defaults := config.Default()
	defaults.Window.Width = 640
	defaults.Window.Height = 480
	defaults.Window.Title = "Simple Triangle"

	env, err := app.Setup(configPath, defaults, window.Options{
		Profile:        window.Legacy,
		SingleBuffered: true,
		InitGL:         gl.Init,
		OnResize: func(w, h int) {
			gl.Viewport(0, 0, int32(w), int32(h))
		},
	})
	if err != nil {
		return err
	}
	defer env.Close()

	session := env.NewSession()
	defer session.Close()
	session.Swap = false

	env.Log.Info("OpenGL context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	session.Run(func(float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.Begin(gl.TRIANGLES)
		for _, v := range scene.Triangle2D {
			gl.Vertex2f(v[0], v[1])
		}
		gl.End()

		gl.Flush()
	})
	return nil
}
