// Command triangle-shaders draws a triangle with a shader pair loaded from
// files.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"gltut/internal/app"
	"gltut/internal/config"
	"gltut/internal/mesh"
	"gltut/internal/scene"
	"gltut/internal/shader"
	"gltut/internal/window"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML settings file (default "+config.DefaultPath+" if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("triangle-shaders failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	defaults := config.Default()
	defaults.Window.Title = "Triangle with Shaders"

	env, err := app.Setup(configPath, defaults, window.Options{
		Profile: window.Core,
		InitGL:  gl.Init,
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

	program, err := shader.NewBuilder(shader.GLDriver{}, env.Log).Build(
		env.Config.ShaderPath("passthrough.vert"),
		env.Config.ShaderPath("passthrough.frag"),
	)
	if err != nil {
		return err
	}
	defer program.Delete()

	triangle, err := mesh.New(scene.Triangle, mesh.Position)
	if err != nil {
		return err
	}
	defer triangle.Delete()

	session.Run(func(float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)
		program.Use()
		triangle.DrawAll()
	})
	return nil
}
