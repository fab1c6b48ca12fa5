// Command diffuse shades a triangle with per-fragment diffuse lighting from
// a point light.
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
		slog.Error("diffuse failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	defaults := config.Default()
	defaults.Window.Title = "Triangle with Diffuse Lighting"

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
		env.Config.ShaderPath("diffuse.vert"),
		env.Config.ShaderPath("diffuse.frag"),
	)
	if err != nil {
		return err
	}
	defer program.Delete()

	triangle, err := mesh.New(scene.DiffuseTriangle, mesh.PositionNormal)
	if err != nil {
		return err
	}
	defer triangle.Delete()

	light := scene.DefaultDiffuseLight()

	session.Run(func(float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)
		program.Use()
		light.Apply(program)
		triangle.DrawAll()
	})
	return nil
}
