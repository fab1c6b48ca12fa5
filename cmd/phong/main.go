// Command phong renders two triangles with ambient, diffuse and specular
// lighting under a perspective camera.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"gltut/internal/app"
	"gltut/internal/camera"
	"gltut/internal/config"
	"gltut/internal/mesh"
	"gltut/internal/scene"
	"gltut/internal/shader"
	"gltut/internal/window"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML settings file (default "+config.DefaultPath+" if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("phong failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	defaults := config.Default()
	defaults.Window.Title = "Phong Shading"

	lens := camera.NewLens(defaults.Camera.FOV, defaults.Window.Width, defaults.Window.Height,
		defaults.Camera.Near, defaults.Camera.Far)
	env, err := app.Setup(configPath, defaults, window.Options{
		Profile: window.Core,
		InitGL:  gl.Init,
		OnResize: func(w, h int) {
			gl.Viewport(0, 0, int32(w), int32(h))
			lens.SetViewport(w, h)
		},
	})
	if err != nil {
		return err
	}
	defer env.Close()

	session := env.NewSession()
	defer session.Close()

	cam := env.Config.Camera
	lens.FOV, lens.Near, lens.Far = cam.FOV, cam.Near, cam.Far

	program, err := shader.NewBuilder(shader.GLDriver{}, env.Log).Build(
		env.Config.ShaderPath("phong.vert"),
		env.Config.ShaderPath("phong.frag"),
	)
	if err != nil {
		return err
	}
	defer program.Delete()

	triangles, err := mesh.New(scene.PhongTriangles, mesh.PositionNormal)
	if err != nil {
		return err
	}
	defer triangles.Delete()

	gl.Enable(gl.DEPTH_TEST)

	light := scene.DefaultPhongLight()
	xf := scene.Transform{View: mgl32.Translate3D(0, 0, -3)}
	front := mgl32.Ident4()
	back := mgl32.Translate3D(0.5, 0, -0.5)

	session.Run(func(float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		program.Use()
		light.Apply(program)

		xf.Projection = lens.Projection()
		xf.Model = front
		xf.Apply(program)
		triangles.Draw(0, 3)

		program.SetMat4("model", back)
		triangles.Draw(3, 3)
	})
	return nil
}
