// Command scene is a free-fly camera (WASD + mouse) over twenty colored
// triangles standing on a textured ground plane.
package main

import (
	"flag"
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"gltut/internal/app"
	"gltut/internal/camera"
	"gltut/internal/config"
	"gltut/internal/input"
	"gltut/internal/mesh"
	"gltut/internal/scene"
	"gltut/internal/shader"
	"gltut/internal/texture"
	"gltut/internal/window"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	groundHalfSize = 100
	groundHeight   = -1
	groundTiles    = 50
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML settings file (default "+config.DefaultPath+" if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("scene failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	defaults := config.Default()
	defaults.Window.Width = 1920
	defaults.Window.Height = 1080
	defaults.Window.Title = "Textured and Colored Triangles"
	defaults.Window.Samples = 8
	defaults.Camera.FOV = 90

	lens := camera.NewLens(defaults.Camera.FOV, defaults.Window.Width, defaults.Window.Height,
		defaults.Camera.Near, defaults.Camera.Far)
	env, err := app.Setup(configPath, defaults, window.Options{
		Profile:       window.Core,
		CaptureCursor: true,
		InitGL:        gl.Init,
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

	settings := env.Config.Camera
	lens.FOV, lens.Near, lens.Far = settings.FOV, settings.Near, settings.Far

	program, err := shader.NewBuilder(shader.GLDriver{}, env.Log).Build(
		env.Config.ShaderPath("scene.vert"),
		env.Config.ShaderPath("scene.frag"),
	)
	if err != nil {
		return err
	}
	defer program.Delete()

	triangles, err := mesh.New(scene.Interleave(scene.SceneTriangles), mesh.PositionNormalColor)
	if err != nil {
		return err
	}
	defer triangles.Delete()

	ground, err := mesh.New(
		scene.GroundPlane(groundHalfSize, groundHeight, groundTiles, [3]float32{0.3, 0.3, 0.3}),
		mesh.PositionNormalColorUV,
	)
	if err != nil {
		return err
	}
	defer ground.Delete()

	img, err := groundImage(env.Config.Scene.GroundTexture)
	if err != nil {
		return err
	}
	groundTex := texture.Upload(img)
	defer groundTex.Delete()

	// camera state is only touched from GLFW callbacks and the loop, both on
	// the main thread
	cam := camera.Default()
	w, h := env.Window.GetSize()
	mouse := camera.NewMouse(float64(w)/2, float64(h)/2)
	env.Window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		var dx, dy float32
		mouse, dx, dy = mouse.Offset(x, y)
		cam = cam.Look(dx, dy, settings.Sensitivity)
	})

	keys := input.NewManager()
	keys.Attach(env.Window)

	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.3, 0.3, 0.3, 1.0)

	light := scene.DefaultSceneLight()

	session.Run(func(dt float32) {
		if keys.JustPressed(input.ActionQuit) {
			env.Window.SetShouldClose(true)
		}
		cam = cam.Move(keys.Movement(), dt, settings.Speed)
		keys.PostUpdate()

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		program.Use()

		scene.Transform{
			Model:      mgl32.Ident4(),
			View:       cam.View(),
			Projection: lens.Projection(),
		}.Apply(program)
		light.Apply(program, cam.Position)

		program.SetBool("useTexture", false)
		triangles.DrawAll()

		groundTex.Bind(0)
		program.SetInt("groundTexture", 0)
		program.SetBool("useTexture", true)
		ground.DrawAll()
	})
	return nil
}

// groundImage loads the configured ground texture, or generates a cement-like
// checkerboard when none is set.
func groundImage(path string) (*image.RGBA, error) {
	if path == "" {
		return texture.Checker(256, 8, color.RGBA{235, 235, 230, 255}, color.RGBA{200, 200, 195, 255}), nil
	}
	return texture.Load(path)
}
