// Command triangle draws a triangle from a vertex buffer with a minimal
// inline shader pair.
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

const (
	vertexSrc = `#version 410 core
layout(location = 0) in vec3 position;
void main() {
	gl_Position = vec4(position, 1.0);
}`

	fragmentSrc = `#version 410 core
out vec4 fragColor;
void main() {
	fragColor = vec4(1.0, 1.0, 1.0, 1.0);
}`
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML settings file (default "+config.DefaultPath+" if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("triangle failed", "err", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	defaults := config.Default()
	defaults.Window.Title = "Modern Triangle"

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

	// Core profile contexts draw nothing without a program bound.
	program, err := shader.NewBuilder(shader.GLDriver{}, env.Log).BuildSources(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	defer program.Delete()

	triangle, err := mesh.New(scene.Triangle, mesh.Position)
	if err != nil {
		return err
	}
	defer triangle.Delete()

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	program.Use()
	session.Run(func(float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)
		triangle.DrawAll()
	})
	return nil
}
