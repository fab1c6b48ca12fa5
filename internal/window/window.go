// Package window creates GLFW windows with the context flavors the demos need.
package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// Profile selects the OpenGL context requested from GLFW.
type Profile int

const (
	// Core is an OpenGL 4.1 forward-compatible core context.
	Core Profile = iota
	// Legacy is a default (compatibility) context for fixed-function drawing.
	Legacy
)

// Options configures Open.
type Options struct {
	Width, Height int
	Title         string
	Profile       Profile
	// Samples enables MSAA with the given sample count when positive.
	Samples int
	// SingleBuffered draws straight to the front buffer; callers flush
	// instead of swapping.
	SingleBuffered bool
	VSync          bool
	CaptureCursor  bool

	// InitGL loads the GL bindings for the new context. It runs right after
	// the context is made current.
	InitGL func() error
	// OnResize is called with the framebuffer size on creation and on every
	// resize.
	OnResize func(width, height int)
}

// Open creates the window and makes its context current. glfw.Init must have
// been called on the locked main thread.
func Open(opts Options) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	if opts.Profile == Core {
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if opts.Samples > 0 {
		glfw.WindowHint(glfw.Samples, opts.Samples)
	}
	if opts.SingleBuffered {
		glfw.WindowHint(glfw.DoubleBuffer, glfw.False)
	}

	w, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}
	w.MakeContextCurrent()

	if opts.InitGL != nil {
		if err := opts.InitGL(); err != nil {
			w.Destroy()
			return nil, errors.Wrap(err, "initialize OpenGL")
		}
	}

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if opts.CaptureCursor {
		w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}

	if opts.OnResize != nil {
		w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
			opts.OnResize(width, height)
		})
		opts.OnResize(w.GetFramebufferSize())
	}
	return w, nil
}
