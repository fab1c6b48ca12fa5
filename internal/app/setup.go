package app

import (
	"log/slog"
	"os"

	"gltut/internal/config"
	"gltut/internal/window"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// Env is what every demo starts from.
type Env struct {
	Config config.Config
	Log    *slog.Logger
	Window *glfw.Window
}

// Setup loads the configuration at configPath over defaults, installs the
// logger, initializes GLFW and opens a window. Size, title, samples and
// vsync in opts are taken from the configuration. Must run on the locked
// main thread.
func Setup(configPath string, defaults config.Config, opts window.Options) (*Env, error) {
	cfg, err := config.Load(configPath, defaults)
	if err != nil {
		return nil, err
	}
	logger, err := NewLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "initialize GLFW")
	}

	opts.Width = cfg.Window.Width
	opts.Height = cfg.Window.Height
	opts.Title = cfg.Window.Title
	opts.Samples = cfg.Window.Samples
	opts.VSync = cfg.Window.VSync

	w, err := window.Open(opts)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	logger.Info("window opened", "title", opts.Title, "width", opts.Width, "height", opts.Height, "samples", opts.Samples)
	return &Env{Config: cfg, Log: logger, Window: w}, nil
}

// Close destroys the window and terminates GLFW.
func (e *Env) Close() {
	e.Window.Destroy()
	glfw.Terminate()
}

// NewSession starts a loop on the environment's window with the configured
// frame rate cap.
func (e *Env) NewSession() *Session {
	s := NewSession(e.Window, e.Log)
	s.FPSLimit = e.Config.Window.FPSLimit
	return s
}
