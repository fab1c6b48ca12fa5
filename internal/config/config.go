// Package config loads demo settings from an optional TOML file layered
// over per-demo defaults.
package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// DefaultPath is read when no explicit path is given.
const DefaultPath = "gltut.toml"

type Window struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	Samples int    `toml:"samples"`
	VSync   bool   `toml:"vsync"`
	// FPSLimit caps the frame rate when positive.
	FPSLimit int `toml:"fps_limit"`
}

type Shaders struct {
	Dir string `toml:"dir"`
}

type Camera struct {
	Speed       float32 `toml:"speed"`
	Sensitivity float32 `toml:"sensitivity"`
	FOV         float32 `toml:"fov"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
}

type Scene struct {
	// GroundTexture is an image file for the ground plane. Empty selects a
	// generated checkerboard.
	GroundTexture string `toml:"ground_texture"`
}

type Log struct {
	Level string `toml:"level"`
}

// Config holds every setting a demo reads.
type Config struct {
	Window  Window  `toml:"window"`
	Shaders Shaders `toml:"shaders"`
	Camera  Camera  `toml:"camera"`
	Scene   Scene   `toml:"scene"`
	Log     Log     `toml:"log"`
}

// Default returns the settings shared by all demos, with an 800x600 window.
func Default() Config {
	return Config{
		Window:  Window{Width: 800, Height: 600, Title: "gltut", VSync: true},
		Shaders: Shaders{Dir: filepath.Join("assets", "shaders")},
		Camera:  Camera{Speed: 5, Sensitivity: 0.1, FOV: 45, Near: 0.1, Far: 100},
		Log:     Log{Level: "info"},
	}
}

// Load reads path over defaults. A missing file is not an error when path is
// DefaultPath; an explicitly named file must exist.
func Load(path string, defaults Config) (Config, error) {
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return defaults, nil
		}
		return defaults, errors.Wrap(err, "read config")
	}

	cfg := defaults
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaults, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return defaults, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings no demo can run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return errors.Errorf("window samples %d must not be negative", c.Window.Samples)
	}
	if c.Window.FPSLimit < 0 {
		return errors.Errorf("window fps_limit %d must not be negative", c.Window.FPSLimit)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return errors.Errorf("camera clip range [%v, %v] is invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return errors.Errorf("camera fov %v must be in (0, 180)", c.Camera.FOV)
	}
	return nil
}

// ShaderPath returns the path of a file in the shader directory.
func (c Config) ShaderPath(name string) string {
	return filepath.Join(c.Shaders.Dir, name)
}
