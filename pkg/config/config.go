// Package config loads the flycam YAML profile: window settings, camera
// tunables and key bindings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
	"gopkg.in/yaml.v3"
)

// Config is the full profile
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
}

// Window holds the initial window settings
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Camera holds camera tunables and mode flags
type Camera struct {
	FPS            bool    `yaml:"fps"`
	ConstrainPitch bool    `yaml:"constrain_pitch"`
	Speed          float32 `yaml:"speed"`
	Sensitivity    float32 `yaml:"sensitivity"`
	Keys           Keys    `yaml:"keys"`
}

// Keys holds key names as accepted by input.ParseKey
type Keys struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Up      string `yaml:"up"`
	Down    string `yaml:"down"`
}

// Default returns the built-in profile
func Default() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "flycam",
			VSync:  true,
		},
		Camera: Camera{
			FPS:            true,
			ConstrainPitch: true,
			Speed:          render.DefaultMoveSpeed,
			Sensitivity:    render.DefaultSensitivity,
			Keys: Keys{
				Forward: "w",
				Back:    "s",
				Left:    "a",
				Right:   "d",
				Up:      "space",
				Down:    "left_shift",
			},
		},
	}
}

// Load reads a profile from path. Fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML profile on top of Default and validates it
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera speed must be positive, got %v", c.Camera.Speed))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity must be positive, got %v", c.Camera.Sensitivity))
	}
	if _, err := c.Bindings(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Bindings resolves the configured key names
func (c Config) Bindings() (render.KeyBindings, error) {
	var kb render.KeyBindings
	var errs []error

	for _, b := range []struct {
		field string
		name  string
		dst   *input.Key
	}{
		{"forward", c.Camera.Keys.Forward, &kb.Forward},
		{"back", c.Camera.Keys.Back, &kb.Back},
		{"left", c.Camera.Keys.Left, &kb.Left},
		{"right", c.Camera.Keys.Right, &kb.Right},
		{"up", c.Camera.Keys.Up, &kb.Up},
		{"down", c.Camera.Keys.Down, &kb.Down},
	} {
		k, err := input.ParseKey(b.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("key %s: %w", b.field, err))
			continue
		}
		*b.dst = k
	}

	return kb, errors.Join(errs...)
}

// NewCamera builds a camera for a viewport of the given size, with the
// cursor starting at its centre
func (c Config) NewCamera(width, height int) (*render.Camera, error) {
	kb, err := c.Bindings()
	if err != nil {
		return nil, err
	}

	cam := render.NewCamera(float32(width), float32(height), kb,
		float64(width)/2, float64(height)/2, c.Camera.ConstrainPitch, c.Camera.FPS)
	cam.SetSpeed(c.Camera.Speed)
	cam.SetSensitivity(c.Camera.Sensitivity)
	return cam, nil
}
