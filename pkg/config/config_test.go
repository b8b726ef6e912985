package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	kb, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, render.DefaultKeyBindings(), kb)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
camera:
  fps: false
  speed: 12.5
  keys:
    forward: up
    back: down
`))
	require.NoError(t, err)

	assert.False(t, cfg.Camera.FPS)
	assert.True(t, cfg.Camera.ConstrainPitch)
	assert.Equal(t, float32(12.5), cfg.Camera.Speed)
	assert.Equal(t, float32(0.1), cfg.Camera.Sensitivity)
	assert.Equal(t, 1280, cfg.Window.Width)

	kb, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, input.KeyUp, kb.Forward)
	assert.Equal(t, input.KeyDown, kb.Back)
	assert.Equal(t, input.KeyA, kb.Left)
	assert.Equal(t, input.KeyLeftShift, kb.Down)
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":    "camera: [",
		"zero width":  "window: {width: 0}",
		"neg speed":   "camera: {speed: -1}",
		"zero sens":   "camera: {sensitivity: 0}",
		"unknown key": "camera: {keys: {up: hyper}}",
	}
	for name, data := range cases {
		_, err := Parse([]byte(data))
		assert.Error(t, err, name)
	}

	_, err := Parse([]byte("camera: {keys: {left: nope}}"))
	assert.ErrorIs(t, err, input.ErrUnknownKey)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flycam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: {width: 640, height: 480, title: test}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "test", cfg.Window.Title)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewCamera(t *testing.T) {
	cfg := Default()
	cfg.Camera.Speed = 3
	cfg.Camera.Sensitivity = 0.25
	cfg.Camera.FPS = false

	cam, err := cfg.NewCamera(800, 600)
	require.NoError(t, err)
	assert.Equal(t, float32(3), cam.Speed())
	assert.Equal(t, float32(0.25), cam.Sensitivity())

	cam.Update()
	cam.MovePosition(input.NewPressed(input.KeySpace), 1)
	assert.InDelta(t, 0, cam.Position().Y(), 1e-6)

	cfg.Camera.Keys.Right = "???"
	_, err = cfg.NewCamera(800, 600)
	assert.ErrorIs(t, err, input.ErrUnknownKey)
}

func TestExampleProfileMatchesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "flycam.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
