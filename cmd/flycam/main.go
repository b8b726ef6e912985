package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/internal/openglhelper"
	"github.com/leterax/go-flycam/pkg/config"
	"github.com/leterax/go-flycam/pkg/input"
	"github.com/leterax/go-flycam/pkg/render"
	"github.com/leterax/go-flycam/pkg/scene"
)

var (
	//go:embed shaders/vert.glsl
	vertexShaderSource string
	//go:embed shaders/frag.glsl
	fragmentShaderSource string
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML camera profile (empty for defaults)")
	fps := flag.Bool("fps", true, "FPS-style movement: walk level, Up/Down keys move vertically")
	constrainPitch := flag.Bool("constrain-pitch", true, "Clamp pitch to [-89, 89] degrees")
	vsync := flag.Bool("vsync", true, "Enable vsync")
	gridSize := flag.Int("grid", 24, "Number of floor cubes along each axis")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Explicit flags override the profile
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.Camera.FPS = *fps
		case "constrain-pitch":
			cfg.Camera.ConstrainPitch = *constrainPitch
		case "vsync":
			cfg.Window.VSync = *vsync
		}
	})

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	fmt.Printf("OpenGL version: %s\n", window.GLVersion())

	width, height := window.Size()
	camera, err := cfg.NewCamera(width, height)
	if err != nil {
		log.Fatalf("Failed to create camera: %v", err)
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		log.Fatalf("Failed to load shader: %v", err)
	}
	defer shader.Delete()

	mesh := openglhelper.NewMesh(scene.CubeGrid(*gridSize, 2))
	defer mesh.Delete()

	bindCallbacks(window, camera)
	window.SetMouseCaptured(true)

	keys := camera.Bindings()
	log.Printf("Move with %v/%v/%v/%v, %v/%v for up/down (fps=%v). C toggles mouse capture, Esc quits.",
		keys.Forward, keys.Left, keys.Back, keys.Right, keys.Up, keys.Down, cfg.Camera.FPS)

	run(window, camera, shader, mesh)
}

func bindCallbacks(window *openglhelper.Window, camera *render.Camera) {
	window.SetKeyCallback(func(key input.Key, pressed bool) {
		if !pressed {
			return
		}
		switch key {
		case input.KeyEscape:
			window.SetShouldClose(true)
		case input.KeyC:
			window.ToggleMouseCaptured()
			camera.ResetMouse()
		}
	})

	window.SetCursorPosCallback(func(xpos, ypos float64) {
		if window.IsMouseCaptured() {
			camera.MoveDirection(xpos, ypos)
		}
	})

	window.SetScrollCallback(camera.Zoom)

	window.SetResizeCallback(func(width, height int) {
		// Minimised windows report 0x0
		if width == 0 || height == 0 {
			return
		}
		camera.Resize(float32(width), float32(height))
	})
}

func run(window *openglhelper.Window, camera *render.Camera, shader *openglhelper.Shader, mesh *openglhelper.Mesh) {
	background := mgl32.Vec4{0.05, 0.05, 0.1, 1.0}
	lastFrameTime := openglhelper.Time()

	for !window.ShouldClose() {
		currentTime := openglhelper.Time()
		deltaTime := float32(currentTime - lastFrameTime)
		lastFrameTime = currentTime

		camera.MovePosition(window, deltaTime)
		camera.Update()

		window.Clear(background)
		shader.Use()
		shader.SetMat4("view", camera.View())
		shader.SetMat4("projection", camera.Projection())
		mesh.Draw()

		window.SwapBuffers()
		window.PollEvents()
	}
}
