package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-flycam/pkg/input"
)

// KeyBindings maps the six movement directions to keys
type KeyBindings struct {
	Forward input.Key
	Back    input.Key
	Left    input.Key
	Right   input.Key
	Up      input.Key
	Down    input.Key
}

// DefaultKeyBindings returns WASD with Space/Left Shift for up/down
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Forward: input.KeyW,
		Back:    input.KeyS,
		Left:    input.KeyA,
		Right:   input.KeyD,
		Up:      input.KeySpace,
		Down:    input.KeyLeftShift,
	}
}

// Camera implements a free-fly camera driven by keyboard and mouse input
type Camera struct {
	// Viewport, only used for the aspect ratio
	width  float32
	height float32

	keys KeyBindings

	// Mouse state
	lastX      float64
	lastY      float64
	firstMouse bool

	// Euler angles
	yaw              float32
	pitch            float32
	pitchConstrained bool

	// In fps mode walking ignores the vertical look component and
	// up/down keys move vertically
	fps bool

	// Camera options
	speed       float32
	sensitivity float32
	zoom        float32

	// Position and orientation
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3

	view       mgl32.Mat4
	projection mgl32.Mat4
}

// NewCamera creates a camera at (0, 0, 5) looking down -Z.
// View and projection are identity until the first call to Update.
func NewCamera(width, height float32, keys KeyBindings, mouseX, mouseY float64, constrainPitch, fpsStyle bool) *Camera {
	return &Camera{
		width:            width,
		height:           height,
		keys:             keys,
		lastX:            mouseX,
		lastY:            mouseY,
		firstMouse:       true,
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		pitchConstrained: constrainPitch,
		fps:              fpsStyle,
		speed:            DefaultMoveSpeed,
		sensitivity:      DefaultSensitivity,
		zoom:             DefaultFOV,
		position:         mgl32.Vec3{0, 0, 5},
		front:            mgl32.Vec3{0, 0, -1},
		up:               mgl32.Vec3{0, 1, 0},
		view:             mgl32.Ident4(),
		projection:       mgl32.Ident4(),
	}
}

// MovePosition moves the camera according to the held movement keys.
// frameTime is the time since the last frame in seconds.
//
// Only one of left, right, forward, back applies per call, checked in that
// order. In fps mode the up/down keys also shift front.y by the step; the
// next UpdateCameraFront rebuilds front from yaw and pitch and drops it.
func (c *Camera) MovePosition(in input.State, frameTime float32) {
	ms := c.speed * frameTime

	front := c.front
	if c.fps {
		// Stay level when walking
		front[1] = 0

		if in.KeyPressed(c.keys.Up) {
			c.position[1] += ms
			c.front[1] += ms
		} else if in.KeyPressed(c.keys.Down) {
			c.position[1] -= ms
			c.front[1] -= ms
		}
	}

	switch {
	case in.KeyPressed(c.keys.Left):
		c.position = c.position.Sub(front.Cross(c.up).Normalize().Mul(ms))
	case in.KeyPressed(c.keys.Right):
		c.position = c.position.Add(front.Cross(c.up).Normalize().Mul(ms))
	case in.KeyPressed(c.keys.Forward):
		c.position = c.position.Add(front.Mul(ms))
	case in.KeyPressed(c.keys.Back):
		c.position = c.position.Sub(front.Mul(ms))
	}
}

// MoveDirection updates yaw and pitch from a cursor position. The first
// sample after construction or ResetMouse only records the baseline.
func (c *Camera) MoveDirection(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastX)
	yoffset := float32(c.lastY - ypos) // Reversed: y ranges bottom to top

	c.lastX = xpos
	c.lastY = ypos

	c.yaw += xoffset * c.sensitivity
	c.pitch += yoffset * c.sensitivity

	if c.pitchConstrained {
		c.pitch = mgl32.Clamp(c.pitch, MinPitch, MaxPitch)
	}
}

// Zoom narrows or widens the field of view from a scroll offset.
// The horizontal offset is ignored.
func (c *Camera) Zoom(xoffset, yoffset float64) {
	c.zoom -= float32(yoffset)
	c.zoom = mgl32.Clamp(c.zoom, MinFOV, MaxFOV)
}

// UpdateCameraFront recalculates the front vector from yaw and pitch
func (c *Camera) UpdateCameraFront() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
}

// UpdateProjection recalculates the perspective projection.
// A zero height is not guarded against.
func (c *Camera) UpdateProjection() {
	aspect := c.width / c.height
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, NearPlane, FarPlane)
}

// UpdateView recalculates the look-at view matrix
func (c *Camera) UpdateView() {
	c.view = mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// Update recomputes front, projection and view. Call it once per frame after
// all input for the frame has been handled.
func (c *Camera) Update() {
	c.UpdateCameraFront()
	c.UpdateProjection()
	c.UpdateView()
}

// Projection returns the projection matrix from the last update
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the view matrix from the last update
func (c *Camera) View() mgl32.Mat4 {
	return c.view
}

// ViewProjection returns Projection() * View()
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.view)
}

// Resize sets the viewport size used for the aspect ratio.
// Takes effect on the next UpdateProjection.
func (c *Camera) Resize(width, height float32) {
	c.width = width
	c.height = height
}

// ResetMouse makes the next MoveDirection a calibration sample again,
// e.g. after the cursor was released and recaptured.
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// Position returns the camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Front returns the camera's front direction vector
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Up returns the camera's up vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// Orientation returns yaw and pitch in degrees
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// FOV returns the vertical field of view in degrees
func (c *Camera) FOV() float32 {
	return c.zoom
}

func (c *Camera) Speed() float32 {
	return c.speed
}

// SetSpeed sets the movement speed in units per second
func (c *Camera) SetSpeed(speed float32) {
	c.speed = speed
}

func (c *Camera) Sensitivity() float32 {
	return c.sensitivity
}

// SetSensitivity sets degrees of rotation per unit of cursor movement
func (c *Camera) SetSensitivity(sensitivity float32) {
	c.sensitivity = sensitivity
}

// Bindings returns the camera's key bindings
func (c *Camera) Bindings() KeyBindings {
	return c.keys
}
