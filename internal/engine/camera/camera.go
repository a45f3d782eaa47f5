// Package camera provides a first-person fly camera for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/trajectory/pkg/math"
)

// FlyCamera looks around with mouse yaw/pitch and moves along its view
// direction with WASD.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3

	Yaw   float32 // degrees, -90 looks down -Z
	Pitch float32 // degrees

	MaxPitch    float32
	Sensitivity float32 // degrees per pixel of mouse motion
	Speed       float32 // units per movement event

	// FOV and clip planes for the projection matrix.
	FOVDegrees float32
	Near, Far  float32

	hasLast      bool
	lastX, lastY float32
}

// NewFlyCamera creates a camera at (0, 0, 3) looking down -Z.
func NewFlyCamera() *FlyCamera {
	c := &FlyCamera{
		Position:    math.Vec3{X: 0, Y: 0, Z: 3},
		Up:          math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:         -90,
		Pitch:       0,
		MaxPitch:    89,
		Sensitivity: 0.1,
		Speed:       0.01,
		FOVDegrees:  45,
		Near:        0.1,
		Far:         100,
	}
	c.updateFront()
	return c
}

// ViewMatrix returns the view matrix for the current position and heading.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect.
func (c *FlyCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(c.FOVDegrees), aspect, c.Near, c.Far)
}

// HandleMouse updates yaw and pitch from an absolute cursor position. The
// first call only records the position.
func (c *FlyCamera) HandleMouse(x, y float32) {
	if !c.hasLast {
		c.lastX, c.lastY = x, y
		c.hasLast = true
		return
	}

	dx := x - c.lastX
	dy := c.lastY - y // screen Y grows downward
	c.lastX, c.lastY = x, y

	c.HandleLook(dx, dy)
}

// HandleLook applies a relative mouse delta.
func (c *FlyCamera) HandleLook(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	// Clamp pitch
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Pitch < -c.MaxPitch {
		c.Pitch = -c.MaxPitch
	}

	c.updateFront()
}

// HandleMovement moves the camera. forward and right are typically -1, 0
// or 1.
func (c *FlyCamera) HandleMovement(forward, right float32) {
	rightDir := c.Front.Cross(c.Up).Normalize()
	c.Position = c.Position.
		Add(c.Front.Scale(forward * c.Speed)).
		Add(rightDir.Scale(right * c.Speed))
}

func (c *FlyCamera) updateFront() {
	yaw := float64(math.Radians(c.Yaw))
	pitch := float64(math.Radians(c.Pitch))

	c.Front = math.Vec3{
		X: float32(gomath.Cos(yaw) * gomath.Cos(pitch)),
		Y: float32(gomath.Sin(pitch)),
		Z: float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}
