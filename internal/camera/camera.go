package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees.
type OrbitCamera struct {
	Target      rl.Vector3
	Distance    float32
	Yaw         float32
	Pitch       float32
	LookSpeed   float32
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    12,
		Yaw:         45,
		Pitch:       30,
		LookSpeed:   0.3,
		ZoomSpeed:   1.0,
		MinDistance: 1,
		MaxDistance: 200,
	}
}

// Update applies right-drag orbiting and wheel zoom.
func (c *OrbitCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		c.Orbit(mouseDelta.X*c.LookSpeed, mouseDelta.Y*c.LookSpeed)
	}
	if scroll := rl.GetMouseWheelMove(); scroll != 0 {
		c.Zoom(-scroll * c.ZoomSpeed)
	}
}

// Orbit turns the camera by the given angles in degrees; pitch is kept
// short of the poles.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance = max(c.MinDistance, min(c.MaxDistance, c.Distance+delta))
}

// Position is the eye position derived from the orbit parameters.
func (c *OrbitCamera) Position() rl.Vector3 {
	yaw := c.Yaw * math32.Pi / 180
	pitch := c.Pitch * math32.Pi / 180
	offset := rl.Vector3{
		X: math32.Cos(pitch) * math32.Cos(yaw),
		Y: math32.Sin(pitch),
		Z: math32.Cos(pitch) * math32.Sin(yaw),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(offset, c.Distance))
}

func (c *OrbitCamera) Camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
