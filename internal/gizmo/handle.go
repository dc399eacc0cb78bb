package gizmo

import (
	"fmt"

	"freeform/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Role is the degree of freedom a handle controls.
type Role int

const (
	TranslateAxisX Role = iota
	TranslateAxisY
	TranslateAxisZ
	TranslatePlaneXY
	TranslatePlaneYZ
	TranslatePlaneZX
	TranslateFree
	RotateX
	RotateY
	RotateZ
)

var roleNames = [...]string{
	TranslateAxisX:   "TranslateAxisX",
	TranslateAxisY:   "TranslateAxisY",
	TranslateAxisZ:   "TranslateAxisZ",
	TranslatePlaneXY: "TranslatePlaneXY",
	TranslatePlaneYZ: "TranslatePlaneYZ",
	TranslatePlaneZX: "TranslatePlaneZX",
	TranslateFree:    "TranslateFree",
	RotateX:          "RotateX",
	RotateY:          "RotateY",
	RotateZ:          "RotateZ",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

// Mode is the drag mode a role puts the controls in.
func (r Role) Mode() Mode {
	switch r {
	case TranslateAxisX, TranslateAxisY, TranslateAxisZ,
		TranslatePlaneXY, TranslatePlaneYZ, TranslatePlaneZX,
		TranslateFree:
		return Translating
	case RotateX, RotateY, RotateZ:
		return Rotating
	}
	return Idle
}

// Mode is the state of the drag state machine.
type Mode int

const (
	Idle Mode = iota
	Translating
	Rotating
)

func (m Mode) String() string {
	switch m {
	case Translating:
		return "Translating"
	case Rotating:
		return "Rotating"
	}
	return "Idle"
}

// Shape selects the hit volume a host tests pointer rays against.
type Shape int

const (
	ShapeArrow Shape = iota // box along local +Y starting at the origin
	ShapeRing               // annulus in the local XY plane
	ShapeQuad               // thin box in the local XY plane
	ShapeCube               // cube centred on the origin
)

// Handle is one interactive part of the controls. Position and Rotation
// are relative to the controls' wrapper object; Rotation holds Euler
// angles in radians applied in X, Y, Z order.
type Handle struct {
	Name     string
	Role     Role
	Sign     float32 // +1 or -1 for axis handles, 0 otherwise
	Position rl.Vector3
	Rotation rl.Vector3
	Up       rl.Vector3
	Visible  bool
	Color    rl.Color

	pickable *Pickable
}

// Quaternion returns the handle's local orientation.
func (h *Handle) Quaternion() rl.Quaternion {
	return engine.QuaternionFromEulerXYZ(h.Rotation)
}

// Pickable returns the handle's hit volume.
func (h *Handle) Pickable() *Pickable {
	return h.pickable
}

// Pickable is the hit-testable geometry of a handle, in handle-local space.
// For rings Size.X is the radius and Size.Y the tube thickness.
type Pickable struct {
	Handle *Handle
	Shape  Shape
	Size   rl.Vector3
}

// World returns the pickable's world transform given the wrapper's.
func (p *Pickable) World(wrapper engine.Transform) engine.Transform {
	h := p.Handle
	return wrapper.Compose(engine.Transform{
		Position: h.Position,
		Rotation: h.Quaternion(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	})
}
