package gizmo

import (
	"freeform/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// translationDelta returns to-from with only the components role moves.
// Non-translation roles yield zero.
func translationDelta(role Role, from, to rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(to, from)
	switch role {
	case TranslateAxisX:
		return rl.Vector3{X: d.X}
	case TranslateAxisY:
		return rl.Vector3{Y: d.Y}
	case TranslateAxisZ:
		return rl.Vector3{Z: d.Z}
	case TranslatePlaneXY:
		return rl.Vector3{X: d.X, Y: d.Y}
	case TranslatePlaneYZ:
		return rl.Vector3{Y: d.Y, Z: d.Z}
	case TranslatePlaneZX:
		return rl.Vector3{X: d.X, Z: d.Z}
	case TranslateFree:
		return d
	}
	return rl.Vector3{}
}

// rotationEuler returns the XYZ Euler decomposition of the shortest-arc
// rotation taking (from - pivot) onto (to - pivot).
func rotationEuler(pivot, from, to rl.Vector3) rl.Vector3 {
	prev := rl.Vector3Normalize(rl.Vector3Subtract(from, pivot))
	curr := rl.Vector3Normalize(rl.Vector3Subtract(to, pivot))
	return engine.EulerXYZ(shortestArc(prev, curr))
}

// shortestArc is the minimal rotation mapping unit vector a onto unit
// vector b. Opposite vectors turn half way round an axis orthogonal to a;
// a zero vector on either side gives the identity.
func shortestArc(a, b rl.Vector3) rl.Quaternion {
	if rl.Vector3Length(a) == 0 || rl.Vector3Length(b) == 0 {
		return rl.QuaternionIdentity()
	}
	if rl.Vector3DotProduct(a, b) < -1+1e-6 {
		axis := rl.Vector3CrossProduct(rl.Vector3{X: 1}, a)
		if rl.Vector3Length(axis) < 1e-6 {
			axis = rl.Vector3CrossProduct(rl.Vector3{Y: 1}, a)
		}
		return rl.QuaternionFromAxisAngle(rl.Vector3Normalize(axis), math32.Pi)
	}
	return rl.QuaternionFromVector3ToVector3(a, b)
}

// applyRotation accumulates the Euler component matching h's role onto
// the handle and returns the world-space delta about h.Up.
//
// The Y ring is pre-rotated a quarter turn about X, so a turn about world
// Y shows up on its local Z with the opposite sign.
func applyRotation(h *Handle, euler rl.Vector3) rl.Quaternion {
	var angle float32
	switch h.Role {
	case RotateX:
		angle = euler.X
		h.Rotation.X += angle
	case RotateY:
		angle = euler.Y
		h.Rotation.Z += -angle
	case RotateZ:
		angle = euler.Z
		h.Rotation.Z += angle
	default:
		return rl.QuaternionIdentity()
	}
	return rl.QuaternionFromAxisAngle(h.Up, angle)
}
