package engine

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform is a parent-relative position, orientation and scale.
// Rotation is a unit quaternion.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

func IdentityTransform() Transform {
	return Transform{
		Position: rl.Vector3{},
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// Compose returns local expressed in the space t is defined in, i.e. the
// world transform of a child with transform local under a parent whose
// world transform is t. Non-uniform scale under rotation is approximated
// component-wise.
func (t Transform) Compose(local Transform) Transform {
	scaled := rl.Vector3Multiply(local.Position, t.Scale)
	return Transform{
		Position: rl.Vector3Add(t.Position, rl.Vector3RotateByQuaternion(scaled, t.Rotation)),
		Rotation: rl.QuaternionNormalize(rl.QuaternionMultiply(t.Rotation, local.Rotation)),
		Scale:    rl.Vector3Multiply(t.Scale, local.Scale),
	}
}

// ToLocal is the inverse of Compose: it expresses world in the space of a
// node whose world transform is t.
func (t Transform) ToLocal(world Transform) Transform {
	inv := rl.QuaternionInvert(t.Rotation)
	offset := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(world.Position, t.Position), inv)
	return Transform{
		Position: divide(offset, t.Scale),
		Rotation: rl.QuaternionNormalize(rl.QuaternionMultiply(inv, world.Rotation)),
		Scale:    divide(world.Scale, t.Scale),
	}
}

// Matrix builds the scale, then rotate, then translate matrix.
func (t Transform) Matrix() rl.Matrix {
	m := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	m = rl.MatrixMultiply(m, rl.QuaternionToMatrix(t.Rotation))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z))
}

// QuaternionFromEulerXYZ builds the rotation Rx(x)·Ry(y)·Rz(z) from
// angles in radians: the same rotation as rotating about local X, then
// local Y, then local Z.
func QuaternionFromEulerXYZ(euler rl.Vector3) rl.Quaternion {
	qx := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, euler.X)
	qy := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, euler.Y)
	qz := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, euler.Z)
	return rl.QuaternionMultiply(rl.QuaternionMultiply(qx, qy), qz)
}

// EulerXYZ is the inverse of QuaternionFromEulerXYZ. Near the Y = ±90°
// singularity Z is reported as zero.
func EulerXYZ(q rl.Quaternion) rl.Vector3 {
	q = rl.QuaternionNormalize(q)
	x, y, z, w := q.X, q.Y, q.Z, q.W
	m11 := 1 - 2*(y*y+z*z)
	m12 := 2 * (x*y - w*z)
	m13 := 2 * (x*z + w*y)
	m22 := 1 - 2*(x*x+z*z)
	m23 := 2 * (y*z - w*x)
	m32 := 2 * (y*z + w*x)
	m33 := 1 - 2*(x*x+y*y)

	var e rl.Vector3
	e.Y = math32.Asin(max(-1, min(1, m13)))
	if math32.Abs(m13) < 0.9999999 {
		e.X = math32.Atan2(-m23, m33)
		e.Z = math32.Atan2(-m12, m11)
	} else {
		e.X = math32.Atan2(m32, m22)
	}
	return e
}

// Deg2Rad converts a vector of Euler angles in degrees to radians.
func Deg2Rad(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(v, math32.Pi/180)
}

// Rad2Deg converts a vector of Euler angles in radians to degrees.
func Rad2Deg(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(v, 180/math32.Pi)
}

func divide(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: safeDiv(a.X, b.X), Y: safeDiv(a.Y, b.Y), Z: safeDiv(a.Z, b.Z)}
}

// safeDiv leaves the numerator untouched on a zero divisor instead of
// producing Inf/NaN.
func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}
