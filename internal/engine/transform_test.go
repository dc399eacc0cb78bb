package engine

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestComposeToLocalRoundTrip(t *testing.T) {
	parent := Transform{
		Position: rl.Vector3{X: -2, Y: 1, Z: 4},
		Rotation: QuaternionFromEulerXYZ(rl.Vector3{X: 0.4, Y: -1.1, Z: 0.25}),
		Scale:    rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5},
	}
	local := Transform{
		Position: rl.Vector3{X: 0.5, Y: -3, Z: 2},
		Rotation: QuaternionFromEulerXYZ(rl.Vector3{Z: 0.8}),
		Scale:    rl.Vector3{X: 1, Y: 2, Z: 1},
	}

	back := parent.ToLocal(parent.Compose(local))

	if !vecNear(back.Position, local.Position, 1e-4) {
		t.Errorf("Expected position %v, got %v", local.Position, back.Position)
	}
	if !quatNear(back.Rotation, local.Rotation, 1e-5) {
		t.Errorf("Expected rotation %v, got %v", local.Rotation, back.Rotation)
	}
	if !vecNear(back.Scale, local.Scale, 1e-5) {
		t.Errorf("Expected scale %v, got %v", local.Scale, back.Scale)
	}
}

func TestToLocalZeroScale(t *testing.T) {
	parent := IdentityTransform()
	parent.Scale = rl.Vector3{X: 0, Y: 1, Z: 1}

	got := parent.ToLocal(Transform{Position: rl.Vector3{X: 3}, Rotation: rl.QuaternionIdentity(), Scale: rl.Vector3{X: 1, Y: 1, Z: 1}})
	if math32.IsInf(got.Position.X, 0) || math32.IsNaN(got.Position.X) {
		t.Errorf("Expected finite position, got %v", got.Position)
	}
}

func TestEulerXYZRoundTrip(t *testing.T) {
	cases := []rl.Vector3{
		{},
		{X: 0.5},
		{Y: -0.7},
		{Z: 2.1},
		{X: 0.3, Y: 0.6, Z: -0.9},
		{X: -1.2, Y: 0.2, Z: 0.4},
	}
	for _, e := range cases {
		got := EulerXYZ(QuaternionFromEulerXYZ(e))
		if !vecNear(got, e, 1e-4) {
			t.Errorf("EulerXYZ(%v): got %v", e, got)
		}
	}
}

func TestQuaternionFromEulerXYZOrder(t *testing.T) {
	q := QuaternionFromEulerXYZ(rl.Vector3{X: math32.Pi / 2, Y: math32.Pi / 2})
	got := rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, q)
	// Ry first maps +X to -Z, then Rx maps -Z to +Y.
	want := rl.Vector3{Y: 1}
	if !vecNear(got, want, 1e-5) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMatrixMatchesCompose(t *testing.T) {
	tr := Transform{
		Position: rl.Vector3{X: 1, Y: 2, Z: 3},
		Rotation: QuaternionFromEulerXYZ(rl.Vector3{Y: 0.5}),
		Scale:    rl.Vector3{X: 2, Y: 2, Z: 2},
	}
	p := rl.Vector3{X: 0.5, Y: -1, Z: 0.25}

	want := tr.Compose(Transform{Position: p, Rotation: rl.QuaternionIdentity(), Scale: rl.Vector3{X: 1, Y: 1, Z: 1}}).Position
	got := rl.Vector3Transform(p, tr.Matrix())
	if !vecNear(got, want, 1e-4) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestDegRad(t *testing.T) {
	v := rl.Vector3{X: 90, Y: -45, Z: 180}
	if got := Rad2Deg(Deg2Rad(v)); !vecNear(got, v, 1e-3) {
		t.Errorf("Expected %v, got %v", v, got)
	}
	if got := Deg2Rad(rl.Vector3{X: 180}).X; math32.Abs(got-math32.Pi) > 1e-6 {
		t.Errorf("Expected pi, got %f", got)
	}
}
