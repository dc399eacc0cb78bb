package world

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Z: 10},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func TestFrustumContainsSphere(t *testing.T) {
	f := NewFrustum(testCamera(), 16.0/9.0)

	cases := []struct {
		name   string
		center rl.Vector3
		radius float32
		want   bool
	}{
		{"in front", rl.Vector3{}, 0.5, true},
		{"behind camera", rl.Vector3{Z: 20}, 0.5, false},
		{"far to the side", rl.Vector3{X: 100}, 0.5, false},
		{"straddling the edge", rl.Vector3{X: 6}, 3, true},
		{"beyond far plane", rl.Vector3{Z: -2000}, 1, false},
	}
	for _, tc := range cases {
		if got := f.ContainsSphere(tc.center, tc.radius); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}
