package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAABBFromPoints(t *testing.T) {
	box, ok := AABBFromPoints([]rl.Vector3{
		{X: 1, Y: -2, Z: 0},
		{X: -3, Y: 4, Z: 1},
		{X: 0, Y: 0, Z: -5},
	})
	if !ok {
		t.Fatal("Expected a box")
	}
	if box.Min != (rl.Vector3{X: -3, Y: -2, Z: -5}) {
		t.Errorf("Expected min (-3,-2,-5), got %v", box.Min)
	}
	if box.Max != (rl.Vector3{X: 1, Y: 4, Z: 1}) {
		t.Errorf("Expected max (1,4,1), got %v", box.Max)
	}

	if _, ok := AABBFromPoints(nil); ok {
		t.Error("Expected no box for no points")
	}
}

func TestAABBExpand(t *testing.T) {
	box := AABB{Min: rl.Vector3{X: -1, Y: -1, Z: -1}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}}.Expand(0.5)
	if box.Min != (rl.Vector3{X: -1.5, Y: -1.5, Z: -1.5}) || box.Max != (rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}) {
		t.Errorf("Expected ±1.5 box, got %v..%v", box.Min, box.Max)
	}
	if box.Size() != (rl.Vector3{X: 3, Y: 3, Z: 3}) {
		t.Errorf("Expected size 3, got %v", box.Size())
	}
	if box.Center() != (rl.Vector3{}) {
		t.Errorf("Expected centre at origin, got %v", box.Center())
	}
}

func TestAABBContains(t *testing.T) {
	box := AABB{Min: rl.Vector3{}, Max: rl.Vector3{X: 1, Y: 1, Z: 1}}
	if !box.Contains(rl.Vector3{X: 0.5, Y: 1, Z: 0}) {
		t.Error("Points on the surface are inside")
	}
	if box.Contains(rl.Vector3{X: 1.01, Y: 0.5, Z: 0.5}) {
		t.Error("Point outside reported inside")
	}
}
