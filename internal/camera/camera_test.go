package camera

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOrbitClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Orbit(0, 500)
	if c.Pitch != 89 {
		t.Errorf("Expected pitch 89, got %f", c.Pitch)
	}
	c.Orbit(0, -1000)
	if c.Pitch != -89 {
		t.Errorf("Expected pitch -89, got %f", c.Pitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(-1000)
	if c.Distance != c.MinDistance {
		t.Errorf("Expected distance %f, got %f", c.MinDistance, c.Distance)
	}
	c.Zoom(1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("Expected distance %f, got %f", c.MaxDistance, c.Distance)
	}
}

func TestPositionKeepsDistance(t *testing.T) {
	target := rl.Vector3{X: 1, Y: 2, Z: 3}
	c := New(target)
	c.Yaw = 10
	c.Pitch = 20
	d := rl.Vector3Distance(c.Position(), target)
	if d < c.Distance-1e-3 || d > c.Distance+1e-3 {
		t.Errorf("Expected distance %f from target, got %f", c.Distance, d)
	}
}
