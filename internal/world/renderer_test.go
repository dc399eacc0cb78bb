package world

import (
	"testing"

	"freeform/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestBoxCorners(t *testing.T) {
	tr := engine.IdentityTransform()
	tr.Position = rl.Vector3{X: 10}
	tr.Scale = rl.Vector3{X: 2, Y: 1, Z: 1}

	corners := boxCorners(tr, rl.Vector3{X: 1, Y: 2, Z: 4})
	if !vecNear(corners[0], rl.Vector3{X: 9, Y: -1, Z: -2}) {
		t.Errorf("Expected first corner (9,-1,-2), got %v", corners[0])
	}
	if !vecNear(corners[6], rl.Vector3{X: 11, Y: 1, Z: 2}) {
		t.Errorf("Expected opposite corner (11,1,2), got %v", corners[6])
	}
}

func TestBoxFacesWindOutward(t *testing.T) {
	corners := boxCorners(engine.IdentityTransform(), rl.Vector3{X: 2, Y: 2, Z: 2})
	for i, f := range boxFaces {
		a, b, c := corners[f[0]], corners[f[1]], corners[f[2]]
		normal := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
		centre := rl.Vector3Scale(rl.Vector3Add(a, c), 0.5)
		if rl.Vector3DotProduct(normal, centre) <= 0 {
			t.Errorf("Face %d winds inward", i)
		}
	}
}
