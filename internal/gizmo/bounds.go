package gizmo

import (
	"freeform/internal/engine"
	"freeform/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoundsSource records which policy produced a Bounds.
type BoundsSource int

const (
	BoundsExplicit BoundsSource = iota
	BoundsMesh
	BoundsUnitCube
)

func (s BoundsSource) String() string {
	switch s {
	case BoundsExplicit:
		return "explicit"
	case BoundsMesh:
		return "mesh"
	}
	return "unit-cube"
}

// Bounds are the extents translation handles are placed on, in the
// target's local space.
type Bounds struct {
	Min    rl.Vector3
	Max    rl.Vector3
	Source BoundsSource
}

// ResolveBounds picks, in order: half of an explicit separation on each
// side, the target mesh's bounding box padded by padding, or a unit cube.
// It runs once at construction; later mesh edits are not tracked.
func ResolveBounds(target *engine.GameObject, separation *rl.Vector3, padding float32) Bounds {
	if separation != nil {
		half := rl.Vector3Scale(*separation, 0.5)
		return Bounds{Min: rl.Vector3Negate(half), Max: half, Source: BoundsExplicit}
	}
	if target != nil && target.Mesh != nil {
		if box, ok := physics.AABBFromPoints(target.Mesh.Vertices); ok {
			box = box.Expand(padding)
			return Bounds{Min: box.Min, Max: box.Max, Source: BoundsMesh}
		}
	}
	return Bounds{
		Min:    rl.Vector3{X: -1, Y: -1, Z: -1},
		Max:    rl.Vector3{X: 1, Y: 1, Z: 1},
		Source: BoundsUnitCube,
	}
}

// Box returns the bounds as an axis-aligned box.
func (b Bounds) Box() physics.AABB {
	return physics.AABB{Min: b.Min, Max: b.Max}
}
