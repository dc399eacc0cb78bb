// Package picking turns pointer rays into the world-space drag points the
// gizmo consumes. It is host-side code: the gizmo itself never casts rays.
package picking

import (
	"freeform/internal/engine"
	"freeform/internal/gizmo"
	"freeform/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxPickDistance = 1e6

type Hit struct {
	Pickable *gizmo.Pickable
	Point    rl.Vector3
	Distance float32
}

// Pick returns the closest visible pickable the ray hits. wrapper is the
// world transform of the controls' wrapper object.
func Pick(ray rl.Ray, wrapper engine.Transform, objects []*gizmo.Pickable) (Hit, bool) {
	dir := rl.Vector3Normalize(ray.Direction)
	best := Hit{Distance: maxPickDistance}
	found := false
	for _, p := range objects {
		if p == nil || !p.Handle.Visible {
			continue
		}
		hit, ok := hitTest(ray.Position, dir, p.World(wrapper), p)
		if ok && hit.Distance < best.Distance {
			best = Hit{Pickable: p, Point: hit.Point, Distance: hit.Distance}
			found = true
		}
	}
	return best, found
}

func hitTest(origin, dir rl.Vector3, world engine.Transform, p *gizmo.Pickable) (physics.RaycastHit, bool) {
	switch p.Shape {
	case gizmo.ShapeArrow:
		// The arrow box starts at the handle origin and runs along local +Y.
		offset := rl.Vector3RotateByQuaternion(rl.Vector3{Y: p.Size.Y / 2}, world.Rotation)
		box := physics.NewOBB(rl.Vector3Add(world.Position, offset), p.Size, world.Rotation)
		return box.Raycast(origin, dir, maxPickDistance)
	case gizmo.ShapeQuad, gizmo.ShapeCube:
		return physics.NewOBB(world.Position, p.Size, world.Rotation).Raycast(origin, dir, maxPickDistance)
	case gizmo.ShapeRing:
		normal := rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, world.Rotation)
		pt, t, ok := physics.RayPlaneIntersect(origin, dir, world.Position, normal)
		if !ok {
			return physics.RaycastHit{}, false
		}
		distFromCenter := rl.Vector3Length(rl.Vector3Subtract(pt, world.Position))
		if math32.Abs(distFromCenter-p.Size.X) > p.Size.Y {
			return physics.RaycastHit{}, false
		}
		return physics.RaycastHit{Point: pt, Normal: normal, Distance: t}, true
	}
	return physics.RaycastHit{}, false
}
