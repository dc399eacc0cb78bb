package picking

import (
	"freeform/internal/gizmo"
	"freeform/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Plane struct {
	Point  rl.Vector3
	Normal rl.Vector3
}

// Intersect returns where the ray crosses the plane, from either side. A
// ray pointing away from the plane misses.
func (p Plane) Intersect(ray rl.Ray) (rl.Vector3, bool) {
	dir := rl.Vector3Normalize(ray.Direction)
	if pt, _, ok := physics.RayPlaneIntersect(ray.Position, dir, p.Point, p.Normal); ok {
		return pt, true
	}
	return rl.Vector3{}, false
}

var worldAxes = [3]rl.Vector3{
	{X: 1}, // X
	{Y: 1}, // Y
	{Z: 1}, // Z
}

// DragPlane is the surface pointer rays are projected onto while dragging
// h. Axis handles use the plane through the axis that faces the camera
// most; plane handles their own plane; the free handle a camera-facing
// plane; rotation rings the ring plane through the pivot.
func DragPlane(h *gizmo.Handle, pivot, hitPoint, cameraPos rl.Vector3) Plane {
	viewDir := rl.Vector3Normalize(rl.Vector3Subtract(hitPoint, cameraPos))

	switch h.Role {
	case gizmo.TranslateAxisX, gizmo.TranslateAxisY, gizmo.TranslateAxisZ:
		axis := worldAxes[h.Role-gizmo.TranslateAxisX]
		cross1 := rl.Vector3CrossProduct(viewDir, axis)
		normal := rl.Vector3CrossProduct(axis, cross1)
		if rl.Vector3Length(normal) < 1e-6 {
			// Looking straight down the axis
			normal = viewDir
		}
		return Plane{Point: hitPoint, Normal: rl.Vector3Normalize(normal)}
	case gizmo.TranslatePlaneXY:
		return Plane{Point: hitPoint, Normal: worldAxes[2]}
	case gizmo.TranslatePlaneYZ:
		return Plane{Point: hitPoint, Normal: worldAxes[0]}
	case gizmo.TranslatePlaneZX:
		return Plane{Point: hitPoint, Normal: worldAxes[1]}
	case gizmo.RotateX, gizmo.RotateY, gizmo.RotateZ:
		return Plane{Point: pivot, Normal: rl.Vector3Normalize(h.Up)}
	}
	return Plane{Point: hitPoint, Normal: rl.Vector3Negate(viewDir)}
}
