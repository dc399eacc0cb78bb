package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Rotation rl.Quaternion // Local to world orientation
}

// NewOBB creates an OBB from center, full size and orientation.
func NewOBB(center, size rl.Vector3, rotation rl.Quaternion) OBB {
	return OBB{
		Center:   center,
		HalfSize: rl.Vector3Scale(size, 0.5),
		Rotation: rotation,
	}
}

// Raycast intersects a ray with the box by moving the ray into the box's
// local frame and running the slab test there.
func (o OBB) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	inv := rl.QuaternionInvert(o.Rotation)
	localOrigin := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(origin, o.Center), inv)
	localDir := rl.Vector3RotateByQuaternion(direction, inv)

	box := AABB{Min: rl.Vector3Negate(o.HalfSize), Max: o.HalfSize}
	hit, ok := RaycastAABB(localOrigin, localDir, box, maxDistance)
	if !ok {
		return RaycastHit{}, false
	}
	hit.Point = rl.Vector3Add(o.Center, rl.Vector3RotateByQuaternion(hit.Point, o.Rotation))
	hit.Normal = rl.Vector3RotateByQuaternion(hit.Normal, o.Rotation)
	return hit, true
}
