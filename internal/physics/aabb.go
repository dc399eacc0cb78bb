package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// AABBFromPoints returns the tightest box around points; ok is false when
// points is empty.
func AABBFromPoints(points []rl.Vector3) (box AABB, ok bool) {
	if len(points) == 0 {
		return AABB{}, false
	}
	box = AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = rl.Vector3Min(box.Min, p)
		box.Max = rl.Vector3Max(box.Max, p)
	}
	return box, true
}

// Expand grows every side of the box by pad.
func (a AABB) Expand(pad float32) AABB {
	d := rl.Vector3{X: pad, Y: pad, Z: pad}
	return AABB{Min: rl.Vector3Subtract(a.Min, d), Max: rl.Vector3Add(a.Max, d)}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}
