package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastAABB runs the slab test. direction must be normalized for
// Distance to be a length.
func RaycastAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max
	tmin := float32(-1e30)
	tmax := float32(1e30)

	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{min.X, min.Y, min.Z}
	hi := [3]float32{max.X, max.Y, max.Z}

	for i := range 3 {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal of the face closest to the hit point
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// RayPlaneIntersect returns where a ray hits a plane (defined by point +
// normal) and the ray parameter. Rays parallel to the plane or pointing
// away from it miss.
func RayPlaneIntersect(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, float32, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if abs(denom) < 1e-6 {
		return rl.Vector3{}, 0, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, 0, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), t, true
}
