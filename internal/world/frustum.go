package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear float32 = 0.1
	cullFar  float32 = 1000
)

// Frustum holds the six view planes used to skip boxes the camera cannot
// see: left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]cullPlane
}

// cullPlane is the plane normal·p + distance = 0 with the normal facing
// into the frustum.
type cullPlane struct {
	normal   rl.Vector3
	distance float32
}

// NewFrustum extracts the planes of camera's view volume from its
// view-projection matrix (Gribb/Hartmann).
func NewFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, cullNear, cullFar)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, cullNear, cullFar)
	}
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	var f Frustum
	for i := range 3 {
		f.planes[2*i] = planeFromRow(rows[3], rows[i], 1)
		f.planes[2*i+1] = planeFromRow(rows[3], rows[i], -1)
	}
	return f
}

// planeFromRow combines w ± row into a normalized plane.
func planeFromRow(w, row [4]float32, sign float32) cullPlane {
	p := cullPlane{
		normal: rl.Vector3{
			X: w[0] + sign*row[0],
			Y: w[1] + sign*row[1],
			Z: w[2] + sign*row[2],
		},
		distance: w[3] + sign*row[3],
	}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return cullPlane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}
