package world

import (
	"freeform/internal/engine"
	"freeform/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxPickDistance = 1e6

// Renderer draws the world's boxes. It must be used between
// rl.BeginMode3D and rl.EndMode3D.
type Renderer struct {
	GridSlices  int32
	GridSpacing float32
	Selected    rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{
		GridSlices:  20,
		GridSpacing: 1,
		Selected:    rl.Yellow,
	}
}

// Draw renders every active box inside the camera's view volume.
func (r *Renderer) Draw(w *World, camera rl.Camera3D, aspect float32) {
	rl.DrawGrid(r.GridSlices, r.GridSpacing)
	frustum := NewFrustum(camera, aspect)

	var selected *engine.GameObject
	if w.Controls != nil {
		selected = w.Controls.Target()
	}
	for _, g := range w.Objects() {
		if !g.Active {
			continue
		}
		size, ok := w.MeshSize(g)
		if !ok {
			continue
		}
		world := g.WorldTransform()
		if !frustum.ContainsSphere(world.Position, boundingRadius(world, size)) {
			continue
		}
		color := w.Color(g)
		drawBox(world, size, color)
		if g == selected {
			drawBoxWires(world, size, r.Selected)
		} else {
			drawBoxWires(world, size, rl.Fade(rl.Black, 0.6))
		}
	}
}

func boundingRadius(world engine.Transform, size rl.Vector3) float32 {
	return rl.Vector3Length(rl.Vector3Multiply(size, world.Scale)) / 2
}

// boxFaces lists each face of boxCorners counter-clockwise seen from outside.
var boxFaces = [6][4]int{
	{0, 3, 2, 1}, // -Z
	{4, 5, 6, 7}, // +Z
	{0, 4, 7, 3}, // -X
	{1, 2, 6, 5}, // +X
	{0, 1, 5, 4}, // -Y
	{3, 7, 6, 2}, // +Y
}

func drawBox(world engine.Transform, size rl.Vector3, color rl.Color) {
	corners := boxCorners(world, size)
	for _, f := range boxFaces {
		rl.DrawTriangle3D(corners[f[0]], corners[f[1]], corners[f[2]], color)
		rl.DrawTriangle3D(corners[f[0]], corners[f[2]], corners[f[3]], color)
	}
}

func drawBoxWires(world engine.Transform, size rl.Vector3, color rl.Color) {
	corners := boxCorners(world, size)
	// Bottom face
	rl.DrawLine3D(corners[0], corners[1], color)
	rl.DrawLine3D(corners[1], corners[2], color)
	rl.DrawLine3D(corners[2], corners[3], color)
	rl.DrawLine3D(corners[3], corners[0], color)
	// Top face
	rl.DrawLine3D(corners[4], corners[5], color)
	rl.DrawLine3D(corners[5], corners[6], color)
	rl.DrawLine3D(corners[6], corners[7], color)
	rl.DrawLine3D(corners[7], corners[4], color)
	// Vertical edges
	rl.DrawLine3D(corners[0], corners[4], color)
	rl.DrawLine3D(corners[1], corners[5], color)
	rl.DrawLine3D(corners[2], corners[6], color)
	rl.DrawLine3D(corners[3], corners[7], color)
}

func boxCorners(world engine.Transform, size rl.Vector3) [8]rl.Vector3 {
	var corners [8]rl.Vector3
	for i, v := range engine.NewBoxMesh(size).Vertices {
		corners[i] = world.Compose(engine.Transform{
			Position: v,
			Rotation: rl.QuaternionIdentity(),
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		}).Position
	}
	return corners
}

// ObjectAt returns the nearest active box the ray hits.
func (w *World) ObjectAt(ray rl.Ray) (*engine.GameObject, bool) {
	dir := rl.Vector3Normalize(ray.Direction)
	var best *engine.GameObject
	bestDist := float32(maxPickDistance)
	for _, g := range w.Objects() {
		size, ok := w.MeshSize(g)
		if !g.Active || !ok {
			continue
		}
		world := g.WorldTransform()
		box := physics.NewOBB(world.Position, rl.Vector3Multiply(size, world.Scale), world.Rotation)
		if hit, ok := box.Raycast(ray.Position, dir, maxPickDistance); ok && hit.Distance < bestDist {
			best = g
			bestDist = hit.Distance
		}
	}
	return best, best != nil
}
