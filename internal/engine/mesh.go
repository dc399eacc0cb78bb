package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Mesh is CPU-side geometry in the owning object's local space.
type Mesh struct {
	Vertices []rl.Vector3
}

// NewBoxMesh returns the eight corners of a box of the given full size
// centred on the origin.
func NewBoxMesh(size rl.Vector3) *Mesh {
	hx, hy, hz := size.X/2, size.Y/2, size.Z/2
	return &Mesh{Vertices: []rl.Vector3{
		{X: -hx, Y: -hy, Z: -hz},
		{X: hx, Y: -hy, Z: -hz},
		{X: hx, Y: hy, Z: -hz},
		{X: -hx, Y: hy, Z: -hz},
		{X: -hx, Y: -hy, Z: hz},
		{X: hx, Y: -hy, Z: hz},
		{X: hx, Y: hy, Z: hz},
		{X: -hx, Y: hy, Z: hz},
	}}
}
