package gizmo

import (
	"freeform/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transforms are float32, and a reparent round trip through a scaled,
// rotated parent loses a few ulps per component, so 1e-6 is too tight.
const (
	posEps = 1e-4
	rotEps = 1e-4
)

// rig is a scene with a holder group under the root and controls on
// target hanging from it.
type rig struct {
	scene    *engine.Scene
	holder   *engine.GameObject
	target   *engine.GameObject
	controls *Controls
}

// newRig builds controls for target. A nil parent puts target directly
// under the scene root.
func newRig(target, parent *engine.GameObject, opts ...Option) *rig {
	scene := engine.NewScene("test")
	if parent != nil {
		scene.AddGameObject(parent)
		parent.AddChild(target)
	} else {
		scene.AddGameObject(target)
	}
	holder := engine.NewGameObject("holder")
	scene.AddGameObject(holder)

	c := New(target, opts...)
	holder.AddChild(c.Object())
	return &rig{scene: scene, holder: holder, target: target, controls: c}
}

// drag runs a full start, move..., end session with an Update after
// every move.
func (r *rig) drag(name string, points ...rl.Vector3) error {
	h := r.controls.Handle(name)
	if err := r.controls.ProcessDragStart(DragEvent{Point: points[0], Handle: h}); err != nil {
		return err
	}
	for _, p := range points[1:] {
		if err := r.controls.ProcessHandle(DragEvent{Point: p, Handle: h}); err != nil {
			return err
		}
		if err := r.controls.Update(false); err != nil {
			return err
		}
	}
	return r.controls.ProcessDragEnd()
}

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Distance(a, b) <= eps
}

// quatNear treats q and -q as the same rotation.
func quatNear(a, b rl.Quaternion, eps float32) bool {
	d := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	if d < 0 {
		d = -d
	}
	return d >= 1-eps
}

func near(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}
