package world

import (
	"fmt"

	"freeform/internal/engine"
	"freeform/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HolderName is the default name of the group the controls hang from.
const HolderName = "controls_holder"

// World is a scene plus the controls editing one object in it.
type World struct {
	Scene    *engine.Scene
	Holder   *engine.GameObject
	Controls *gizmo.Controls

	colors     map[uint64]rl.Color
	meshSizes  map[uint64]rl.Vector3
	separation *rl.Vector3
}

func New(name string) *World {
	return &World{
		Scene:     engine.NewScene(name),
		colors:    make(map[uint64]rl.Color),
		meshSizes: make(map[uint64]rl.Vector3),
	}
}

// Color is the display colour of g.
func (w *World) Color(g *engine.GameObject) rl.Color {
	if c, ok := w.colors[g.UID]; ok {
		return c
	}
	return rl.LightGray
}

// MeshSize is the box size g was created with.
func (w *World) MeshSize(g *engine.GameObject) (rl.Vector3, bool) {
	size, ok := w.meshSizes[g.UID]
	return size, ok
}

// AddBox adds a box-meshed object under parent, or under the scene root
// when parent is nil.
func (w *World) AddBox(name string, parent *engine.GameObject, size rl.Vector3, color rl.Color) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Mesh = engine.NewBoxMesh(size)
	w.meshSizes[g.UID] = size
	w.colors[g.UID] = color
	if parent != nil {
		parent.AddChild(g)
	}
	w.Scene.AddGameObject(g)
	return g
}

// AttachControls builds controls for target and hangs them from a holder
// group directly under the scene root.
func (w *World) AttachControls(target *engine.GameObject, opts ...gizmo.Option) (*gizmo.Controls, error) {
	if target == nil || target.Scene != w.Scene {
		return nil, fmt.Errorf("attach controls: target not in scene %q", w.Scene.Name)
	}
	if w.Holder == nil {
		w.Holder = engine.NewGameObject(HolderName)
		w.Scene.AddGameObject(w.Holder)
	}
	if w.Controls != nil {
		w.Scene.RemoveGameObject(w.Controls.Object())
	}
	w.separation = nil
	c := gizmo.New(target, opts...)
	w.Holder.AddChild(c.Object())
	w.Scene.AddGameObject(c.Object())
	w.Controls = c
	return c, nil
}

// Objects returns the scene's objects except the holder and the controls.
func (w *World) Objects() []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(w.Scene.GameObjects))
	for _, g := range w.Scene.GameObjects {
		if g == w.Holder || (w.Controls != nil && g == w.Controls.Object()) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Demo builds a small scene: a rotated, scaled parent with a child box
// under controls, plus a few loose boxes.
func Demo(cfg gizmo.Config) *World {
	w := New("demo")
	w.AddBox("floor_marker", nil, rl.Vector3{X: 0.5, Y: 0.1, Z: 0.5}, rl.Gray)

	parent := w.AddBox("parent", nil, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.SkyBlue)
	parent.Transform.Position = rl.Vector3{X: -2, Y: 1, Z: 0}
	parent.Transform.Rotation = engine.QuaternionFromEulerXYZ(engine.Deg2Rad(rl.Vector3{Y: 30}))
	parent.Transform.Scale = rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}

	child := w.AddBox("child", parent, rl.Vector3{X: 0.6, Y: 0.6, Z: 0.6}, rl.Orange)
	child.Transform.Position = rl.Vector3{X: 2, Y: 0.5, Z: 0}

	loose := w.AddBox("crate", nil, rl.Vector3{X: 1, Y: 2, Z: 1}, rl.Lime)
	loose.Transform.Position = rl.Vector3{X: 3, Y: 1, Z: -2}

	// child is in the scene, so this cannot fail
	_, _ = w.AttachControls(child, gizmo.WithConfig(cfg))
	return w
}
