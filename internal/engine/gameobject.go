package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var uidCounter atomic.Uint64

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Mesh       *Mesh // optional, read by bounds computations
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool

	sceneRoot   bool
	matrixWorld rl.Matrix
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:         uidCounter.Add(1),
		Name:        name,
		Active:      true,
		Transform:   IdentityTransform(),
		components:  make([]Component, 0),
		Children:    make([]*GameObject, 0),
		matrixWorld: rl.MatrixIdentity(),
	}
}

// IsSceneRoot reports whether g is the root node owned by a Scene.
func (g *GameObject) IsSceneRoot() bool {
	return g.sceneRoot
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddChild parents child under g without touching its local transform.
// A child that already has a parent is removed from it first.
func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
	if g.Scene != nil && child.Scene != g.Scene {
		g.Scene.register(child)
	}
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// Attach reparents child under g while keeping its world transform: the
// child's local transform is recomputed in g's space.
func (g *GameObject) Attach(child *GameObject) {
	world := child.WorldTransform()
	child.Transform = g.WorldTransform().ToLocal(world)
	g.AddChild(child)
}

// Walk visits g and all its descendants depth-first. Returning false from
// fn skips the visited node's children.
func (g *GameObject) Walk(fn func(*GameObject) bool) {
	if !fn(g) {
		return
	}
	for _, c := range g.Children {
		c.Walk(fn)
	}
}

// WorldTransform composes the local transforms from the root down to g.
func (g *GameObject) WorldTransform() Transform {
	if g.Parent == nil {
		return g.Transform
	}
	return g.Parent.WorldTransform().Compose(g.Transform)
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	return g.WorldTransform().Position
}

func (g *GameObject) WorldRotation() rl.Quaternion {
	return g.WorldTransform().Rotation
}

func (g *GameObject) WorldScale() rl.Vector3 {
	return g.WorldTransform().Scale
}

// WorldMatrix computes the world matrix from the current transforms.
func (g *GameObject) WorldMatrix() rl.Matrix {
	return g.WorldTransform().Matrix()
}

// UpdateWorldMatrix refreshes the cached world matrix of g and its
// descendants. Inactive subtrees are skipped unless force is set.
func (g *GameObject) UpdateWorldMatrix(force bool) {
	var parent rl.Matrix
	if g.Parent != nil {
		parent = g.Parent.WorldMatrix()
	} else {
		parent = rl.MatrixIdentity()
	}
	g.updateWorldMatrix(parent, force)
}

func (g *GameObject) updateWorldMatrix(parent rl.Matrix, force bool) {
	if !g.Active && !force {
		return
	}
	g.matrixWorld = rl.MatrixMultiply(g.Transform.Matrix(), parent)
	for _, c := range g.Children {
		c.updateWorldMatrix(g.matrixWorld, force)
	}
}

// MatrixWorld returns the matrix cached by the last UpdateWorldMatrix.
func (g *GameObject) MatrixWorld() rl.Matrix {
	return g.matrixWorld
}
