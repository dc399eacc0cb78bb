package gizmo

import (
	"freeform/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update reconciles the target with the controls. Call it once per frame.
//
// While translating, the wrapper's position becomes the target's world
// position. While rotating, the accumulated world orientation is written
// as the target's local rotation. While idle, the wrapper follows the
// target. The target's world orientation is then read back as the base
// for the next frame. A pending Undo is written before any of this. force
// also refreshes the cached world matrices of the target and wrapper
// subtrees.
//
// A wrapper that is not a grandchild of the scene root aborts the update
// with ErrNotAttachedToScene before anything is written.
func (c *Controls) Update(force bool) error {
	target := c.target
	if c.pendingUndo != nil {
		if _, err := c.sceneRoot(); err != nil {
			return err
		}
		c.pendingUndo.restore(&c.handles)
		c.pendingUndo = nil
	}
	if force {
		target.UpdateWorldMatrix(true)
	}

	worldPosition := target.WorldPosition()
	parent := target.Parent
	parentInverse := rl.QuaternionIdentity()
	if parent != nil {
		parentInverse = rl.QuaternionInvert(parent.WorldTransform().Rotation)
	}
	targetPosition := c.wrapper.Transform.Position
	localRotation := rl.QuaternionNormalize(rl.QuaternionMultiply(parentInverse, c.targetRotation))

	switch c.Mode() {
	case Translating:
		if err := c.placeTarget(parent, targetPosition); err != nil {
			return err
		}
	case Rotating:
		if parent != nil {
			if _, err := c.sceneRoot(); err != nil {
				return err
			}
		}
		target.Transform.Rotation = localRotation
		if err := c.placeTarget(parent, targetPosition); err != nil {
			return err
		}
	default:
		c.wrapper.Transform.Position = worldPosition
	}

	c.targetRotation = target.WorldRotation()

	if force {
		c.wrapper.UpdateWorldMatrix(true)
	}
	return nil
}

// placeTarget moves the target to world position pos. The target is
// attached to the scene root, positioned there and attached back to
// parent, so pos is converted into parent's frame by the attach itself.
func (c *Controls) placeTarget(parent *engine.GameObject, pos rl.Vector3) error {
	target := c.target
	if parent == nil {
		target.Transform.Position = pos
		return nil
	}
	root, err := c.sceneRoot()
	if err != nil {
		return err
	}
	root.Attach(target)
	target.Transform.Position = pos
	parent.Attach(target)
	return nil
}

// sceneRoot returns the wrapper's grandparent if it is the scene root.
func (c *Controls) sceneRoot() (*engine.GameObject, error) {
	p := c.wrapper.Parent
	if p == nil || p.Parent == nil || !p.Parent.IsSceneRoot() {
		return nil, ErrNotAttachedToScene
	}
	return p.Parent, nil
}

// reconcileComponent runs Update from the scene's update loop.
type reconcileComponent struct {
	engine.BaseComponent
	controls *Controls
}

func (r *reconcileComponent) Update(deltaTime float32) {
	if err := r.controls.Update(false); err != nil {
		r.controls.OnError.Invoke(err)
	}
}
