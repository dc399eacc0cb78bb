// Package gizmo implements freeform transform controls: a set of handles
// around a target object that translate and rotate it from pointer drags.
//
// The host owns input and picking. It reports pointer-down, pointer-move
// and pointer-up on a handle as world-space points through
// ProcessDragStart, ProcessHandle and ProcessDragEnd, and calls Update
// once per frame. Pointer callbacks only move the controls' wrapper and
// handles; Update is the single place the target's transform is written.
package gizmo

import (
	"fmt"

	"freeform/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WrapperName is the name of the object the controls live on.
const WrapperName = "freeform_controls"

// Controls are the translate and rotate handles around one target object.
type Controls struct {
	cfg     Config
	target  *engine.GameObject
	wrapper *engine.GameObject
	bounds  Bounds
	handles registry

	drag *session

	// targetRotation is the target's world orientation, re-read from the
	// scene every Update and advanced by rotation drags in between.
	targetRotation rl.Quaternion

	undo undoStack
	// pendingUndo is applied to the target by the next Update.
	pendingUndo *undoState

	OnDragStart engine.EventWithArg[DragEvent]
	OnDrag      engine.EventWithArg[DragEvent]
	OnDragStop  engine.EventWithArg[DragEvent]
	// OnError receives errors from Updates driven by the scene loop.
	OnError engine.EventWithArg[error]
}

type options struct {
	cfg        Config
	separation *rl.Vector3
}

// Option configures New.
type Option func(*options)

// WithSeparation places the translation handles at ±separation/2 instead
// of deriving their placement from the target.
func WithSeparation(separation rl.Vector3) Option {
	return func(o *options) {
		o.separation = &separation
	}
}

// WithConfig replaces DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// New builds the controls for target. The returned controls' Object must
// be added by the host as a child of a node that sits directly under the
// scene root. The target is not owned: the controls only read its world
// transform and write its local position and rotation.
func New(target *engine.GameObject, opts ...Option) *Controls {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controls{
		cfg:            o.cfg,
		target:         target,
		wrapper:        engine.NewGameObject(WrapperName),
		targetRotation: target.WorldRotation(),
		undo:           undoStack{depth: o.cfg.UndoDepth},
	}
	c.bounds = ResolveBounds(target, o.separation, o.cfg.TranslationSeparation)
	c.handles = newRegistry(c.bounds, o.cfg)
	c.wrapper.Transform.Position = target.WorldPosition()
	c.wrapper.AddComponent(&reconcileComponent{controls: c})
	return c
}

// Object is the wrapper node carrying the controls' pose.
func (c *Controls) Object() *engine.GameObject {
	return c.wrapper
}

// Target is the object the controls move.
func (c *Controls) Target() *engine.GameObject {
	return c.target
}

// Bounds is the box the translation handles were laid out from.
func (c *Controls) Bounds() Bounds {
	return c.bounds
}

// Config returns the configuration the controls were built with.
func (c *Controls) Config() Config {
	return c.cfg
}

// Mode is Idle unless a drag session is live.
func (c *Controls) Mode() Mode {
	if c.drag == nil {
		return Idle
	}
	return c.drag.mode
}

// ActiveHandle is the handle of the live drag session, or nil.
func (c *Controls) ActiveHandle() *Handle {
	if c.drag == nil {
		return nil
	}
	return c.drag.handle
}

// DragStartPoint is the world point the live session began at.
func (c *Controls) DragStartPoint() (rl.Vector3, bool) {
	if c.drag == nil {
		return rl.Vector3{}, false
	}
	return c.drag.start, true
}

// Handles lists every handle in hit-test order.
func (c *Controls) Handles() []*Handle {
	return c.handles.all()
}

// Handle looks a handle up by name; see the Name constants.
func (c *Controls) Handle(name string) *Handle {
	return c.handles.byName(name)
}

// InteractiveObjects returns the hit volumes of all handles, visible or
// not, for the host's ray tests.
func (c *Controls) InteractiveObjects() []*Pickable {
	handles := c.handles.all()
	out := make([]*Pickable, 0, len(handles))
	for _, h := range handles {
		out = append(out, h.pickable)
	}
	return out
}

// ProcessDragStart opens a drag session on ev.Handle at ev.Point.
func (c *Controls) ProcessDragStart(ev DragEvent) error {
	if c.drag != nil {
		return ErrSessionActive
	}
	if ev.Handle == nil || !c.handles.owns(ev.Handle) {
		return ErrUnknownHandle
	}
	if c.pendingUndo != nil {
		return ErrUndoPending
	}
	if err := c.undo.push(c.target, c.handles.all()); err != nil {
		return fmt.Errorf("snapshot %s: %w", c.target.Name, err)
	}
	c.drag = newSession(ev)
	c.OnDragStart.Invoke(ev)
	return nil
}

// ProcessHandle applies the delta between the previous drag point and
// ev.Point. Translation moves the wrapper; rotation turns the handle and
// advances the orientation the next Update writes to the target.
func (c *Controls) ProcessHandle(ev DragEvent) error {
	if c.drag == nil {
		return ErrNoSession
	}
	if ev.Handle != c.drag.handle {
		return fmt.Errorf("%w: got %s, session on %s", ErrHandleMismatch, handleName(ev.Handle), c.drag.handle.Name)
	}

	from := c.drag.advance(ev.Point)
	switch c.drag.mode {
	case Translating:
		delta := translationDelta(ev.Handle.Role, from, ev.Point)
		c.wrapper.Transform.Position = rl.Vector3Add(c.wrapper.Transform.Position, delta)
	case Rotating:
		euler := rotationEuler(c.wrapper.Transform.Position, from, ev.Point)
		delta := applyRotation(ev.Handle, euler)
		c.targetRotation = rl.QuaternionNormalize(rl.QuaternionMultiply(delta, c.targetRotation))
	}
	c.OnDrag.Invoke(ev)
	return nil
}

// ProcessDragEnd closes the live session. No delta is applied.
func (c *Controls) ProcessDragEnd() error {
	if c.drag == nil {
		return ErrNoSession
	}
	ev := DragEvent{Point: c.drag.incremental, Handle: c.drag.handle}
	c.drag = nil
	c.OnDragStop.Invoke(ev)
	return nil
}

// Undo schedules the target's local transform from before the most recent
// drag; the next Update writes it. Repeated calls before that Update step
// further back. It does nothing while a drag is live.
func (c *Controls) Undo() bool {
	if c.drag != nil {
		return false
	}
	state, ok := c.undo.pop()
	if !ok {
		return false
	}
	c.pendingUndo = &state
	return true
}

// UndoDepth is the number of drags Undo can still revert.
func (c *Controls) UndoDepth() int {
	return c.undo.len()
}

// SetHandleColor recolours every handle with the given role.
func (c *Controls) SetHandleColor(role Role, color rl.Color) {
	for _, h := range c.handles.all() {
		if h.Role == role {
			h.Color = color
		}
	}
}

func handleName(h *Handle) string {
	if h == nil {
		return "<nil>"
	}
	return h.Name
}
