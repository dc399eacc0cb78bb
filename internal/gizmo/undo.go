package gizmo

import (
	"freeform/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// handlePose is the part of a Handle a rotation drag changes.
type handlePose struct {
	Name     string
	Rotation rl.Vector3
}

// undoState is the target's local transform and the handle poses when a
// drag began.
type undoState struct {
	object    *engine.GameObject
	transform engine.Transform
	handles   []handlePose
}

type undoStack struct {
	depth  int
	states []undoState
}

func (u *undoStack) push(obj *engine.GameObject, handles []*Handle) error {
	if u.depth <= 0 {
		return nil
	}
	state := undoState{
		object:    obj,
		transform: obj.Transform,
		handles:   make([]handlePose, len(handles)),
	}
	for i, h := range handles {
		if err := copier.Copy(&state.handles[i], h); err != nil {
			return err
		}
	}
	// Cap stack size
	if len(u.states) >= u.depth {
		u.states = u.states[1:]
	}
	u.states = append(u.states, state)
	return nil
}

func (u *undoStack) pop() (undoState, bool) {
	if len(u.states) == 0 {
		return undoState{}, false
	}
	state := u.states[len(u.states)-1]
	u.states = u.states[:len(u.states)-1]
	return state, true
}

func (u *undoStack) len() int {
	return len(u.states)
}

// restore writes the snapshot back. Only Update calls it.
func (s undoState) restore(r *registry) {
	s.object.Transform = s.transform
	for _, p := range s.handles {
		if h := r.byName(p.Name); h != nil {
			h.Rotation = p.Rotation
		}
	}
}
