package replay

import (
	"errors"
	"fmt"

	"freeform/internal/engine"
	"freeform/internal/gizmo"
	"freeform/internal/picking"
	"freeform/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrNoControls = errors.New("scene has no controls")

// Frame is the state after one step.
type Frame struct {
	Step        int
	Op          Op
	Mode        gizmo.Mode
	Wrapper     rl.Vector3
	TargetLocal engine.Transform
	TargetWorld engine.Transform
}

type Result struct {
	Frames []Frame
}

// Final is the state after the last step.
func (r Result) Final() (Frame, bool) {
	if len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Run executes the script against w's controls and stops at the first
// failing step.
func Run(w *world.World, s Script) (Result, error) {
	c := w.Controls
	if c == nil {
		return Result{}, ErrNoControls
	}
	dragger := picking.NewDragger(c)
	camera := s.Camera.RL()

	var res Result
	for i, st := range s.Steps {
		if err := runStep(c, dragger, camera, st); err != nil {
			return res, fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
		if s.AutoUpdate && st.Op != OpUpdate && st.Op != OpShow {
			if err := c.Update(false); err != nil {
				return res, fmt.Errorf("step %d (%s): update: %w", i+1, st.Op, err)
			}
		}
		res.Frames = append(res.Frames, snapshot(i+1, st.Op, c))
	}
	return res, nil
}

func runStep(c *gizmo.Controls, d *picking.Dragger, camera rl.Vector3, st Step) error {
	switch st.Op {
	case OpStart:
		h := c.Handle(st.Handle)
		if h == nil {
			return fmt.Errorf("%w: %q", gizmo.ErrUnknownHandle, st.Handle)
		}
		return c.ProcessDragStart(gizmo.DragEvent{Point: st.Point.RL(), Handle: h})
	case OpMove:
		return c.ProcessHandle(gizmo.DragEvent{Point: st.Point.RL(), Handle: c.ActiveHandle()})
	case OpEnd:
		if d.Dragging() {
			return d.PointerUp()
		}
		return c.ProcessDragEnd()
	case OpUpdate:
		return c.Update(st.Force)
	case OpShow:
		visible := true
		if st.Visible != nil {
			visible = *st.Visible
		}
		if !c.ShowSubset(st.Subset, visible) {
			return fmt.Errorf("unknown subset %q", st.Subset)
		}
		return nil
	case OpUndo:
		if !c.Undo() {
			return errors.New("nothing to undo")
		}
		return nil
	case OpRayDown:
		ok, err := d.PointerDown(st.Ray.RL(), camera)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("ray hits no handle")
		}
		return nil
	case OpRayMove:
		return d.PointerMove(st.Ray.RL())
	}
	return fmt.Errorf("unknown op %q", st.Op)
}

func snapshot(step int, op Op, c *gizmo.Controls) Frame {
	t := c.Target()
	return Frame{
		Step:        step,
		Op:          op,
		Mode:        c.Mode(),
		Wrapper:     c.Object().Transform.Position,
		TargetLocal: t.Transform,
		TargetWorld: t.WorldTransform(),
	}
}
