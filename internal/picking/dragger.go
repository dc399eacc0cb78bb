package picking

import (
	"errors"

	"freeform/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrMissedPlane is returned by PointerMove when the ray does not reach
// the drag plane; the session stays open.
var ErrMissedPlane = errors.New("pointer ray does not cross the drag plane")

// Dragger feeds pointer rays into a gizmo: it picks the handle on
// pointer-down, fixes the drag plane for the session and projects every
// move onto it.
type Dragger struct {
	controls *gizmo.Controls
	plane    Plane
	active   bool
}

func NewDragger(c *gizmo.Controls) *Dragger {
	return &Dragger{controls: c}
}

func (d *Dragger) Dragging() bool {
	return d.active
}

// Hover returns the handle under the ray, or nil.
func (d *Dragger) Hover(ray rl.Ray) *gizmo.Handle {
	hit, ok := Pick(ray, d.controls.Object().WorldTransform(), d.controls.InteractiveObjects())
	if !ok {
		return nil
	}
	return hit.Pickable.Handle
}

// PointerDown starts a drag if the ray hits a visible handle. It reports
// whether a drag started.
func (d *Dragger) PointerDown(ray rl.Ray, cameraPos rl.Vector3) (bool, error) {
	if d.active {
		return false, gizmo.ErrSessionActive
	}
	wrapper := d.controls.Object().WorldTransform()
	hit, ok := Pick(ray, wrapper, d.controls.InteractiveObjects())
	if !ok {
		return false, nil
	}
	h := hit.Pickable.Handle
	if err := d.controls.ProcessDragStart(gizmo.DragEvent{Point: hit.Point, Handle: h}); err != nil {
		return false, err
	}
	d.plane = DragPlane(h, wrapper.Position, hit.Point, cameraPos)
	d.active = true
	return true, nil
}

func (d *Dragger) PointerMove(ray rl.Ray) error {
	if !d.active {
		return nil
	}
	pt, ok := d.plane.Intersect(ray)
	if !ok {
		return ErrMissedPlane
	}
	return d.controls.ProcessHandle(gizmo.DragEvent{Point: pt, Handle: d.controls.ActiveHandle()})
}

func (d *Dragger) PointerUp() error {
	if !d.active {
		return nil
	}
	d.active = false
	return d.controls.ProcessDragEnd()
}
