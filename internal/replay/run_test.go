package replay

import (
	"errors"
	"strings"
	"testing"

	"freeform/internal/gizmo"
	"freeform/internal/world"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const scene = `{
  "name": "replay",
  "objects": [
    {"name": "box", "position": [0, 0, 0], "box": [1, 1, 1]}
  ],
  "controls": {"target": "box", "separation": [2, 2, 2]}
}`

func load(t *testing.T) *world.World {
	t.Helper()
	w, err := world.Parse([]byte(scene), gizmo.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func near(a, b rl.Vector3) bool {
	return rl.Vector3Distance(a, b) < 1e-4
}

func mustParse(t *testing.T, data string) Script {
	t.Helper()
	s, err := ParseScript([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRunPointDrag(t *testing.T) {
	w := load(t)
	s := mustParse(t, `
auto_update: true
steps:
  - {op: start, handle: pick_plane_xy_handle, point: [0, 0, 0]}
  - {op: move, point: [1, 2, 5]}
  - {op: move, point: [3, 4, 5]}
  - {op: end}
`)
	res, err := Run(w, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Frames) != 4 {
		t.Fatalf("Expected 4 frames, got %d", len(res.Frames))
	}
	if res.Frames[1].Mode != gizmo.Translating || res.Frames[3].Mode != gizmo.Idle {
		t.Errorf("Unexpected modes %s / %s", res.Frames[1].Mode, res.Frames[3].Mode)
	}
	final, _ := res.Final()
	if !near(final.TargetWorld.Position, rl.Vector3{X: 3, Y: 4}) {
		t.Errorf("Expected target at (3,4,0), got %v", final.TargetWorld.Position)
	}
	if !near(final.Wrapper, rl.Vector3{X: 3, Y: 4}) {
		t.Errorf("Expected wrapper at (3,4,0), got %v", final.Wrapper)
	}
}

func TestRunWithoutAutoUpdate(t *testing.T) {
	w := load(t)
	s := mustParse(t, `
steps:
  - {op: start, handle: xt_handle, point: [1, 0, 0]}
  - {op: move, point: [2, 0, 0]}
  - {op: update}
  - {op: end}
`)
	res, err := Run(w, s)
	if err != nil {
		t.Fatal(err)
	}
	if !near(res.Frames[1].TargetWorld.Position, rl.Vector3{}) {
		t.Errorf("Target should not move before an update, got %v", res.Frames[1].TargetWorld.Position)
	}
	if !near(res.Frames[2].TargetWorld.Position, rl.Vector3{X: 1}) {
		t.Errorf("Expected target at (1,0,0) after update, got %v", res.Frames[2].TargetWorld.Position)
	}
}

func TestRunRayDrag(t *testing.T) {
	w := load(t)
	s := mustParse(t, `
auto_update: true
camera: [1.3, 5, 0]
steps:
  - {op: ray_down, ray: {origin: [1.3, 5, 0], direction: [0, -1, 0]}}
  - {op: ray_move, ray: {origin: [2.3, 5, 0], direction: [0, -1, 0]}}
  - {op: end}
`)
	res, err := Run(w, s)
	if err != nil {
		t.Fatal(err)
	}
	final, _ := res.Final()
	if !near(final.TargetWorld.Position, rl.Vector3{X: 1}) {
		t.Errorf("Expected target at (1,0,0), got %v", final.TargetWorld.Position)
	}
	if final.Mode != gizmo.Idle {
		t.Errorf("Expected Idle, got %s", final.Mode)
	}
}

func TestRunRotateAndUndo(t *testing.T) {
	w := load(t)
	s := mustParse(t, `
auto_update: true
steps:
  - {op: start, handle: zr_handle, point: [1, 0, 0]}
  - {op: move, point: [0, 1, 0]}
  - {op: end}
`)
	res, err := Run(w, s)
	if err != nil {
		t.Fatal(err)
	}
	final, _ := res.Final()
	want := rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, math32.Pi/2)
	got := final.TargetLocal.Rotation
	if d := math32.Abs(got.X*want.X + got.Y*want.Y + got.Z*want.Z + got.W*want.W); d < 1-1e-4 {
		t.Errorf("Expected quarter turn about Z, got %v", got)
	}

	res, err = Run(w, mustParse(t, "steps:\n  - {op: undo}\n  - {op: update}\n"))
	if err != nil {
		t.Fatal(err)
	}
	final, _ = res.Final()
	if final.TargetLocal.Rotation != rl.QuaternionIdentity() {
		t.Errorf("Expected undo to restore identity, got %v", final.TargetLocal.Rotation)
	}
}

func TestRunShowHidesFromRayPicks(t *testing.T) {
	w := load(t)
	s := mustParse(t, `
camera: [1.3, 5, 0]
steps:
  - {op: show, subset: xt, visible: false}
  - {op: ray_down, ray: {origin: [1.3, 5, 0], direction: [0, -1, 0]}}
`)
	_, err := Run(w, s)
	if err == nil || !strings.Contains(err.Error(), "step 2 (ray_down)") {
		t.Errorf("Expected step 2 to miss, got %v", err)
	}
	if w.Controls.Handle(gizmo.NameXT).Visible {
		t.Error("Expected X arrows hidden")
	}
}

func TestRunErrors(t *testing.T) {
	w := load(t)
	_, err := Run(w, mustParse(t, "steps:\n  - {op: move, point: [1, 0, 0]}\n"))
	if !errors.Is(err, gizmo.ErrNoSession) {
		t.Errorf("Expected ErrNoSession, got %v", err)
	}

	_, err = Run(w, mustParse(t, "steps:\n  - {op: start, handle: nope}\n"))
	if !errors.Is(err, gizmo.ErrUnknownHandle) {
		t.Errorf("Expected ErrUnknownHandle, got %v", err)
	}

	_, err = Run(w, mustParse(t, "steps:\n  - {op: show, subset: nope}\n"))
	if err == nil {
		t.Error("Expected error for unknown subset")
	}

	_, err = Run(world.New("empty"), Script{})
	if !errors.Is(err, ErrNoControls) {
		t.Errorf("Expected ErrNoControls, got %v", err)
	}
}
