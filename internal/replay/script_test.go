package replay

import (
	"strings"
	"testing"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`
auto_update: true
camera: [0, 5, 10]
steps:
  - op: start
    handle: xt_handle
    point: [1, 0, 0]
  - op: move
    point: [2, 0, 0]
  - op: end
  - op: show
    subset: xr
    visible: false
  - op: ray_down
    ray: {origin: [0, 5, 0], direction: [0, -1, 0]}
`))
	if err != nil {
		t.Fatal(err)
	}
	if !s.AutoUpdate {
		t.Error("Expected auto_update")
	}
	if s.Camera != (Vec3{0, 5, 10}) {
		t.Errorf("Expected camera (0,5,10), got %v", s.Camera)
	}
	if len(s.Steps) != 5 {
		t.Fatalf("Expected 5 steps, got %d", len(s.Steps))
	}
	if s.Steps[0].Handle != "xt_handle" || s.Steps[0].Point != (Vec3{1, 0, 0}) {
		t.Errorf("Unexpected first step %+v", s.Steps[0])
	}
	if s.Steps[3].Visible == nil || *s.Steps[3].Visible {
		t.Error("Expected explicit visible: false")
	}
	if s.Steps[4].Ray == nil || s.Steps[4].Ray.RL().Direction.Y != -1 {
		t.Errorf("Unexpected ray %+v", s.Steps[4].Ray)
	}
}

func TestParseScriptErrors(t *testing.T) {
	cases := map[string]string{
		"unknown op":     "steps:\n  - op: jump\n",
		"start no name":  "steps:\n  - op: start\n",
		"show no subset": "steps:\n  - op: show\n",
		"ray no ray":     "steps:\n  - op: ray_move\n",
		"short vector":   "steps:\n  - op: move\n    point: [1, 2]\n",
		"bad yaml":       "steps: [",
	}
	for name, data := range cases {
		if _, err := ParseScript([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		} else if !strings.HasPrefix(err.Error(), "parse script") {
			t.Errorf("%s: expected parse script error, got %v", name, err)
		}
	}
}
