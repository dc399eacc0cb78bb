// Package replay drives controls from a YAML drag script, so drags can be
// reproduced without a window.
package replay

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Op names a script step.
type Op string

const (
	OpStart   Op = "start"    // pointer-down on Handle at Point
	OpMove    Op = "move"     // pointer-move to Point
	OpEnd     Op = "end"      // pointer-up
	OpUpdate  Op = "update"   // one frame of reconciliation
	OpShow    Op = "show"     // visibility of Subset
	OpUndo    Op = "undo"     // revert the last drag on the next update
	OpRayDown Op = "ray_down" // pointer-down by picking along Ray
	OpRayMove Op = "ray_move" // pointer-move along Ray
)

type Script struct {
	// AutoUpdate runs an update after every pointer step, like a host that
	// renders a frame per input event.
	AutoUpdate bool   `yaml:"auto_update"`
	Camera     Vec3   `yaml:"camera"`
	Steps      []Step `yaml:"steps"`
}

type Step struct {
	Op      Op     `yaml:"op"`
	Handle  string `yaml:"handle,omitempty"`
	Point   Vec3   `yaml:"point,omitempty"`
	Subset  string `yaml:"subset,omitempty"`
	Visible *bool  `yaml:"visible,omitempty"`
	Ray     *Ray   `yaml:"ray,omitempty"`
	Force   bool   `yaml:"force,omitempty"`
}

type Ray struct {
	Origin    Vec3 `yaml:"origin"`
	Direction Vec3 `yaml:"direction"`
}

func (r Ray) RL() rl.Ray {
	return rl.Ray{Position: r.Origin.RL(), Direction: r.Direction.RL()}
}

// Vec3 is a YAML [x, y, z] sequence.
type Vec3 [3]float32

func (v Vec3) RL() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	var xs []float32
	if err := value.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: want 3 components, got %d", value.Line, len(xs))
	}
	copy(v[:], xs)
	return nil
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return Script{}, fmt.Errorf("parse script: step %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpStart:
		if s.Handle == "" {
			return fmt.Errorf("%s needs a handle", s.Op)
		}
	case OpShow:
		if s.Subset == "" {
			return fmt.Errorf("%s needs a subset", s.Op)
		}
	case OpRayDown, OpRayMove:
		if s.Ray == nil {
			return fmt.Errorf("%s needs a ray", s.Op)
		}
	case OpMove, OpEnd, OpUpdate, OpUndo:
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
	return nil
}
