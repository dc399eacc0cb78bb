package gizmo

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Config holds the visual sizes and colours of the controls and the
// padding used when bounds come from a mesh.
type Config struct {
	// TranslationSeparation pads every side of a mesh bounding box.
	TranslationSeparation float32 `yaml:"translation_separation"`

	ArrowLength    float32 `yaml:"arrow_length"`
	ArrowWidth     float32 `yaml:"arrow_width"`
	RingRadius     float32 `yaml:"ring_radius"`
	RingThickness  float32 `yaml:"ring_thickness"`
	PlaneWidth     float32 `yaml:"plane_width"`
	PlaneHeight    float32 `yaml:"plane_height"`
	PlaneThickness float32 `yaml:"plane_thickness"`
	PickSize       float32 `yaml:"pick_size"`

	// UndoDepth caps the number of drags Undo can revert.
	UndoDepth int `yaml:"undo_depth"`

	Colors Colors `yaml:"colors"`
}

type Colors struct {
	X       HexColor `yaml:"x"`
	Y       HexColor `yaml:"y"`
	Z       HexColor `yaml:"z"`
	PlaneXY HexColor `yaml:"plane_xy"`
	PlaneYZ HexColor `yaml:"plane_yz"`
	PlaneZX HexColor `yaml:"plane_zx"`
	Pick    HexColor `yaml:"pick"`
	Active  HexColor `yaml:"active"`
}

func DefaultConfig() Config {
	return Config{
		TranslationSeparation: 0.5,
		ArrowLength:           0.6,
		ArrowWidth:            0.1,
		RingRadius:            1,
		RingThickness:         0.1,
		PlaneWidth:            0.75,
		PlaneHeight:           0.75,
		PlaneThickness:        0.02,
		PickSize:              0.2,
		UndoDepth:             50,
		Colors: Colors{
			X:       HexColor(rl.Red),
			Y:       HexColor(rl.Green),
			Z:       HexColor(rl.Blue),
			PlaneXY: HexColor(rl.Yellow),
			PlaneYZ: HexColor(rl.NewColor(0, 255, 255, 255)),
			PlaneZX: HexColor(rl.Pink),
			Pick:    HexColor(rl.White),
			Active:  HexColor(rl.Orange),
		},
	}
}

// LoadConfig reads a YAML config over the defaults. A missing file yields
// the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read gizmo config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse gizmo config: %w", err)
	}
	return cfg, nil
}

// HexColor is an rl.Color written as "#rrggbb" or "#rrggbbaa" in YAML.
type HexColor rl.Color

func (c HexColor) RGBA() rl.Color {
	return rl.Color(c)
}

func (c HexColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c HexColor) MarshalYAML() (any, error) {
	return c.String(), nil
}

func ParseHexColor(s string) (HexColor, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return HexColor{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return HexColor{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
