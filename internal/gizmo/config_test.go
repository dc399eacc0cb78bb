package gizmo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Missing config should not be an error, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gizmo.yaml")
	data := `
translation_separation: 1.25
ring_radius: 2
undo_depth: 5
colors:
  x: "#ff8000"
  active: "#11223344"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TranslationSeparation != 1.25 || cfg.RingRadius != 2 || cfg.UndoDepth != 5 {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.ArrowLength != DefaultConfig().ArrowLength {
		t.Errorf("Unset fields should keep defaults, got arrow length %f", cfg.ArrowLength)
	}
	if cfg.Colors.X.RGBA() != rl.NewColor(0xff, 0x80, 0x00, 0xff) {
		t.Errorf("Expected orange X, got %v", cfg.Colors.X)
	}
	if cfg.Colors.Active.RGBA() != rl.NewColor(0x11, 0x22, 0x33, 0x44) {
		t.Errorf("Expected #11223344, got %v", cfg.Colors.Active)
	}
	if cfg.Colors.Y != DefaultConfig().Colors.Y {
		t.Errorf("Unset colours should keep defaults, got %v", cfg.Colors.Y)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"bad_yaml.yaml":  "ring_radius: [1, 2",
		"bad_color.yaml": "colors:\n  x: \"#zzzzzz\"\n",
		"short.yaml":     "colors:\n  x: \"#fff\"\n",
	}
	for name, data := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected error", name)
		} else if !strings.Contains(err.Error(), "parse gizmo config") {
			t.Errorf("%s: expected wrapped parse error, got %v", name, err)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor(" #0a0B0c ")
	if err != nil {
		t.Fatal(err)
	}
	if c.RGBA() != rl.NewColor(10, 11, 12, 255) {
		t.Errorf("Expected (10,11,12,255), got %v", c)
	}
	if _, err := ParseHexColor("red"); err == nil {
		t.Error("Expected error for named colour")
	}
}

func TestHexColorMarshal(t *testing.T) {
	cfg := DefaultConfig()
	out, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var back Config
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Re-reading marshalled config: %v", err)
	}
	if back.Colors != cfg.Colors {
		t.Errorf("Expected colours %+v, got %+v", cfg.Colors, back.Colors)
	}
}
