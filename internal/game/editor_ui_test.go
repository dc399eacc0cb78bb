package game

import (
	"testing"

	"freeform/internal/engine"
	"freeform/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestPanelStateApply(t *testing.T) {
	target := engine.NewGameObject("box")
	c := gizmo.New(target)

	p := newPanelState()
	p.visible["xr"] = false
	p.visible["pick"] = false
	p.apply(c)

	if c.Handle(gizmo.NameXR).Visible {
		t.Error("Expected X ring hidden")
	}
	if c.Handle(gizmo.NamePick).Visible {
		t.Error("Expected pick handle hidden")
	}
	if !c.Handle(gizmo.NameYR).Visible {
		t.Error("Expected Y ring visible")
	}
}

func TestPanelStateCoversEverySubset(t *testing.T) {
	c := gizmo.New(engine.NewGameObject("box"))
	for _, toggle := range subsetToggles {
		if !c.ShowSubset(toggle.subset, true) {
			t.Errorf("Unknown subset %q", toggle.subset)
		}
	}
}

func TestHighlightTint(t *testing.T) {
	h := newHighlight()
	base := rl.NewColor(100, 0, 0, 255)
	if got := h.Tint(base); got != base {
		t.Errorf("Expected untouched color at rest, got %v", got)
	}
	h.value = 1
	got := h.Tint(base)
	if got.R <= base.R || got.G == 0 {
		t.Errorf("Expected brighter color, got %v", got)
	}
	if got.A != base.A {
		t.Errorf("Expected alpha %d, got %d", base.A, got.A)
	}
}

func TestHighlightPingPongs(t *testing.T) {
	h := newHighlight()
	h.Update(0.4)
	if h.up {
		t.Error("Expected highlight to reverse after a full pulse")
	}
	h.Update(0.4)
	if !h.up {
		t.Error("Expected highlight to reverse again")
	}
}
