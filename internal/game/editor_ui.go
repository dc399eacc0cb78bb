package game

import (
	"fmt"

	"freeform/internal/gizmo"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

const (
	panelX      = 10
	panelY      = 10
	panelWidth  = 220
	rowHeight   = 24
	panelMargin = 10
)

// initRayguiStyle sets up the dark indigo theme.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

type subsetToggle struct {
	label  string
	subset string
}

// Toggles in panel order. Subset names are the ones ShowSubset accepts.
var subsetToggles = []subsetToggle{
	{"Move X", "xt"},
	{"Move Y", "yt"},
	{"Move Z", "zt"},
	{"Rotate X", "xr"},
	{"Rotate Y", "yr"},
	{"Rotate Z", "zr"},
	{"Free move", "pick"},
	{"Plane XY", "pick_plane_xy"},
	{"Plane YZ", "pick_plane_yz"},
	{"Plane ZX", "pick_plane_zx"},
}

// panelState remembers the toggles so they survive a change of target.
type panelState struct {
	visible map[string]bool
}

func newPanelState() panelState {
	p := panelState{visible: make(map[string]bool, len(subsetToggles))}
	for _, t := range subsetToggles {
		p.visible[t.subset] = true
	}
	return p
}

func (p panelState) apply(c *gizmo.Controls) {
	for _, t := range subsetToggles {
		c.ShowSubset(t.subset, p.visible[t.subset])
	}
}

func (p panelState) bounds() rl.Rectangle {
	rows := len(subsetToggles) + 6
	return rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: float32(rows*rowHeight + 2*panelMargin)}
}

func (p panelState) hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), p.bounds())
}

func (v *Viewer) drawUI() {
	b := v.panel.bounds()
	rl.DrawRectangleRec(b, colorBgPanel)
	rl.DrawRectangleLinesEx(b, 1, rl.NewColor(50, 50, 65, 255))

	x := b.X + panelMargin
	y := b.Y + panelMargin
	width := b.Width - 2*panelMargin

	c := v.World.Controls
	if c == nil {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: width, Height: rowHeight}, "Click a box to select it")
		return
	}

	gui.Label(rl.Rectangle{X: x, Y: y, Width: width, Height: rowHeight}, fmt.Sprintf("Target: %s", c.Target().Name))
	y += rowHeight

	for _, t := range subsetToggles {
		checked := gui.CheckBox(rl.Rectangle{X: x, Y: y + 4, Width: 16, Height: 16}, t.label, v.panel.visible[t.subset])
		if checked != v.panel.visible[t.subset] {
			v.panel.visible[t.subset] = checked
			c.ShowSubset(t.subset, checked)
		}
		y += rowHeight
	}

	half := (width - panelMargin) / 2
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: rowHeight - 4}, "Show all") {
		v.setAll(c, true)
	}
	if gui.Button(rl.Rectangle{X: x + half + panelMargin, Y: y, Width: half, Height: rowHeight - 4}, "Hide all") {
		v.setAll(c, false)
	}
	y += rowHeight

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: width, Height: rowHeight - 4}, fmt.Sprintf("Undo (%d)", c.UndoDepth())) {
		v.undo()
	}
	y += rowHeight

	rl.DrawText(fmt.Sprintf("Mode: %s", c.Mode()), int32(x), int32(y+4), 14, colorTextSecondary)
	y += rowHeight
	pos := c.Target().WorldPosition()
	rl.DrawText(fmt.Sprintf("Pos: %.2f %.2f %.2f", pos.X, pos.Y, pos.Z), int32(x), int32(y+4), 14, colorTextSecondary)
	y += rowHeight
	rl.DrawText(v.status, int32(x), int32(y+4), 14, colorTextMuted)

	rl.DrawText("RMB orbit, wheel zoom, Ctrl+Z undo", 10, int32(rl.GetScreenHeight()-24), 16, colorTextMuted)
}

func (v *Viewer) setAll(c *gizmo.Controls, visible bool) {
	c.ShowAll(visible)
	for k := range v.panel.visible {
		v.panel.visible[k] = visible
	}
}
