package game

import (
	"freeform/internal/engine"
	"freeform/internal/gizmo"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const ringSegments = 48

// highlight pulses the hovered handle's brightness.
type highlight struct {
	tween *gween.Tween
	value float32
	up    bool
}

func newHighlight() *highlight {
	h := &highlight{up: true}
	h.Restart()
	return h
}

func (h *highlight) Restart() {
	h.up = true
	h.tween = gween.New(0, 1, 0.4, ease.InOutSine)
	h.value = 0
}

func (h *highlight) Update(deltaTime float32) {
	val, done := h.tween.Update(deltaTime)
	h.value = val
	if done {
		h.up = !h.up
		if h.up {
			h.tween = gween.New(0, 1, 0.4, ease.InOutSine)
		} else {
			h.tween = gween.New(1, 0, 0.4, ease.InOutSine)
		}
	}
}

// Tint blends c towards white by the current pulse value.
func (h *highlight) Tint(c rl.Color) rl.Color {
	amount := 0.5 * h.value
	return rl.Color{
		R: c.R + uint8(float32(255-c.R)*amount),
		G: c.G + uint8(float32(255-c.G)*amount),
		B: c.B + uint8(float32(255-c.B)*amount),
		A: c.A,
	}
}

// drawControls draws every visible handle on top of the scene.
func (v *Viewer) drawControls(c *gizmo.Controls) {
	// Draw on top of everything
	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	wrapper := c.Object().WorldTransform()
	active := c.ActiveHandle()
	activeColor := c.Config().Colors.Active.RGBA()

	for _, p := range c.InteractiveObjects() {
		h := p.Handle
		if !h.Visible {
			continue
		}
		color := h.Color
		switch {
		case h == active:
			color = activeColor
		case h == v.hovered:
			color = v.highlight.Tint(color)
		}
		drawPickable(p, p.World(wrapper), color)
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

func drawPickable(p *gizmo.Pickable, world engine.Transform, color rl.Color) {
	switch p.Shape {
	case gizmo.ShapeArrow:
		tip := localPoint(world, rl.Vector3{Y: p.Size.Y})
		radius := p.Size.X / 2
		rl.DrawCylinderEx(world.Position, tip, radius, radius, 8, color)
		cone := localPoint(world, rl.Vector3{Y: p.Size.Y + radius*4})
		rl.DrawCylinderEx(tip, cone, radius*2, 0, 8, color)
	case gizmo.ShapeRing:
		radius := p.Size.X
		for s := range ringSegments {
			t0 := float32(s) / ringSegments * 2 * math32.Pi
			t1 := float32(s+1) / ringSegments * 2 * math32.Pi
			p0 := localPoint(world, rl.Vector3{X: radius * math32.Cos(t0), Y: radius * math32.Sin(t0)})
			p1 := localPoint(world, rl.Vector3{X: radius * math32.Cos(t1), Y: radius * math32.Sin(t1)})
			rl.DrawCylinderEx(p0, p1, p.Size.Y/2, p.Size.Y/2, 6, color)
		}
	case gizmo.ShapeQuad:
		hx, hy := p.Size.X/2, p.Size.Y/2
		a := localPoint(world, rl.Vector3{X: -hx, Y: -hy})
		b := localPoint(world, rl.Vector3{X: hx, Y: -hy})
		c := localPoint(world, rl.Vector3{X: hx, Y: hy})
		d := localPoint(world, rl.Vector3{X: -hx, Y: hy})
		fill := rl.Fade(color, 0.35)
		// Both windings so the quad shows from either side
		rl.DrawTriangle3D(a, b, c, fill)
		rl.DrawTriangle3D(a, c, d, fill)
		rl.DrawTriangle3D(a, c, b, fill)
		rl.DrawTriangle3D(a, d, c, fill)
		rl.DrawLine3D(a, b, color)
		rl.DrawLine3D(b, c, color)
		rl.DrawLine3D(c, d, color)
		rl.DrawLine3D(d, a, color)
	case gizmo.ShapeCube:
		rl.DrawCubeV(world.Position, p.Size, color)
		rl.DrawCubeWiresV(world.Position, p.Size, rl.White)
	}
}

// localPoint maps a point in the handle's frame to world space.
func localPoint(world engine.Transform, p rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(world.Position, rl.Vector3RotateByQuaternion(p, world.Rotation))
}
