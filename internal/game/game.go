// Package game is the interactive viewer: an orbit camera around a world
// of boxes, with freeform controls on the selected one.
package game

import (
	"errors"
	"fmt"
	"log"

	"freeform/internal/camera"
	"freeform/internal/engine"
	"freeform/internal/gizmo"
	"freeform/internal/picking"
	"freeform/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Viewer struct {
	World    *world.World
	Camera   *camera.OrbitCamera
	Renderer *world.Renderer
	Config   gizmo.Config

	dragger   *picking.Dragger
	hovered   *gizmo.Handle
	highlight *highlight
	panel     panelState
	status    string
	lastErr   string
}

func New(w *world.World, cfg gizmo.Config) *Viewer {
	v := &Viewer{
		World:     w,
		Camera:    camera.New(rl.Vector3{}),
		Renderer:  world.NewRenderer(),
		Config:    cfg,
		highlight: newHighlight(),
		panel:     newPanelState(),
	}
	if w.Controls != nil {
		v.bind(w.Controls)
	}
	return v
}

func (v *Viewer) Run(title string) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		v.Update(rl.GetFrameTime())
		v.Draw()
	}
}

// bind hooks the viewer up to a fresh set of controls.
func (v *Viewer) bind(c *gizmo.Controls) {
	v.dragger = picking.NewDragger(c)
	v.hovered = nil
	v.lastErr = ""
	c.OnDragStart.AddListener(func(ev gizmo.DragEvent) {
		v.status = fmt.Sprintf("dragging %s", ev.Handle.Name)
	})
	c.OnDragStop.AddListener(func(ev gizmo.DragEvent) {
		v.status = fmt.Sprintf("released %s", ev.Handle.Name)
	})
	c.OnError.AddListener(func(err error) {
		// Update runs every frame; log each distinct failure once.
		if msg := err.Error(); msg != v.lastErr {
			log.Printf("controls update: %v", err)
			v.lastErr = msg
		}
		v.status = err.Error()
	})
	v.panel.apply(c)
}

// Select moves the controls onto g.
func (v *Viewer) Select(g *engine.GameObject) error {
	c, err := v.World.AttachControls(g, gizmo.WithConfig(v.Config))
	if err != nil {
		return err
	}
	v.bind(c)
	v.Camera.Target = g.WorldPosition()
	v.status = fmt.Sprintf("selected %s", g.Name)
	return nil
}

func (v *Viewer) Update(deltaTime float32) {
	if !v.panel.hovered() {
		v.Camera.Update(deltaTime)
	}
	v.highlight.Update(deltaTime)

	if v.dragger != nil {
		v.handlePointer()
	} else if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !v.panel.hovered() {
		v.trySelect(v.mouseRay())
	}

	if rl.IsKeyPressed(rl.KeyZ) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)) {
		v.undo()
	}

	// Scene.Update runs the controls' reconcile component.
	v.World.Scene.Update(deltaTime)
}

func (v *Viewer) mouseRay() rl.Ray {
	return rl.GetScreenToWorldRay(rl.GetMousePosition(), v.Camera.Camera3D())
}

func (v *Viewer) handlePointer() {
	ray := v.mouseRay()

	switch {
	case v.dragger.Dragging() && rl.IsMouseButtonReleased(rl.MouseLeftButton):
		if err := v.dragger.PointerUp(); err != nil {
			log.Printf("drag end: %v", err)
		}
	case v.dragger.Dragging():
		if err := v.dragger.PointerMove(ray); err != nil && !errors.Is(err, picking.ErrMissedPlane) {
			log.Printf("drag: %v", err)
		}
	case rl.IsMouseButtonPressed(rl.MouseLeftButton) && !v.panel.hovered():
		started, err := v.dragger.PointerDown(ray, v.Camera.Position())
		if err != nil {
			log.Printf("drag start: %v", err)
			return
		}
		if !started {
			v.trySelect(ray)
		}
	default:
		h := v.dragger.Hover(ray)
		if h != v.hovered {
			v.hovered = h
			v.highlight.Restart()
		}
	}
}

func (v *Viewer) trySelect(ray rl.Ray) {
	g, ok := v.World.ObjectAt(ray)
	if !ok {
		return
	}
	if v.World.Controls != nil && v.World.Controls.Target() == g {
		return
	}
	if err := v.Select(g); err != nil {
		log.Printf("select %s: %v", g.Name, err)
	}
}

func (v *Viewer) undo() {
	c := v.World.Controls
	if c == nil {
		return
	}
	if c.Undo() {
		v.status = fmt.Sprintf("undo (%d left)", c.UndoDepth())
	}
}

func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	cam := v.Camera.Camera3D()
	aspect := float32(rl.GetScreenWidth()) / float32(max(1, rl.GetScreenHeight()))
	rl.BeginMode3D(cam)
	v.Renderer.Draw(v.World, cam, aspect)
	if c := v.World.Controls; c != nil {
		v.drawControls(c)
	}
	rl.EndMode3D()

	v.drawUI()
	rl.EndDrawing()
}
