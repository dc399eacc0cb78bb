package gizmo

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Handle names. Axis handles come in pairs; the negative one carries the
// _neg suffix.
const (
	NameXT          = "xt_handle"
	NameYT          = "yt_handle"
	NameZT          = "zt_handle"
	NameXTNeg       = "xt_neg_handle"
	NameYTNeg       = "yt_neg_handle"
	NameZTNeg       = "zt_neg_handle"
	NameXR          = "xr_handle"
	NameYR          = "yr_handle"
	NameZR          = "zr_handle"
	NamePick        = "pick_handle"
	NamePickPlaneXY = "pick_plane_xy_handle"
	NamePickPlaneYZ = "pick_plane_yz_handle"
	NamePickPlaneZX = "pick_plane_zx_handle"
)

// registry is the fixed handle set. It is built once and never rebuilt;
// only visibility, colour and rotation change afterwards.
type registry struct {
	translateXP, translateYP, translateZP *Handle
	translateXN, translateYN, translateZN *Handle
	rotateX, rotateY, rotateZ             *Handle
	pick                                  *Handle
	planeXY, planeYZ, planeZX             *Handle
}

func newRegistry(b Bounds, cfg Config) registry {
	var r registry
	r.setupTranslation(b, cfg)
	r.setupRotation(cfg)
	r.setupPickPlane(cfg)
	r.setupPick(cfg)
	return r
}

func newHandle(name string, role Role, color rl.Color) *Handle {
	return &Handle{Name: name, Role: role, Visible: true, Color: color}
}

func (r *registry) setupTranslation(b Bounds, cfg Config) {
	arrow := rl.Vector3{X: cfg.ArrowWidth, Y: cfg.ArrowLength, Z: cfg.ArrowWidth}
	axis := func(name string, role Role, sign float32, color rl.Color, pos, rot, up rl.Vector3) *Handle {
		h := newHandle(name, role, color)
		h.Sign = sign
		h.Position = pos
		h.Rotation = rot
		h.Up = up
		h.pickable = &Pickable{Handle: h, Shape: ShapeArrow, Size: arrow}
		return h
	}

	// Arrows point along their local +Y; the rotations turn them outwards
	// along the axis they sit on.
	r.translateXP = axis(NameXT, TranslateAxisX, 1, cfg.Colors.X.RGBA(),
		rl.Vector3{X: b.Max.X}, rl.Vector3{Z: -math32.Pi / 2}, rl.Vector3{Y: 1})
	r.translateYP = axis(NameYT, TranslateAxisY, 1, cfg.Colors.Y.RGBA(),
		rl.Vector3{Y: b.Max.Y}, rl.Vector3{}, rl.Vector3{Z: 1})
	r.translateZP = axis(NameZT, TranslateAxisZ, 1, cfg.Colors.Z.RGBA(),
		rl.Vector3{Z: b.Max.Z}, rl.Vector3{X: math32.Pi / 2}, rl.Vector3{Y: 1})

	r.translateXN = axis(NameXTNeg, TranslateAxisX, -1, cfg.Colors.X.RGBA(),
		rl.Vector3{X: b.Min.X}, rl.Vector3{Z: math32.Pi / 2}, rl.Vector3{Y: 1})
	r.translateYN = axis(NameYTNeg, TranslateAxisY, -1, cfg.Colors.Y.RGBA(),
		rl.Vector3{Y: b.Min.Y}, rl.Vector3{X: math32.Pi}, rl.Vector3{Z: 1})
	r.translateZN = axis(NameZTNeg, TranslateAxisZ, -1, cfg.Colors.Z.RGBA(),
		rl.Vector3{Z: b.Min.Z}, rl.Vector3{X: -math32.Pi / 2}, rl.Vector3{Y: 1})
}

func (r *registry) setupRotation(cfg Config) {
	ring := rl.Vector3{X: cfg.RingRadius, Y: cfg.RingThickness}
	rotation := func(name string, role Role, color rl.Color, rot, up rl.Vector3) *Handle {
		h := newHandle(name, role, color)
		h.Rotation = rot
		h.Up = up
		h.pickable = &Pickable{Handle: h, Shape: ShapeRing, Size: ring}
		return h
	}

	// Rings lie in their local XY plane; rotate them so the ring normal
	// matches Up.
	r.rotateX = rotation(NameXR, RotateX, cfg.Colors.X.RGBA(), rl.Vector3{Y: math32.Pi / 2, Z: math32.Pi}, rl.Vector3{X: 1})
	r.rotateY = rotation(NameYR, RotateY, cfg.Colors.Y.RGBA(), rl.Vector3{X: math32.Pi / 2}, rl.Vector3{Y: 1})
	r.rotateZ = rotation(NameZR, RotateZ, cfg.Colors.Z.RGBA(), rl.Vector3{}, rl.Vector3{Z: 1})
}

func (r *registry) setupPickPlane(cfg Config) {
	quad := rl.Vector3{X: cfg.PlaneWidth, Y: cfg.PlaneHeight, Z: cfg.PlaneThickness}
	plane := func(name string, role Role, color rl.Color, rot, up rl.Vector3) *Handle {
		h := newHandle(name, role, color)
		h.Rotation = rot
		h.Up = up
		h.pickable = &Pickable{Handle: h, Shape: ShapeQuad, Size: quad}
		return h
	}

	r.planeXY = plane(NamePickPlaneXY, TranslatePlaneXY, cfg.Colors.PlaneXY.RGBA(), rl.Vector3{}, rl.Vector3{Z: 1})
	r.planeYZ = plane(NamePickPlaneYZ, TranslatePlaneYZ, cfg.Colors.PlaneYZ.RGBA(), rl.Vector3{Y: math32.Pi / 2}, rl.Vector3{X: 1})
	r.planeZX = plane(NamePickPlaneZX, TranslatePlaneZX, cfg.Colors.PlaneZX.RGBA(), rl.Vector3{X: math32.Pi / 2}, rl.Vector3{Y: 1})
}

func (r *registry) setupPick(cfg Config) {
	h := newHandle(NamePick, TranslateFree, cfg.Colors.Pick.RGBA())
	h.Up = rl.Vector3{Y: 1}
	h.pickable = &Pickable{Handle: h, Shape: ShapeCube, Size: rl.Vector3{X: cfg.PickSize, Y: cfg.PickSize, Z: cfg.PickSize}}
	r.pick = h
}

// all lists every handle in hit-test order.
func (r *registry) all() []*Handle {
	return []*Handle{
		r.translateXP, r.translateYP, r.translateZP,
		r.translateXN, r.translateYN, r.translateZN,
		r.rotateX, r.rotateY, r.rotateZ,
		r.pick,
		r.planeXY, r.planeYZ, r.planeZX,
	}
}

func (r *registry) byName(name string) *Handle {
	for _, h := range r.all() {
		if h.Name == name {
			return h
		}
	}
	return nil
}

func (r *registry) owns(h *Handle) bool {
	for _, o := range r.all() {
		if o == h {
			return true
		}
	}
	return false
}
