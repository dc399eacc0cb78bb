package gizmo

func (c *Controls) ShowXT(visible bool) {
	c.handles.translateXP.Visible = visible
	c.handles.translateXN.Visible = visible
}

func (c *Controls) ShowYT(visible bool) {
	c.handles.translateYP.Visible = visible
	c.handles.translateYN.Visible = visible
}

func (c *Controls) ShowZT(visible bool) {
	c.handles.translateZP.Visible = visible
	c.handles.translateZN.Visible = visible
}

func (c *Controls) ShowXR(visible bool) {
	c.handles.rotateX.Visible = visible
}

func (c *Controls) ShowYR(visible bool) {
	c.handles.rotateY.Visible = visible
}

func (c *Controls) ShowZR(visible bool) {
	c.handles.rotateZ.Visible = visible
}

func (c *Controls) ShowPickT(visible bool) {
	c.handles.pick.Visible = visible
}

func (c *Controls) ShowPickPlaneXYT(visible bool) {
	c.handles.planeXY.Visible = visible
}

func (c *Controls) ShowPickPlaneYZT(visible bool) {
	c.handles.planeYZ.Visible = visible
}

func (c *Controls) ShowPickPlaneZXT(visible bool) {
	c.handles.planeZX.Visible = visible
}

// ShowAll sets the visibility of every handle subset.
func (c *Controls) ShowAll(visible bool) {
	c.ShowXT(visible)
	c.ShowYT(visible)
	c.ShowZT(visible)

	c.ShowXR(visible)
	c.ShowYR(visible)
	c.ShowZR(visible)

	c.ShowPickT(visible)

	c.ShowPickPlaneXYT(visible)
	c.ShowPickPlaneYZT(visible)
	c.ShowPickPlaneZXT(visible)
}

// Subset names accepted by ShowSubset, matching the Show methods.
var subsets = map[string]func(*Controls, bool){
	"xt":            (*Controls).ShowXT,
	"yt":            (*Controls).ShowYT,
	"zt":            (*Controls).ShowZT,
	"xr":            (*Controls).ShowXR,
	"yr":            (*Controls).ShowYR,
	"zr":            (*Controls).ShowZR,
	"pick":          (*Controls).ShowPickT,
	"pick_plane_xy": (*Controls).ShowPickPlaneXYT,
	"pick_plane_yz": (*Controls).ShowPickPlaneYZT,
	"pick_plane_zx": (*Controls).ShowPickPlaneZXT,
	"all":           (*Controls).ShowAll,
}

// ShowSubset toggles a handle subset by name; it reports false for an
// unknown name.
func (c *Controls) ShowSubset(name string, visible bool) bool {
	fn, ok := subsets[name]
	if !ok {
		return false
	}
	fn(c, visible)
	return true
}
