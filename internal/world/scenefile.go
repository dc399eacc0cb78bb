package world

import (
	"encoding/json"
	"fmt"
	"os"

	"freeform/internal/engine"
	"freeform/internal/gizmo"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name     string       `json:"name"`
	Objects  []ObjectDef  `json:"objects"`
	Controls *ControlsDef `json:"controls,omitempty"`
}

// ObjectDef describes one object. Parent names an object defined earlier
// in the file; empty means the scene root. Rotation is in Euler degrees,
// applied X then Y then Z.
type ObjectDef struct {
	Name     string     `json:"name"`
	Parent   string     `json:"parent,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Position [3]float32 `json:"position"`
	Rotation [3]float32 `json:"rotation"`
	Scale    [3]float32 `json:"scale"`
	Box      []float32  `json:"box,omitempty"`
	Color    string     `json:"color,omitempty"`
}

type ControlsDef struct {
	Target     string      `json:"target"`
	Separation *[3]float32 `json:"separation,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Gold":      rl.Gold,
	"Lime":      rl.Lime,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	if c, err := gizmo.ParseHexColor(name); err == nil {
		return c.RGBA()
	}
	return rl.LightGray
}

func colorName(c rl.Color) string {
	for name, known := range colorByName {
		if known == c {
			return name
		}
	}
	return gizmo.HexColor(c).String()
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// Load reads a scene file and attaches controls when the file names a
// target.
func Load(path string, cfg gizmo.Config) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data, cfg)
}

func Parse(data []byte, cfg gizmo.Config) (*World, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	name := sf.Name
	if name == "" {
		name = "Main"
	}
	w := New(name)

	byName := make(map[string]*engine.GameObject, len(sf.Objects))
	for _, def := range sf.Objects {
		if _, dup := byName[def.Name]; dup {
			return nil, fmt.Errorf("parse scene: duplicate object %q", def.Name)
		}
		var parent *engine.GameObject
		if def.Parent != "" {
			parent = byName[def.Parent]
			if parent == nil {
				return nil, fmt.Errorf("parse scene: object %q: unknown parent %q", def.Name, def.Parent)
			}
		}

		g := engine.NewGameObject(def.Name)
		g.Tags = def.Tags
		g.Transform.Position = vec3(def.Position)
		g.Transform.Rotation = engine.QuaternionFromEulerXYZ(engine.Deg2Rad(vec3(def.Rotation)))
		// Default scale to 1 if zero
		if def.Scale != [3]float32{} {
			g.Transform.Scale = vec3(def.Scale)
		}
		if len(def.Box) == 3 {
			size := rl.Vector3{X: def.Box[0], Y: def.Box[1], Z: def.Box[2]}
			g.Mesh = engine.NewBoxMesh(size)
			w.meshSizes[g.UID] = size
		}
		w.colors[g.UID] = lookupColor(def.Color)

		if parent != nil {
			parent.AddChild(g)
		}
		w.Scene.AddGameObject(g)
		byName[def.Name] = g
	}

	if sf.Controls != nil {
		target := byName[sf.Controls.Target]
		if target == nil {
			return nil, fmt.Errorf("parse scene: unknown controls target %q", sf.Controls.Target)
		}
		opts := []gizmo.Option{gizmo.WithConfig(cfg)}
		var sep *rl.Vector3
		if sf.Controls.Separation != nil {
			v := vec3(*sf.Controls.Separation)
			sep = &v
			opts = append(opts, gizmo.WithSeparation(v))
		}
		if _, err := w.AttachControls(target, opts...); err != nil {
			return nil, fmt.Errorf("parse scene: %w", err)
		}
		w.separation = sep
	}
	return w, nil
}

// --- Saving ---

// Save writes the scene back out. Rotations are stored in Euler degrees.
func (w *World) Save(path string) error {
	sf := SceneFile{Name: w.Scene.Name}
	for _, g := range w.Objects() {
		def := ObjectDef{
			Name:     g.Name,
			Tags:     g.Tags,
			Position: arr3(g.Transform.Position),
			Rotation: arr3(engine.Rad2Deg(engine.EulerXYZ(g.Transform.Rotation))),
			Scale:    arr3(g.Transform.Scale),
			Color:    colorName(w.Color(g)),
		}
		if g.Parent != nil && !g.Parent.IsSceneRoot() {
			def.Parent = g.Parent.Name
		}
		if size, ok := w.meshSizes[g.UID]; ok {
			def.Box = []float32{size.X, size.Y, size.Z}
		}
		sf.Objects = append(sf.Objects, def)
	}
	if w.Controls != nil {
		sf.Controls = &ControlsDef{Target: w.Controls.Target().Name}
		if w.separation != nil {
			sep := arr3(*w.separation)
			sf.Controls.Separation = &sep
		}
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}
