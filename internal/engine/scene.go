package engine

// Scene owns the root of a node tree. Objects added to the scene without
// a parent become direct children of Root.
type Scene struct {
	Name        string
	Root        *GameObject
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	s := &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
	root := NewGameObject(name)
	root.sceneRoot = true
	root.Scene = s
	s.Root = root
	return s
}

// AddGameObject registers g and its descendants. A parentless g is placed
// under Root.
func (s *Scene) AddGameObject(g *GameObject) {
	if g.Parent == nil {
		s.Root.AddChild(g)
	}
	s.register(g)
}

func (s *Scene) register(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Walk(func(n *GameObject) bool {
		if _, ok := s.uidMap[n.UID]; !ok {
			s.GameObjects = append(s.GameObjects, n)
			s.uidMap[n.UID] = n
		}
		n.Scene = s
		return true
	})
}

// RemoveGameObject detaches g from its parent and unregisters it together
// with its descendants.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	g.Walk(func(n *GameObject) bool {
		delete(s.uidMap, n.UID)
		for i, obj := range s.GameObjects {
			if obj == n {
				s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
				break
			}
		}
		n.Scene = nil
		return true
	})
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// UpdateWorldMatrices refreshes the cached world matrices of the whole tree.
func (s *Scene) UpdateWorldMatrices(force bool) {
	s.Root.UpdateWorldMatrix(force)
}
