package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

// AddGameObject adds g as a root object and attaches its subtree to s.
func (s *Scene) AddGameObject(g *GameObject) {
	g.Traverse(func(obj *GameObject) {
		obj.Scene = s
	})
	s.GameObjects = append(s.GameObjects, g)
}

// Traverse visits every object of the scene graph, roots in insertion order.
func (s *Scene) Traverse(fn func(*GameObject)) {
	for _, g := range s.GameObjects {
		g.Traverse(fn)
	}
}

// FindByName returns the first object named name anywhere in the hierarchy.
func (s *Scene) FindByName(name string) *GameObject {
	var found *GameObject
	s.Traverse(func(g *GameObject) {
		if found == nil && g.Name == name {
			found = g
		}
	})
	return found
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	s.Traverse(func(g *GameObject) {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	})
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
