package world

import "unrafita/internal/engine"

// InteractiveTag marks a node as pickable regardless of the name allow-list.
const InteractiveTag = "interactive"

// Registry holds the nodes the viewer interacts with. It is built once after
// the scene loads and only read afterwards.
type Registry struct {
	Interactive []*engine.GameObject
	Character   *engine.GameObject
}

// BuildRegistry walks the whole hierarchy. Every node whose name is in names,
// or that carries InteractiveTag, is interactive, in traversal order. The
// first node named character is the character.
func BuildRegistry(scene *engine.Scene, names []string, character string) Registry {
	var r Registry
	if scene == nil {
		return r
	}

	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	scene.Traverse(func(g *engine.GameObject) {
		if allowed[g.Name] || g.HasTag(InteractiveTag) {
			r.Interactive = append(r.Interactive, g)
		}
	})
	if character != "" {
		r.Character = scene.FindByName(character)
	}
	return r
}
