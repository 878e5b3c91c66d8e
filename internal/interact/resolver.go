package interact

import (
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cursor is the pointer affordance to show for the current hover state.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// Presenter is what a click opens. ui.Modal satisfies it.
type Presenter interface {
	Show(id string)
}

// Resolver tracks which interactive object the pointer is over.
type Resolver struct {
	Raycaster *Raycaster
	Hover     string
	Cursor    Cursor
	Hits      []Intersection // hits of the last Resolve, nearest first

	// OnHoverChanged fires with the new hover name whenever it changes.
	OnHoverChanged engine.Event[string]
}

func NewResolver() *Resolver {
	return &Resolver{Raycaster: NewRaycaster()}
}

// Resolve recomputes the hover selection for ray against the interactive
// objects. The first hit names the selection: its parent's name, since
// pickable meshes sit under a named logical object, or its own name when it
// has no parent. No hits clears the selection.
func (r *Resolver) Resolve(ray rl.Ray, interactive []*engine.GameObject) string {
	r.Hits = r.Raycaster.IntersectObjects(ray, interactive)

	hover := ""
	if len(r.Hits) > 0 {
		r.Cursor = CursorPointer
		hover = selectionName(r.Hits[0].Object)
	} else {
		r.Cursor = CursorDefault
	}

	if hover != r.Hover {
		r.Hover = hover
		r.OnHoverChanged.Invoke(hover)
	}
	return r.Hover
}

// Click opens the hovered object in p. Nothing happens without a hover.
func (r *Resolver) Click(p Presenter) {
	if r.Hover == "" || p == nil {
		return
	}
	p.Show(r.Hover)
}

func selectionName(g *engine.GameObject) string {
	if g.Parent != nil {
		return g.Parent.Name
	}
	return g.Name
}
