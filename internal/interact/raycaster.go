package interact

import (
	"sort"

	"unrafita/internal/components"
	"unrafita/internal/engine"
	"unrafita/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Intersection is one ray hit against a collider-bearing object.
type Intersection struct {
	Object   *engine.GameObject
	Point    rl.Vector3
	Distance float32
}

// Raycaster intersects rays with scene objects through their colliders.
type Raycaster struct {
	Far float32
}

func NewRaycaster() *Raycaster {
	return &Raycaster{Far: math32.Inf(1)}
}

// IntersectObjects tests every object and its descendants and returns all
// hits, nearest first. Inactive subtrees are skipped.
func (r *Raycaster) IntersectObjects(ray rl.Ray, objects []*engine.GameObject) []Intersection {
	ray.Direction = rl.Vector3Normalize(ray.Direction)

	var hits []Intersection
	for _, root := range objects {
		r.intersect(ray, root, &hits)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func (r *Raycaster) intersect(ray rl.Ray, g *engine.GameObject, hits *[]Intersection) {
	if g == nil || !g.Active {
		return
	}
	for _, c := range g.Components() {
		var hit physics.RaycastHit
		var ok bool
		switch col := c.(type) {
		case *components.BoxCollider:
			hit, ok = physics.RaycastBox(ray, col.GetAABB(), r.Far)
		case *components.SphereCollider:
			hit, ok = physics.RaycastSphere(ray, col.GetCenter(), col.GetWorldRadius(), r.Far)
		}
		if ok {
			*hits = append(*hits, Intersection{Object: g, Point: hit.Point, Distance: hit.Distance})
		}
	}
	for _, child := range g.Children {
		r.intersect(ray, child, hits)
	}
}
