package world

import (
	"unrafita/internal/components"
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the scene graph with a single camera.
type Renderer struct {
	Background rl.Color
	Cull       bool

	// Highlight, when set, is outlined with its collider bounds.
	Highlight *engine.GameObject

	drawn, culled int
}

func NewRenderer(background rl.Color) *Renderer {
	return &Renderer{
		Background: background,
		Cull:       true,
	}
}

// Stats reports how many objects were drawn and culled last frame.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}

// Draw clears the frame and renders every active drawable in scene.
// It must be called between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(scene *engine.Scene, camera rl.Camera3D, aspect, near, far float32) {
	rl.ClearBackground(r.Background)

	frustum := ExtractFrustum(camera, aspect, near, far)
	r.drawn, r.culled = 0, 0

	rl.BeginMode3D(camera)
	for _, g := range scene.GameObjects {
		r.drawObject(g, &frustum)
	}
	if r.Highlight != nil {
		drawBounds(r.Highlight)
	}
	rl.EndMode3D()
}

func (r *Renderer) drawObject(g *engine.GameObject, frustum *Frustum) {
	if !g.Active {
		return
	}
	if r.Cull && !Visible(g, frustum) {
		r.culled++
	} else {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
				r.drawn++
			}
		}
	}
	for _, child := range g.Children {
		r.drawObject(child, frustum)
	}
}

// Visible reports whether g's collider bounds touch the frustum. Objects
// without a collider are always visible.
func Visible(g *engine.GameObject, frustum *Frustum) bool {
	if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
		size := box.GetWorldSize()
		radius := rl.Vector3Length(size) / 2
		return frustum.ContainsSphere(box.GetCenter(), radius)
	}
	if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
		return frustum.ContainsSphere(sphere.GetCenter(), sphere.GetWorldRadius())
	}
	return true
}

func drawBounds(g *engine.GameObject) {
	g.Traverse(func(obj *engine.GameObject) {
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			rl.DrawCubeWiresV(box.GetCenter(), box.GetWorldSize(), rl.Yellow)
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			rl.DrawSphereWires(sphere.GetCenter(), sphere.GetWorldRadius(), 8, 8, rl.Yellow)
		}
	})
}
