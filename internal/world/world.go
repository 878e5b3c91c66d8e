package world

import (
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type World struct {
	Scene    *engine.Scene
	Registry Registry
	Renderer *Renderer

	// Interactive lists the node names registered for picking.
	Interactive   []string
	CharacterName string

	// Headless skips GPU resources so scenes can be built without a window.
	Headless bool
}

func New(interactive []string, character string, background rl.Color) *World {
	return &World{
		Scene:         engine.NewScene("Main"),
		Renderer:      NewRenderer(background),
		Interactive:   interactive,
		CharacterName: character,
	}
}

// HelperTag marks scene nodes such as the ground grid that are only drawn
// on request.
const HelperTag = "helper"

// ShowHelpers activates or deactivates every node tagged HelperTag and
// reports how many were found.
func (w *World) ShowHelpers(show bool) int {
	helpers := w.Scene.FindByTag(HelperTag)
	for _, g := range helpers {
		g.Active = show
	}
	return len(helpers)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

func (w *World) Draw(camera rl.Camera3D, aspect, near, far float32) {
	w.Renderer.Draw(w.Scene, camera, aspect, near, far)
}

func (w *World) Unload() {
	w.Scene.Traverse(func(g *engine.GameObject) {
		for _, c := range g.Components() {
			if u, ok := c.(engine.Unloader); ok {
				u.Unload()
			}
		}
	})
}
