package components

import (
	"fmt"

	"unrafita/internal/assets"
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type ModelRenderer struct {
	engine.BaseComponent
	Model    rl.Model
	Color    rl.Color
	FilePath string    // set when loaded from a model file
	MeshType string    // "cube", "plane" or "sphere" for generated meshes
	MeshSize []float32 // generated mesh dimensions
}

func NewModelRenderer(model rl.Model, color rl.Color) *ModelRenderer {
	return &ModelRenderer{
		Model: model,
		Color: color,
	}
}

func NewModelRendererFromFile(path string, color rl.Color) (*ModelRenderer, error) {
	model, err := assets.LoadModel(path)
	if err != nil {
		return nil, err
	}
	return &ModelRenderer{
		Model:    model,
		Color:    color,
		FilePath: path,
	}, nil
}

// Bounds returns the model-space bounding box of the loaded geometry.
func (m *ModelRenderer) Bounds() rl.BoundingBox {
	return rl.GetModelBoundingBox(m.Model)
}

// Describe names the geometry source: the model file, or the generated mesh
// and its size.
func (m *ModelRenderer) Describe() string {
	if m.FilePath != "" {
		return m.FilePath
	}
	if m.MeshType == "" {
		return "mesh"
	}
	return fmt.Sprintf("%s %v", m.MeshType, m.MeshSize)
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	m.Model.Transform = g.WorldMatrix()

	tint := rl.White
	if m.FilePath == "" {
		tint = m.Color
	}
	rl.DrawModel(m.Model, rl.Vector3Zero(), 1.0, tint)
}

func (m *ModelRenderer) Unload() {
	// Only unload if not from asset manager (asset manager handles its own cleanup)
	if m.FilePath == "" {
		rl.UnloadModel(m.Model)
	}
}
