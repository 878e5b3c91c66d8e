package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"unrafita/internal/assets"
	"unrafita/internal/components"
	"unrafita/internal/engine"
	"unrafita/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Active     *bool             `json:"active,omitempty"`
	Components []json.RawMessage `json:"components,omitempty"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type modelRendererDef struct {
	Type     string    `json:"type"`
	Mesh     string    `json:"mesh,omitempty"`
	MeshSize []float32 `json:"meshSize,omitempty"`
	Model    string    `json:"model,omitempty"`
	Color    string    `json:"color"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type meshRendererDef struct {
	Type  string     `json:"type"`
	Shape string     `json:"shape"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
	Wire  bool       `json:"wire,omitempty"`
}

// ParseScene decodes a scene file.
func ParseScene(data []byte) (SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return SceneFile{}, fmt.Errorf("parse scene: %w", err)
	}
	return sf, nil
}

// LoadScene reads the scene file at path, builds its hierarchy into the
// world scene and rebuilds the registry.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	sf, err := ParseScene(data)
	if err != nil {
		return err
	}

	for _, def := range sf.Objects {
		w.Scene.AddGameObject(w.buildObject(def))
	}

	w.Registry = BuildRegistry(w.Scene, w.Interactive, w.CharacterName)
	log.Printf("World: loaded %s (%d interactive)", path, len(w.Registry.Interactive))
	if w.Registry.Character == nil {
		log.Printf("World: no %q node in %s", w.CharacterName, path)
	}
	return nil
}

func (w *World) buildObject(def ObjectDef) *engine.GameObject {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale != [3]float32{} {
		g.Transform.Scale = vec3(def.Scale)
	}
	if def.Active != nil {
		g.Active = *def.Active
	}

	hasCollider := false
	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			continue
		}

		switch header.Type {
		case "ModelRenderer":
			w.loadModelRenderer(g, raw)
		case "MeshRenderer":
			loadMeshRenderer(g, raw)
		case "BoxCollider":
			hasCollider = loadBoxCollider(g, raw) || hasCollider
		case "SphereCollider":
			hasCollider = loadSphereCollider(g, raw) || hasCollider
		default:
			log.Printf("World: %s: unknown component %q", def.Name, header.Type)
		}
	}

	if !hasCollider {
		if renderer := engine.GetComponent[*components.ModelRenderer](g); renderer != nil {
			g.AddComponent(ColliderFromBounds(renderer.Bounds()))
		}
	}

	for _, childDef := range def.Children {
		g.AddChild(w.buildObject(childDef))
	}
	return g
}

func (w *World) loadModelRenderer(g *engine.GameObject, raw json.RawMessage) {
	if w.Headless {
		return
	}

	var def modelRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}

	color := assets.LookupColor(def.Color)

	var renderer *components.ModelRenderer
	if def.Model != "" {
		r, err := components.NewModelRendererFromFile(def.Model, color)
		if err != nil {
			log.Printf("World: %s: %v", g.Name, err)
			return
		}
		renderer = r
	} else {
		var model rl.Model
		switch def.Mesh {
		case "cube":
			if len(def.MeshSize) >= 3 {
				model = rl.LoadModelFromMesh(rl.GenMeshCube(def.MeshSize[0], def.MeshSize[1], def.MeshSize[2]))
			}
		case "plane":
			if len(def.MeshSize) >= 2 {
				model = rl.LoadModelFromMesh(rl.GenMeshPlane(def.MeshSize[0], def.MeshSize[1], 1, 1))
			}
		case "sphere":
			if len(def.MeshSize) >= 1 {
				model = rl.LoadModelFromMesh(rl.GenMeshSphere(def.MeshSize[0], 16, 16))
			}
		}
		if model.MeshCount == 0 {
			log.Printf("World: %s: bad mesh %q %v", g.Name, def.Mesh, def.MeshSize)
			return
		}
		renderer = components.NewModelRenderer(model, color)
		renderer.MeshType = def.Mesh
		renderer.MeshSize = def.MeshSize
	}

	g.AddComponent(renderer)
}

var meshShapes = map[string]components.MeshType{
	"cube":   components.MeshCube,
	"sphere": components.MeshSphere,
	"plane":  components.MeshPlane,
	"grid":   components.MeshGrid,
}

func loadMeshRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	shape, ok := meshShapes[def.Shape]
	if !ok {
		log.Printf("World: %s: unknown shape %q", g.Name, def.Shape)
		return
	}
	m := components.NewMeshRenderer(shape, assets.LookupColor(def.Color), vec3(def.Size))
	m.Wire = def.Wire
	g.AddComponent(m)
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) bool {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return false
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return true
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) bool {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return false
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return true
}

// ColliderFromBounds fits a box collider to model-space bounds.
func ColliderFromBounds(b rl.BoundingBox) *components.BoxCollider {
	box := physics.NewAABBFromBounds(b)
	col := components.NewBoxCollider(box.Size())
	col.Offset = box.Center()
	return col
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
