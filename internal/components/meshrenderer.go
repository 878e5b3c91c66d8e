package components

import (
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
	MeshGrid
)

// MeshRenderer draws immediate-mode primitives. Used for helpers such as
// the ground grid and collider outlines; no GPU resources are held.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
	Wire     bool
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()

	switch m.MeshType {
	case MeshCube:
		if m.Wire {
			rl.DrawCubeWiresV(pos, m.Size, m.Color)
		} else {
			rl.DrawCubeV(pos, m.Size, m.Color)
		}
	case MeshSphere:
		if m.Wire {
			rl.DrawSphereWires(pos, m.Size.X, 12, 12, m.Color)
		} else {
			rl.DrawSphere(pos, m.Size.X, m.Color)
		}
	case MeshPlane:
		rl.DrawPlane(pos, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, m.Color)
	case MeshGrid:
		// Size.X is the slice count, Size.Z the spacing
		rl.DrawGrid(int32(m.Size.X), m.Size.Z)
	}
}
