package components

import (
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	if g == nil {
		return s.Offset
	}
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest axis of the owner's world scale.
func (s *SphereCollider) GetWorldRadius() float32 {
	g := s.GetGameObject()
	if g == nil {
		return s.Radius
	}
	sc := g.WorldScale()
	m := max(abs(sc.X), abs(sc.Y), abs(sc.Z))
	return s.Radius * m
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
