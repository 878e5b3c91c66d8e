package world

import (
	"testing"

	"unrafita/internal/components"
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func orthoCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.Vector3{Z: 10},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       10,
		Projection: rl.CameraOrthographic,
	}
}

func TestFrustumOrthographic(t *testing.T) {
	f := ExtractFrustum(orthoCamera(), 1, 0.1, 1000)

	if !f.ContainsSphere(rl.Vector3{}, 0) {
		t.Error("Origin should be visible")
	}
	if !f.ContainsSphere(rl.Vector3{X: 4.5, Y: -4.5}, 0) {
		t.Error("Point inside the view volume should be visible")
	}
	if f.ContainsSphere(rl.Vector3{X: 6}, 0) {
		t.Error("Point beyond the half-width should be culled")
	}
	if f.ContainsSphere(rl.Vector3{Z: 20}, 0) {
		t.Error("Point behind the camera should be culled")
	}
	if !f.ContainsSphere(rl.Vector3{X: 6}, 2) {
		t.Error("Sphere straddling the edge should be visible")
	}
	if f.ContainsSphere(rl.Vector3{X: 20}, 2) {
		t.Error("Sphere far outside should be culled")
	}
}

func TestFrustumAspectWidensView(t *testing.T) {
	f := ExtractFrustum(orthoCamera(), 2, 0.1, 1000)

	if !f.ContainsSphere(rl.Vector3{X: 8}, 0) {
		t.Error("Wider aspect should include x=8")
	}
}

func TestVisibleUsesColliderBounds(t *testing.T) {
	f := ExtractFrustum(orthoCamera(), 1, 0.1, 1000)

	near := engine.NewGameObject("near")
	near.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	far := engine.NewGameObject("far")
	far.Transform.Position = rl.Vector3{X: 50}
	far.AddComponent(components.NewSphereCollider(1))
	bare := engine.NewGameObject("bare")
	bare.Transform.Position = rl.Vector3{X: 50}

	if !Visible(near, &f) {
		t.Error("Box at origin should be visible")
	}
	if Visible(far, &f) {
		t.Error("Sphere at x=50 should be culled")
	}
	if !Visible(bare, &f) {
		t.Error("Objects without colliders are never culled")
	}
}
