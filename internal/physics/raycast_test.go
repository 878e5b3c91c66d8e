package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func down(from rl.Vector3) rl.Ray {
	return rl.Ray{Position: from, Direction: rl.Vector3{Y: -1}}
}

func TestRaycastBoxHitsTopFace(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := RaycastBox(down(rl.Vector3{Y: 10}), box, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(float64(hit.Distance-9)) > 1e-4 {
		t.Errorf("Expected distance 9, got %f", hit.Distance)
	}
	if hit.Normal != (rl.Vector3{Y: 1}) {
		t.Errorf("Expected +Y normal, got %v", hit.Normal)
	}
}

func TestRaycastBoxMisses(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	tests := []struct {
		name string
		ray  rl.Ray
		max  float32
	}{
		{"beside", down(rl.Vector3{X: 5, Y: 10}), 100},
		{"behind", rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{Y: 1}}, 100},
		{"too far", down(rl.Vector3{Y: 10}), 5},
		{"parallel outside", rl.Ray{Position: rl.Vector3{Y: 5}, Direction: rl.Vector3{X: 1}}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := RaycastBox(tt.ray, box, tt.max); ok {
				t.Error("Expected miss")
			}
		})
	}
}

func TestRaycastBoxFromInside(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	hit, ok := RaycastBox(rl.Ray{Position: rl.Vector3{}, Direction: rl.Vector3{X: 1}}, box, 100)
	if !ok {
		t.Fatal("Expected hit from inside")
	}
	if math.Abs(float64(hit.Distance-1)) > 1e-4 {
		t.Errorf("Expected distance 1, got %f", hit.Distance)
	}
}

func TestRaycastSphere(t *testing.T) {
	center := rl.Vector3{X: 0, Y: 0, Z: -5}
	ray := rl.Ray{Position: rl.Vector3{}, Direction: rl.Vector3{Z: -1}}

	hit, ok := RaycastSphere(ray, center, 1, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if math.Abs(float64(hit.Distance-4)) > 1e-4 {
		t.Errorf("Expected distance 4, got %f", hit.Distance)
	}
	if math.Abs(float64(hit.Normal.Z-1)) > 1e-4 {
		t.Errorf("Expected +Z normal, got %v", hit.Normal)
	}

	if _, ok := RaycastSphere(ray, rl.Vector3{X: 3, Z: -5}, 1, 100); ok {
		t.Error("Expected miss for offset sphere")
	}
}

func TestAABBFromCenter(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{X: 1}, rl.Vector3{X: -2, Y: 4, Z: 2})

	if box.Min != (rl.Vector3{X: 0, Y: -2, Z: -1}) || box.Max != (rl.Vector3{X: 2, Y: 2, Z: 1}) {
		t.Errorf("Unexpected bounds %v %v", box.Min, box.Max)
	}
	if box.Center() != (rl.Vector3{X: 1}) {
		t.Errorf("Expected center (1,0,0), got %v", box.Center())
	}
	if !box.Contains(rl.Vector3{X: 1, Y: 1}) || box.Contains(rl.Vector3{X: 3}) {
		t.Error("Contains gave wrong result")
	}
}
