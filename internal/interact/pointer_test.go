package interact

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestToNDC(t *testing.T) {
	tests := []struct {
		name          string
		x, y          float32
		width, height int32
		want          rl.Vector2
	}{
		{"center", 400, 300, 800, 600, rl.Vector2{X: 0, Y: 0}},
		{"top left", 0, 0, 800, 600, rl.Vector2{X: -1, Y: 1}},
		{"bottom right", 800, 600, 800, 600, rl.Vector2{X: 1, Y: -1}},
		{"quarter", 200, 450, 800, 600, rl.Vector2{X: -0.5, Y: -0.5}},
		{"zero viewport", 10, 10, 0, 0, rl.Vector2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToNDC(tt.x, tt.y, tt.width, tt.height)
			if got != tt.want {
				t.Errorf("ToNDC(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPointerLastWriteWins(t *testing.T) {
	var p Pointer
	p.Move(0, 0, 100, 100)
	p.Move(50, 50, 100, 100)

	if p.NDC != (rl.Vector2{}) {
		t.Errorf("Expected center after second move, got %v", p.NDC)
	}
}
