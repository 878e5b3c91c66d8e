package interact

import rl "github.com/gen2brain/raylib-go/raylib"

// Pointer holds the latest pointer position in normalized device
// coordinates. Each Move replaces the previous value.
type Pointer struct {
	NDC rl.Vector2
}

// ToNDC maps a screen position in pixels to [-1, 1] on both axes, with +Y up.
// A zero-sized viewport maps to the origin.
func ToNDC(x, y float32, width, height int32) rl.Vector2 {
	if width <= 0 || height <= 0 {
		return rl.Vector2{}
	}
	return rl.Vector2{
		X: x/float32(width)*2 - 1,
		Y: -(y/float32(height))*2 + 1,
	}
}

// Move records a new screen position.
func (p *Pointer) Move(x, y float32, width, height int32) {
	p.NDC = ToNDC(x, y, width, height)
}
