package assets

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

// Manager caches models by path so that nodes sharing a file share the GPU data.
type Manager struct {
	models map[string]rl.Model
}

// Color name mapping for scene files and config
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
	"Magenta":   rl.Magenta,
}

// LookupColor returns a raylib color from a name or a #rrggbb / #rrggbbaa
// string. Unknown values give white.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	if c, err := ParseHexColor(name); err == nil {
		return c
	}
	return rl.White
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (rl.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
	}
}

// LoadModel loads a model file (glTF, GLB, OBJ, ...) once and caches it.
func LoadModel(path string) (rl.Model, error) {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model, nil
	}

	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("load model: %w", err)
	}

	model := rl.LoadModel(path)
	if model.MeshCount == 0 {
		return rl.Model{}, fmt.Errorf("load model %s: no meshes", path)
	}
	manager.models[path] = model
	return model, nil
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	manager.models = make(map[string]rl.Model)
}
