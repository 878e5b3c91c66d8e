package game

import (
	"sort"
	"strings"

	"unrafita/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var namedKeys = map[string]int32{
	"arrowup":    rl.KeyUp,
	"arrowdown":  rl.KeyDown,
	"arrowleft":  rl.KeyLeft,
	"arrowright": rl.KeyRight,
	"space":      rl.KeySpace,
}

// KeyCode maps a key name ("w", "ArrowUp", "7") to a raylib key code.
func KeyCode(name string) (int32, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if code, ok := namedKeys[name]; ok {
		return code, true
	}
	if len(name) == 1 {
		switch c := name[0]; {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), true
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), true
		}
	}
	return 0, false
}

type binding struct {
	key       int32
	direction components.Direction
}

// Bindings maps pressed keys to walk directions.
type Bindings []binding

// NewBindings builds bindings from direction name -> key names. Unknown
// directions and keys are skipped.
func NewBindings(keys map[string][]string) Bindings {
	var b Bindings
	for name, keyNames := range keys {
		d := components.DirectionByName(name)
		if d == components.DirectionNone {
			continue
		}
		for _, k := range keyNames {
			if code, ok := KeyCode(k); ok {
				b = append(b, binding{key: code, direction: d})
			}
		}
	}
	sort.Slice(b, func(i, j int) bool {
		return b[i].key < b[j].key
	})
	return b
}

// Direction returns the direction bound to key.
func (b Bindings) Direction(key int32) components.Direction {
	for _, bind := range b {
		if bind.key == key {
			return bind.direction
		}
	}
	return components.DirectionNone
}

// Poll returns the direction of the first bound key reported pressed.
func (b Bindings) Poll(pressed func(key int32) bool) components.Direction {
	for _, bind := range b {
		if pressed(bind.key) {
			return bind.direction
		}
	}
	return components.DirectionNone
}
