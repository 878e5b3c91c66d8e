package components

import "strings"

// Direction is one of the four grid steps a GridWalker accepts.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBack
	DirectionLeft
	DirectionRight
)

// Axis selects the horizontal axis a step moves along.
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

// Step is the motion a direction produces: Sign times the step size along
// Axis, and an absolute facing angle in degrees about Y.
type Step struct {
	Axis   Axis
	Sign   float32
	Facing float32
}

var steps = map[Direction]Step{
	DirectionForward: {Axis: AxisZ, Sign: -1, Facing: 180},
	DirectionBack:    {Axis: AxisZ, Sign: 1, Facing: 0},
	DirectionLeft:    {Axis: AxisX, Sign: -1, Facing: -90},
	DirectionRight:   {Axis: AxisX, Sign: 1, Facing: 90},
}

// Step returns the motion for d. ok is false for DirectionNone and
// out-of-range values.
func (d Direction) Step() (Step, bool) {
	s, ok := steps[d]
	return s, ok
}

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBack:
		return "back"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// defaultKeyNames maps key identifiers to directions; arrow keys alias WASD.
var defaultKeyNames = map[string]Direction{
	"w":          DirectionForward,
	"arrowup":    DirectionForward,
	"s":          DirectionBack,
	"arrowdown":  DirectionBack,
	"a":          DirectionLeft,
	"arrowleft":  DirectionLeft,
	"d":          DirectionRight,
	"arrowright": DirectionRight,
}

// ParseDirection maps a key identifier such as "W" or "ArrowUp" to a
// direction, ignoring case. Unknown keys give DirectionNone.
func ParseDirection(key string) Direction {
	return defaultKeyNames[strings.ToLower(strings.TrimSpace(key))]
}

// DirectionByName parses a direction name as written in config files.
func DirectionByName(name string) Direction {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "forward":
		return DirectionForward
	case "back":
		return DirectionBack
	case "left":
		return DirectionLeft
	case "right":
		return DirectionRight
	default:
		return DirectionNone
	}
}
