package components

import (
	"unrafita/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MotionState is the state of a GridWalker.
type MotionState int

const (
	MotionIdle MotionState = iota
	MotionMoving
)

func (s MotionState) String() string {
	if s == MotionMoving {
		return "moving"
	}
	return "idle"
}

// GridWalker moves its GameObject one grid cell per accepted request, with a
// jump arc. A step always runs to completion; requests made while a step is
// in flight, or before the walker is attached, are dropped.
type GridWalker struct {
	engine.BaseComponent

	MoveDistance float32 // grid cell width
	JumpHeight   float32
	MoveDuration float32 // seconds for the horizontal step and for each half of the jump

	// OnMoveComplete fires with the final position once per finished step,
	// after the state returns to idle.
	OnMoveComplete engine.Event[rl.Vector3]

	state MotionState

	moveX, moveZ, turn *gween.Tween
	rise, fall         *gween.Tween
	risen              bool

	start          rl.Vector3
	target         rl.Vector3
	targetRotation float32
}

func NewGridWalker() *GridWalker {
	return &GridWalker{
		MoveDistance: 0.5,
		JumpHeight:   1,
		MoveDuration: 0.2,
	}
}

func (w *GridWalker) State() MotionState {
	return w.state
}

func (w *GridWalker) IsMoving() bool {
	return w.state == MotionMoving
}

// Ready reports whether the walker is attached to a character.
func (w *GridWalker) Ready() bool {
	return w.GetGameObject() != nil
}

// Target returns the destination of the current or last step.
func (w *GridWalker) Target() (position rl.Vector3, rotation float32) {
	return w.target, w.targetRotation
}

// RequestMove starts a step in direction d. It returns false, changing
// nothing, when a step is already running, no character is attached, or d is
// not one of the four directions.
func (w *GridWalker) RequestMove(d Direction) bool {
	if w.state == MotionMoving {
		return false
	}
	g := w.GetGameObject()
	if g == nil {
		return false
	}
	step, ok := d.Step()
	if !ok {
		return false
	}

	pos := g.Transform.Position
	target := pos
	offset := step.Sign * w.MoveDistance
	switch step.Axis {
	case AxisX:
		target.X += offset
	case AxisZ:
		target.Z += offset
	}

	w.start = pos
	w.target = target
	w.targetRotation = step.Facing

	w.moveX = gween.New(pos.X, target.X, w.MoveDuration, ease.Linear)
	w.moveZ = gween.New(pos.Z, target.Z, w.MoveDuration, ease.Linear)
	w.turn = gween.New(g.Transform.Rotation.Y, step.Facing, w.MoveDuration, ease.Linear)
	w.rise = gween.New(pos.Y, pos.Y+w.JumpHeight, w.MoveDuration, ease.Linear)
	w.fall = gween.New(pos.Y+w.JumpHeight, pos.Y, w.MoveDuration, ease.Linear)
	w.risen = false

	w.state = MotionMoving
	return true
}

// Update advances the running step by deltaTime seconds.
func (w *GridWalker) Update(deltaTime float32) {
	if w.state != MotionMoving {
		return
	}
	g := w.GetGameObject()
	if g == nil {
		return
	}

	x, doneX := w.moveX.Update(deltaTime)
	z, doneZ := w.moveZ.Update(deltaTime)
	rot, doneTurn := w.turn.Update(deltaTime)

	var y float32
	jumpDone := false
	if !w.risen {
		var up bool
		y, up = w.rise.Update(deltaTime)
		if up {
			w.risen = true
			// carry the part of this tick past the apex into the descent
			if w.rise.Overflow > 0 {
				y, jumpDone = w.fall.Update(w.rise.Overflow)
			}
		}
	} else {
		y, jumpDone = w.fall.Update(deltaTime)
	}

	g.Transform.Position = rl.Vector3{X: x, Y: y, Z: z}
	g.Transform.Rotation.Y = rot

	if doneX && doneZ && doneTurn && jumpDone {
		w.finish(g)
	}
}

func (w *GridWalker) finish(g *engine.GameObject) {
	g.Transform.Position = rl.Vector3{X: w.target.X, Y: w.start.Y, Z: w.target.Z}
	g.Transform.Rotation.Y = w.targetRotation
	w.state = MotionIdle
	w.OnMoveComplete.Invoke(g.Transform.Position)
}
