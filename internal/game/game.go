package game

import (
	"fmt"
	"log"
	"strings"

	"unrafita/internal/assets"
	"unrafita/internal/components"
	"unrafita/internal/config"
	"unrafita/internal/engine"
	"unrafita/internal/interact"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    config.Config
	Session   *Session
	Bindings  Bindings
	DebugMode bool

	lastMouse rl.Vector2
	setCursor func(interact.Cursor)
}

func New(cfg config.Config) *Game {
	g := &Game{
		Config:    cfg,
		Session:   NewSession(cfg),
		Bindings:  NewBindings(cfg.Keys),
		setCursor: setMouseCursor,
	}
	g.Session.Resolver.OnHoverChanged.AddListener(g.hoverChanged)
	g.Session.Walker.OnMoveComplete.AddListener(func(pos rl.Vector3) {
		if g.DebugMode {
			log.Printf("Game: character at %v", pos)
		}
	})
	return g
}

func (g *Game) Run() {
	var flags uint32 = rl.FlagWindowResizable
	if g.Config.Window.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	setTraceLogLevel(g.Config.LogLevel)

	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)

	// Models need the OpenGL context
	assets.Init()
	defer assets.Unload()

	g.Session.Load(g.Config.Scene.Path)
	defer g.Session.World.Unload()

	g.Session.Camera.Resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	g.lastMouse = rl.GetMousePosition()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()
	s := g.Session
	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	if rl.IsWindowResized() {
		s.Camera.Resize(width, height)
	}

	mouse := rl.GetMousePosition()
	if mouse != g.lastMouse {
		s.PointerMoved(mouse.X, mouse.Y, width, height)
		g.lastMouse = mouse
	}

	if d := g.Bindings.Poll(eitherKey(rl.IsKeyPressed, rl.IsKeyPressedRepeat)); d != components.DirectionNone {
		s.Move(d)
	}

	// Toggle debug mode
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		s.World.ShowHelpers(g.DebugMode || s.ShowGrid)
	}

	s.Step(deltaTime)

	overModal := s.Modal.Contains(mouse)
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overModal {
		s.Click()
	}
	s.Camera.Update(overModal || s.Modal.Visible)
}

// hoverChanged follows the resolver: a pointing hand over an interactive
// object, the default arrow elsewhere.
func (g *Game) hoverChanged(hover string) {
	if hover == "" {
		g.setCursor(interact.CursorDefault)
		return
	}
	g.setCursor(interact.CursorPointer)
}

func setMouseCursor(c interact.Cursor) {
	if c == interact.CursorPointer {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// eitherKey reports a key when any check does. Polling with the OS
// auto-repeat check as well keeps a held key walking.
func eitherKey(checks ...func(int32) bool) func(int32) bool {
	return func(key int32) bool {
		for _, check := range checks {
			if check(key) {
				return true
			}
		}
		return false
	}
}

func (g *Game) Draw() {
	s := g.Session

	if g.DebugMode && len(s.Resolver.Hits) > 0 {
		s.World.Renderer.Highlight = s.Resolver.Hits[0].Object
	} else {
		s.World.Renderer.Highlight = nil
	}

	rl.BeginDrawing()
	s.World.Draw(s.Camera.Camera3D(), s.Camera.Aspect(), s.Camera.Near, s.Camera.Far)
	g.DrawUI()
	s.Modal.Draw()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD / arrows to walk, drag to orbit, click the sign", 10, 10, 20, rl.DarkGray)

	if g.DebugMode {
		s := g.Session
		drawn, culled := s.World.Renderer.Stats()
		rl.DrawFPS(10, 35)
		rl.DrawText(fmt.Sprintf("Hover: %q", s.Resolver.Hover), 10, 60, 16, rl.DarkGreen)
		rl.DrawText(fmt.Sprintf("Pointer: (%.2f, %.2f)", s.Pointer.NDC.X, s.Pointer.NDC.Y), 10, 80, 16, rl.DarkGreen)
		rl.DrawText(fmt.Sprintf("Character: %s", s.Walker.State()), 10, 100, 16, rl.DarkGreen)
		rl.DrawText(fmt.Sprintf("Drawn: %d  Culled: %d", drawn, culled), 10, 120, 16, rl.DarkGreen)
		if len(s.Resolver.Hits) > 0 {
			hit := s.Resolver.Hits[0].Object
			if renderer := engine.GetComponent[*components.ModelRenderer](hit); renderer != nil {
				rl.DrawText(fmt.Sprintf("Hit: %s (%s)", hit.Name, renderer.Describe()), 10, 140, 16, rl.DarkGreen)
			}
		}
	}
}

func setTraceLogLevel(level string) {
	switch strings.ToLower(level) {
	case "all", "trace":
		rl.SetTraceLogLevel(rl.LogAll)
	case "debug":
		rl.SetTraceLogLevel(rl.LogDebug)
	case "info":
		rl.SetTraceLogLevel(rl.LogInfo)
	case "error":
		rl.SetTraceLogLevel(rl.LogError)
	case "none", "off":
		rl.SetTraceLogLevel(rl.LogNone)
	default:
		rl.SetTraceLogLevel(rl.LogWarning)
	}
}
