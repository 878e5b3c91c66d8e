package game

import (
	"log"

	"unrafita/internal/assets"
	"unrafita/internal/camera"
	"unrafita/internal/components"
	"unrafita/internal/config"
	"unrafita/internal/interact"
	"unrafita/internal/ui"
	"unrafita/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Session holds the viewer state shared by input handling and the frame
// loop: the loaded world, the camera, the pointer, the hover resolver, the
// character walker and the modal.
type Session struct {
	World    *world.World
	Camera   *camera.Orbit
	Pointer  interact.Pointer
	Resolver *interact.Resolver
	Walker   *components.GridWalker
	Modal    *ui.Modal

	// ShowGrid keeps helper nodes visible outside debug mode.
	ShowGrid bool
}

func NewSession(cfg config.Config) *Session {
	w := world.New(cfg.Scene.Interactive, cfg.Scene.Character, assets.LookupColor(cfg.Scene.Background))

	cam := camera.NewOrbit(vec3(cfg.Camera.Position), vec3(cfg.Camera.Target), cfg.Camera.HalfHeight)
	cam.Near = cfg.Camera.Near
	cam.Far = cfg.Camera.Far
	cam.Resize(cfg.Window.Width, cfg.Window.Height)

	walker := components.NewGridWalker()
	walker.MoveDistance = cfg.Character.MoveDistance
	walker.JumpHeight = cfg.Character.JumpHeight
	walker.MoveDuration = cfg.Character.MoveDuration

	content := ui.ContentRegistry(cfg.Modal)
	if len(content) == 0 {
		content = ui.DefaultContent()
	}

	return &Session{
		World:    w,
		Camera:   cam,
		Resolver: interact.NewResolver(),
		Walker:   walker,
		Modal:    ui.NewModal(content),
		ShowGrid: cfg.Scene.ShowGrid,
	}
}

// Load reads the scene file and hands the character to the walker. A failed
// load leaves an empty, usable scene.
func (s *Session) Load(path string) {
	if err := s.World.LoadScene(path); err != nil {
		log.Printf("Game: scene unavailable: %v", err)
	}
	s.AttachCharacter()
	s.World.ShowHelpers(s.ShowGrid)
	s.World.Scene.Start()
}

// AttachCharacter binds the walker to the registry's character. It reports
// false when the scene has none, in which case moves stay no-ops.
func (s *Session) AttachCharacter() bool {
	character := s.World.Registry.Character
	if character == nil || s.Walker.Ready() {
		return s.Walker.Ready()
	}
	character.AddComponent(s.Walker)
	return true
}

// PointerMoved records a pointer position in window pixels.
func (s *Session) PointerMoved(x, y float32, width, height int32) {
	s.Pointer.Move(x, y, width, height)
}

// Move asks the character to take one step.
func (s *Session) Move(d components.Direction) bool {
	return s.Walker.RequestMove(d)
}

// Step advances the scene by deltaTime and recomputes the hover selection
// from the current pointer.
func (s *Session) Step(deltaTime float32) string {
	s.World.Update(deltaTime)
	ray := s.Camera.RayFromNDC(s.Pointer.NDC.X, s.Pointer.NDC.Y)
	return s.Resolver.Resolve(ray, s.World.Registry.Interactive)
}

// Click opens the modal for the hovered object, if any.
func (s *Session) Click() {
	s.Resolver.Click(s.Modal)
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
