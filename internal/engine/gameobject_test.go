package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if !obj.Active {
		t.Error("New GameObject should be active")
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}

	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"interactive", "sign"}

	if !obj.HasTag("interactive") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 || parent.Children[0] != child {
		t.Fatalf("Child not added to parent's Children slice: %v", parent.Children)
	}
}

func TestGameObjectReparent(t *testing.T) {
	a := NewGameObject("A")
	b := NewGameObject("B")
	child := NewGameObject("Child")

	a.AddChild(child)
	b.AddChild(child)

	if len(a.Children) != 0 {
		t.Errorf("Old parent should lose the child, has %d children", len(a.Children))
	}
	if child.Parent != b {
		t.Error("Child.Parent should be the new parent")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectTraverseOrder(t *testing.T) {
	root := NewGameObject("root")
	a := NewGameObject("a")
	b := NewGameObject("b")
	a1 := NewGameObject("a1")
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(a1)

	var names []string
	root.Traverse(func(g *GameObject) {
		names = append(names, g.Name)
	})

	want := []string{"root", "a", "a1", "b"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestGameObjectAddComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	if len(obj.components) != 1 {
		t.Errorf("Expected 1 component, got %d", len(obj.components))
	}

	if comp.gameObject != obj {
		t.Error("Component.gameObject should be set")
	}
}

func TestGameObjectGetComponent(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &BaseComponent{}

	obj.AddComponent(comp)

	found := GetComponent[*BaseComponent](obj)
	if found != comp {
		t.Error("GetComponent failed to find component")
	}

	if GetComponent[*BaseComponent](nil) != nil {
		t.Error("GetComponent on nil object should return nil")
	}
}

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()            { c.starts++ }
func (c *countingComponent) Update(dt float32) { c.updates++ }

func TestGameObjectStartCalledOnce(t *testing.T) {
	obj := NewGameObject("Test")
	child := NewGameObject("Child")
	comp := &countingComponent{}
	childComp := &countingComponent{}
	obj.AddComponent(comp)
	child.AddComponent(childComp)
	obj.AddChild(child)

	obj.Start()
	obj.Start()

	if comp.starts != 1 {
		t.Errorf("Expected Start once, got %d", comp.starts)
	}
	if childComp.starts != 1 {
		t.Errorf("Expected child Start once, got %d", childComp.starts)
	}
}

func TestGameObjectUpdateSkipsInactive(t *testing.T) {
	obj := NewGameObject("Test")
	comp := &countingComponent{}
	obj.AddComponent(comp)

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)

	if comp.updates != 1 {
		t.Errorf("Expected 1 update, got %d", comp.updates)
	}
}

func TestGameObjectWorldPosition(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 0}
	parent.AddChild(child)

	pos := child.WorldPosition()
	if !near(pos.X, 3) || !near(pos.Y, 2) || !near(pos.Z, 3) {
		t.Errorf("Expected (3, 2, 3), got %v", pos)
	}

	parent.Transform.Rotation.Y = 90
	pos = child.WorldPosition()
	if !near(math.Abs(float64(pos.Z-3)), 2) || !near(pos.X, 1) {
		t.Errorf("Rotated child should sit 2 units off the parent on Z, got %v", pos)
	}
}

func near[T float32 | float64](got T, want float64) bool {
	return math.Abs(float64(got)-want) < 1e-4
}
