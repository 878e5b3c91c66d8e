package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Character")
	child := NewGameObject("Character_mesh")
	obj.AddChild(child)

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}

	if child.Scene != scene {
		t.Error("Child GameObject.Scene not set")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	root := NewGameObject("Scene")
	nested := NewGameObject("Character")
	root.AddChild(nested)
	scene.AddGameObject(root)

	if scene.FindByName("Character") != nested {
		t.Error("FindByName should search the whole hierarchy")
	}

	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Sign1")
	obj2 := NewGameObject("Sign2")
	obj3 := NewGameObject("Ground")

	obj1.Tags = []string{"interactive", "sign"}
	obj2.Tags = []string{"interactive"}
	obj3.Tags = []string{"static"}

	obj3.AddChild(obj2)
	scene.AddGameObject(obj1)
	scene.AddGameObject(obj3)

	interactive := scene.FindByTag("interactive")
	if len(interactive) != 2 {
		t.Errorf("Expected 2 interactive objects, got %d", len(interactive))
	}

	notFound := scene.FindByTag("nonexistent")
	if len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}
