package world

import (
	"testing"

	"unrafita/internal/engine"
)

func TestBuildRegistry(t *testing.T) {
	scene := engine.NewScene("Test")
	root := engine.NewGameObject("Scene")
	cartel := engine.NewGameObject("cartel")
	character := engine.NewGameObject("Character")
	other := engine.NewGameObject("tree")
	root.AddChild(cartel)
	root.AddChild(other)
	other.AddChild(character)
	scene.AddGameObject(root)

	r := BuildRegistry(scene, []string{"cartel", "Character"}, "Character")

	if len(r.Interactive) != 2 {
		t.Fatalf("Expected 2 interactive, got %d", len(r.Interactive))
	}
	if r.Interactive[0] != cartel || r.Interactive[1] != character {
		t.Error("Interactive objects should follow traversal order")
	}
	if r.Character != character {
		t.Error("Expected Character to be resolved through nesting")
	}
}

func TestBuildRegistryTaggedNodes(t *testing.T) {
	scene := engine.NewScene("Test")
	bench := engine.NewGameObject("bench")
	bench.Tags = []string{InteractiveTag}
	tree := engine.NewGameObject("tree")
	tree.Tags = []string{"static"}
	scene.AddGameObject(tree)
	scene.AddGameObject(bench)

	r := BuildRegistry(scene, []string{"cartel"}, "Character")

	if len(r.Interactive) != 1 || r.Interactive[0] != bench {
		t.Errorf("Expected only the tagged bench, got %d objects", len(r.Interactive))
	}
}

func TestBuildRegistryEmpty(t *testing.T) {
	r := BuildRegistry(engine.NewScene("Empty"), []string{"cartel"}, "Character")
	if len(r.Interactive) != 0 || r.Character != nil {
		t.Error("Expected empty registry")
	}

	r = BuildRegistry(nil, nil, "")
	if r.Character != nil {
		t.Error("Expected empty registry for nil scene")
	}
}
