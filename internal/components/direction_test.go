package components

import "testing"

func TestParseDirection(t *testing.T) {
	tests := map[string]Direction{
		"w":          DirectionForward,
		"W":          DirectionForward,
		"ArrowUp":    DirectionForward,
		"s":          DirectionBack,
		"arrowdown":  DirectionBack,
		"A":          DirectionLeft,
		"ARROWLEFT":  DirectionLeft,
		"d":          DirectionRight,
		"ArrowRight": DirectionRight,
		"q":          DirectionNone,
		"":           DirectionNone,
		"Enter":      DirectionNone,
	}

	for key, want := range tests {
		if got := ParseDirection(key); got != want {
			t.Errorf("ParseDirection(%q) = %s, want %s", key, got, want)
		}
	}
}

func TestDirectionStepTable(t *testing.T) {
	seen := map[float32]bool{}
	for _, d := range []Direction{DirectionForward, DirectionBack, DirectionLeft, DirectionRight} {
		step, ok := d.Step()
		if !ok {
			t.Fatalf("%s should have a step", d)
		}
		if step.Sign != 1 && step.Sign != -1 {
			t.Errorf("%s sign = %f, want ±1", d, step.Sign)
		}
		seen[step.Facing] = true
	}
	if len(seen) != 4 {
		t.Errorf("Expected 4 distinct facings, got %v", seen)
	}

	if _, ok := DirectionNone.Step(); ok {
		t.Error("DirectionNone should have no step")
	}
}

func TestDirectionByName(t *testing.T) {
	if DirectionByName(" Forward ") != DirectionForward {
		t.Error("Expected forward")
	}
	if DirectionByName("up") != DirectionNone {
		t.Error("Expected none for unknown name")
	}
}
