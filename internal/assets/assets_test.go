package assets

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLookupColor(t *testing.T) {
	tests := []struct {
		in   string
		want rl.Color
	}{
		{"Red", rl.Red},
		{"#acf4fc", rl.NewColor(0xac, 0xf4, 0xfc, 0xff)},
		{"#10203040", rl.NewColor(0x10, 0x20, 0x30, 0x40)},
		{"nope", rl.White},
		{"#zzzzzz", rl.White},
	}

	for _, tt := range tests {
		if got := LookupColor(tt.in); got != tt.want {
			t.Errorf("LookupColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexColorRejectsBadLength(t *testing.T) {
	if _, err := ParseHexColor("#abc"); err == nil {
		t.Error("Expected error for short hex")
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, err := LoadModel("does/not/exist.glb"); err == nil {
		t.Error("Expected error for missing model file")
	}
}
