package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"unrafita/internal/ui"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location, relative to the working directory.
const DefaultPath = "config/viewer.yaml"

type Config struct {
	Window    WindowConfig          `yaml:"window"`
	Scene     SceneConfig           `yaml:"scene"`
	Character CharacterConfig       `yaml:"character"`
	Camera    CameraConfig          `yaml:"camera"`
	Keys      map[string][]string   `yaml:"keys"` // direction name -> key names
	Modal     map[string]ui.Content `yaml:"modal"`
	LogLevel  string                `yaml:"logLevel"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"targetFPS"`
	MSAA      bool   `yaml:"msaa"`
}

type SceneConfig struct {
	Path        string   `yaml:"path"`
	Interactive []string `yaml:"interactive"` // node names that can be picked
	Character   string   `yaml:"character"`   // node name of the controllable character
	Background  string   `yaml:"background"`
	ShowGrid    bool     `yaml:"showGrid"`
}

type CharacterConfig struct {
	MoveDistance float32 `yaml:"moveDistance"`
	JumpHeight   float32 `yaml:"jumpHeight"`
	MoveDuration float32 `yaml:"moveDuration"`
}

type CameraConfig struct {
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	HalfHeight float32    `yaml:"halfHeight"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
}

// Default returns the built-in settings of the sandbox scene.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "unrafita sandbox",
			TargetFPS: 60,
			MSAA:      true,
		},
		Scene: SceneConfig{
			Path:        "assets/scenes/sandbox.json",
			Interactive: []string{"cartel", "Character"},
			Character:   "Character",
			Background:  "#acf4fc",
			ShowGrid:    false,
		},
		Character: CharacterConfig{
			MoveDistance: 0.5,
			JumpHeight:   1,
			MoveDuration: 0.2,
		},
		Camera: CameraConfig{
			Position:   [3]float32{8, 2, 5},
			Target:     [3]float32{0, 0, 0},
			HalfHeight: 5,
			Near:       0.1,
			Far:        1000,
		},
		Keys: map[string][]string{
			"forward": {"w", "arrowup"},
			"back":    {"s", "arrowdown"},
			"left":    {"a", "arrowleft"},
			"right":   {"d", "arrowright"},
		},
		Modal:    ui.DefaultContent(),
		LogLevel: "warning",
	}
}

// Load reads the YAML file at path over Default, then applies environment
// overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadEnv loads KEY=VALUE pairs from a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("UNRAFITA_SCENE"); ok && v != "" {
		c.Scene.Path = v
	}
	if v, ok := lookup("UNRAFITA_LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	ints := []struct {
		key string
		dst *int32
	}{
		{"UNRAFITA_WIDTH", &c.Window.Width},
		{"UNRAFITA_HEIGHT", &c.Window.Height},
		{"UNRAFITA_FPS", &c.Window.TargetFPS},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return fmt.Errorf("env %s: %w", e.key, err)
		}
		*e.dst = int32(n)
	}
	return nil
}

// Validate rejects settings the viewer cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Character.MoveDuration <= 0 {
		errs = append(errs, fmt.Errorf("character.moveDuration must be positive, got %g", c.Character.MoveDuration))
	}
	if c.Character.MoveDistance <= 0 {
		errs = append(errs, fmt.Errorf("character.moveDistance must be positive, got %g", c.Character.MoveDistance))
	}
	if c.Camera.HalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("camera.halfHeight must be positive, got %g", c.Camera.HalfHeight))
	}
	if c.Scene.Path == "" {
		errs = append(errs, errors.New("scene.path is empty"))
	}
	return errors.Join(errs...)
}
