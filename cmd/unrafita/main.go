package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"unrafita/internal/config"
	"unrafita/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the viewer config file")
	envPath := flag.String("env", ".env", "path to a dotenv file")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		// Detect "go run" by checking if executable is in a temp/go-build directory
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	if err := config.LoadEnv(*envPath); err != nil {
		log.Printf("Config: %v", err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Config: %v, using defaults", err)
		cfg = config.Default()
	}

	g := game.New(cfg)
	g.Run()
}
