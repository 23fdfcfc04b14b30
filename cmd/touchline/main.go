package main

import (
	"fmt"
	"os"

	"github.com/jdlinklater/touchline/internal/archive"
	"github.com/jdlinklater/touchline/internal/config"
	"github.com/jdlinklater/touchline/internal/engine"
	"github.com/jdlinklater/touchline/internal/models"
	"github.com/jdlinklater/touchline/internal/sim/rng"
	"github.com/jdlinklater/touchline/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	models.SaveDir = cfg.SaveDir

	src := rng.NewFromTime()
	if cfg.Seed != 0 {
		src = rng.New(cfg.Seed)
	}

	arch, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		fmt.Printf("Error opening archive: %v\n", err)
		os.Exit(1)
	}
	defer arch.Close()

	eng := engine.New(src, cfg.Tuning, arch)

	if err := tui.Run(eng); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
