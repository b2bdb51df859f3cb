package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/osse101/NeoCity_Go/internal/config"
	"github.com/osse101/NeoCity_Go/internal/game"
	"github.com/osse101/NeoCity_Go/internal/job"
	"github.com/osse101/NeoCity_Go/internal/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	initLogger(cfg)

	jobs, err := job.NewCatalog()
	if err != nil {
		slog.Error("Failed to build job catalog", "error", err)
		os.Exit(1)
	}
	zones, err := world.NewCatalog()
	if err != nil {
		slog.Error("Failed to build zone catalog", "error", err)
		os.Exit(1)
	}
	slog.Debug("Catalogs loaded", "jobs", jobs.Len(), "zones", zones.Len())

	g := game.New(os.Stdin, os.Stdout, jobs, zones)
	if err := g.Play(context.Background()); err != nil {
		slog.Error("Session ended with error", "error", err)
		os.Exit(1)
	}
}
