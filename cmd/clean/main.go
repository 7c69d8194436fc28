package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/flightgraph/internal/config"
	"github.com/JonMunkholm/flightgraph/internal/core"
	_ "github.com/JonMunkholm/flightgraph/internal/core/tables" // Register all entities
	"github.com/JonMunkholm/flightgraph/internal/logging"
	"github.com/JonMunkholm/flightgraph/internal/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envLoaded := godotenv.Overload() == nil

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Status lines own stdout; diagnostics go to stderr
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)

	slog.Debug("configuration loaded", "env_file", envLoaded, "config", cfg.String())
	slog.Debug("entities registered", "count", core.EntityCount())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := pipeline.Run(ctx, pipeline.Options{
		InputDir:  cfg.Paths.InputDir,
		OutputDir: cfg.Paths.ResolvedOutputDir(),
		Files:     pipeline.DefaultFiles(),
		Read: core.ReadOptions{
			Encoding:    cfg.Input.Encoding,
			MaxFileSize: cfg.Input.MaxFileSize,
		},
		Status: os.Stdout,
	})
	if err != nil {
		slog.Warn("cleaning interrupted", "error", err, "files_done", len(results))
		stop()
		os.Exit(1)
	}
}
