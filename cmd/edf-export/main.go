package main

import (
	"log/slog"
	"os"

	"edf-export/internal/app"
	"edf-export/internal/convert"
	"edf-export/internal/saver"
	"edf-export/internal/slogx"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Saver  saver.Factory
	Status *convert.StatusLog
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}
	defer a.Status.Close()

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))

	files, err := convert.Discover(os.Args[1:])
	if err != nil {
		slog.Error("failed to discover recordings", "error", err)
		os.Exit(1)
	}
	slog.Info("found recordings", "count", len(files))

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		slog.Error("failed to create output dir", "error", err)
		os.Exit(1)
	}
	slog.Info("save dir", "dir", cfg.OutDir, "format", cfg.SaveFormat, "workers", cfg.Workers)

	summary := convert.Run(files, cfg.OutDir, a.Saver, a.Status, cfg.Workers)
	if err := convert.WriteRunReport(cfg.OutDir, summary); err != nil {
		slog.Warn("could not write run report", "error", err)
	}
	slog.Info("batch done", "converted", len(summary.Converted), "failed", len(summary.Failures))
}
