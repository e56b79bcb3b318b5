package app

import (
	"context"
	"log/slog"

	"fileops/internal/adapters/filesystem"
	"fileops/internal/config"
	"fileops/internal/fileops"
	"fileops/internal/logging"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = config.Default()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != nil {
		level = *cfg.LogLevel
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	// Create logger.
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	if settings.Log.Format != "" {
		logCfg.Format = settings.Log.Format
	}
	if cfg.LogOutput != nil {
		logCfg.Output = cfg.LogOutput
	}
	logger := logging.NewLogger(logCfg)

	// Create filesystem adapter.
	fs := cfg.FileSystem
	if fs == nil {
		fs = filesystem.New()
	}

	// Create file operations manager.
	fileOps := fileops.NewManager(fs, logger)

	logger.DebugContext(ctx, "Initializing fileops with configuration",
		"logLevel", level.String(),
		"verbose", cfg.Verbose,
		"directory", settings.Directory)

	return &App{
		FileOps:    fileOps,
		FileSystem: fs,
		Logger:     logger,
		Settings:   settings,
		Config:     cfg,
	}, nil
}
