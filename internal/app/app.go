package app

import (
	"context"
	"io"
	"log/slog"

	"fileops/internal/config"
	"fileops/internal/domain"
)

// App contains all application dependencies.
type App struct {
	// File operations used by every command
	FileOps domain.FileOperations

	// Filesystem backing FileOps
	FileSystem domain.FileSystemAdapter

	// Logging
	Logger *slog.Logger

	// Effective settings
	Settings *config.Settings

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel   *slog.Level
	Verbose    bool
	LogOutput  io.Writer
	FileSystem domain.FileSystemAdapter
	Settings   *config.Settings
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = &level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// WithLogOutput sets where log records are written.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// WithFileSystem replaces the host filesystem, mainly for tests.
func WithFileSystem(fs domain.FileSystemAdapter) Option {
	return func(cfg *Config) {
		cfg.FileSystem = fs
	}
}

// WithSettings applies loaded settings. Their log level is used unless
// WithLogLevel or WithVerbose says otherwise.
func WithSettings(settings *config.Settings) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		Verbose: false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}
