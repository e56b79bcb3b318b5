// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"log/slog"

	"github.com/spf13/afero"

	"fileops/internal/adapters/filesystem"
	"fileops/internal/fileops"
	"fileops/internal/logging"
)

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// MemoryManager returns a file operations manager over an empty in-memory
// filesystem, together with that filesystem so tests can seed or inspect files.
func MemoryManager() (*fileops.Manager, afero.Fs) {
	memFs := afero.NewMemMapFs()
	return fileops.NewManager(filesystem.NewWithFs(memFs), Logger()), memFs
}
