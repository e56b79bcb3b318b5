// Package fileops creates, reads and deletes files addressed by a directory
// and a file name.
//
// Each operation is a direct call into the filesystem. Nothing is cached,
// retried or validated beyond what the host filesystem enforces, and
// concurrent access to the same path is not coordinated. Failures are
// returned as *errors.IOError values that unwrap to the underlying OS error.
package fileops

import (
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"fileops/internal/adapters/filesystem"
	"fileops/internal/domain"
	"fileops/internal/errors"
	"fileops/internal/logging"
)

const (
	// DirPerm is the permission used for directories created by CreateFile.
	DirPerm os.FileMode = 0o755
)

// Manager implements domain.FileOperations on top of a filesystem adapter.
type Manager struct {
	fs     domain.FileSystemAdapter
	logger *slog.Logger
}

// NewManager creates a new file operations manager.
func NewManager(fs domain.FileSystemAdapter, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.NewTestLogger()
	}
	return &Manager{
		fs:     fs,
		logger: logger,
	}
}

// CreateFile ensures directory exists, then creates an empty file in it.
// An existing file is truncated. An empty directory means the working
// directory.
func (m *Manager) CreateFile(directory, fileName string) error {
	logger := logging.WithOperation(m.logger, "create")
	path := resolve(directory, fileName)

	if directory != "" {
		if err := m.fs.MkdirAll(directory, DirPerm); err != nil {
			logger.Debug("Failed to create directory", "dir", directory, "error", err)
			return errors.NewIOError("mkdir", directory, err)
		}
	}

	f, err := m.fs.Create(path)
	if err != nil {
		logger.Debug("Failed to create file", "path", path, "error", err)
		return errors.NewIOError("create", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewIOError("create", path, err)
	}

	logger.Debug("Created file", "dir", directory, "file", fileName)
	return nil
}

// ReadFile returns the full content of the file as UTF-8 text.
func (m *Manager) ReadFile(directory, fileName string) (string, error) {
	logger := logging.WithOperation(m.logger, "read")
	path := resolve(directory, fileName)

	data, err := m.fs.ReadFile(path)
	if err != nil {
		logger.Debug("Failed to read file", "path", path, "error", err)
		return "", errors.NewIOError("read", path, err)
	}

	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		logger.Debug("File content is not valid UTF-8", "path", path, "error", err)
		return "", errors.NewIOError("read", path, errors.ErrInvalidEncoding)
	}

	logger.Debug("Read file", "dir", directory, "file", fileName, "bytes", len(data))
	return string(data), nil
}

// DeleteFile removes the file. Directories are rejected; a symbolic link is
// removed itself, whatever it points to.
func (m *Manager) DeleteFile(directory, fileName string) error {
	logger := logging.WithOperation(m.logger, "delete")
	path := resolve(directory, fileName)

	info, err := m.fs.Lstat(path)
	if err != nil {
		logger.Debug("Failed to stat file", "path", path, "error", err)
		return errors.NewIOError("delete", path, err)
	}
	if info.IsDir() {
		return errors.NewIOError("delete", path, errors.ErrNotAFile)
	}

	if err := m.fs.Remove(path); err != nil {
		logger.Debug("Failed to remove file", "path", path, "error", err)
		return errors.NewIOError("delete", path, err)
	}

	logger.Debug("Deleted file", "dir", directory, "file", fileName)
	return nil
}

// resolve joins fileName onto directory. An absolute fileName replaces the
// directory entirely.
func resolve(directory, fileName string) string {
	if filepath.IsAbs(fileName) {
		return filepath.Clean(fileName)
	}
	return filepath.Join(directory, fileName)
}

var _ domain.FileOperations = (*Manager)(nil)

//nolint:gochecknoglobals // Default manager for the package-level helpers
var defaultManager = NewManager(filesystem.New(), nil)

// CreateFile creates an empty file in directory on the host filesystem.
func CreateFile(directory, fileName string) error {
	return defaultManager.CreateFile(directory, fileName)
}

// ReadFile reads a file in directory on the host filesystem.
func ReadFile(directory, fileName string) (string, error) {
	return defaultManager.ReadFile(directory, fileName)
}

// DeleteFile deletes a file in directory on the host filesystem.
func DeleteFile(directory, fileName string) error {
	return defaultManager.DeleteFile(directory, fileName)
}
