// Package filesystem adapts an afero filesystem to domain.FileSystemAdapter.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"fileops/internal/domain"
)

// Adapter provides file system operations.
type Adapter struct {
	fs afero.Fs
}

// New creates a filesystem adapter backed by the host operating system.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a filesystem adapter on top of the given afero filesystem.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

// Create creates or truncates the named file.
func (a *Adapter) Create(path string) (io.WriteCloser, error) {
	return a.fs.Create(path)
}

// ReadFile reads a file from disk.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// MkdirAll creates a directory and all necessary parents.
func (a *Adapter) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// Remove deletes a file.
func (a *Adapter) Remove(path string) error {
	return a.fs.Remove(path)
}

// Lstat returns file info without following a final symbolic link.
// Filesystems without symlink support fall back to Stat.
func (a *Adapter) Lstat(path string) (os.FileInfo, error) {
	if lstater, ok := a.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return a.fs.Stat(path)
}

var _ domain.FileSystemAdapter = (*Adapter)(nil)
