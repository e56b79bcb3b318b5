package domain

import (
	"io"
	"os"
)

// FileSystemAdapter defines the interface for file operations.
type FileSystemAdapter interface {
	Create(path string) (io.WriteCloser, error)
	ReadFile(path string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	Lstat(path string) (os.FileInfo, error)
}
