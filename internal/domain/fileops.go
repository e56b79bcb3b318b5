package domain

// FileOperations manages files addressed by a directory and a file name.
type FileOperations interface {
	// CreateFile creates an empty file, creating missing directories first.
	// An existing file is truncated.
	CreateFile(directory, fileName string) error

	// ReadFile returns the whole content of a file as text.
	ReadFile(directory, fileName string) (string, error)

	// DeleteFile removes a file.
	DeleteFile(directory, fileName string) error
}
