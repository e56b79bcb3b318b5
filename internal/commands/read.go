package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fileops/internal/domain"
	"fileops/internal/errors"
)

// ReadCommand handles reading a file as text.
type ReadCommand struct {
	fileOps domain.FileOperations
	logger  *slog.Logger
}

// NewReadCommand creates a new read command.
func NewReadCommand(fileOps domain.FileOperations, logger *slog.Logger) *ReadCommand {
	return &ReadCommand{
		fileOps: fileOps,
		logger:  logger,
	}
}

// ReadRequest contains the parameters for the read command.
type ReadRequest struct {
	Directory string
	FileName  string
}

// Execute returns the content of the requested file.
func (c *ReadCommand) Execute(ctx context.Context, req ReadRequest) (string, error) {
	if req.FileName == "" {
		return "", errors.NewValidationError("file_name", "", "required", "file name must not be empty")
	}

	c.logger.DebugContext(ctx, "Reading file", "dir", req.Directory, "file", req.FileName)

	content, err := c.fileOps.ReadFile(req.Directory, req.FileName)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", req.FileName, err)
	}

	return content, nil
}
