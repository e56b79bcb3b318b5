package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fileops/internal/domain"
	"fileops/internal/errors"
)

// DeleteCommand handles removing files.
type DeleteCommand struct {
	fileOps domain.FileOperations
	logger  *slog.Logger
}

// NewDeleteCommand creates a new delete command.
func NewDeleteCommand(fileOps domain.FileOperations, logger *slog.Logger) *DeleteCommand {
	return &DeleteCommand{
		fileOps: fileOps,
		logger:  logger,
	}
}

// DeleteRequest contains the parameters for the delete command.
type DeleteRequest struct {
	Directory string
	FileNames []string
}

// DeleteResult lists the files that were deleted, in request order.
type DeleteResult struct {
	Deleted []string
}

// Execute deletes every requested file, continuing past failures.
func (c *DeleteCommand) Execute(ctx context.Context, req DeleteRequest) (*DeleteResult, error) {
	if err := validateFileNames(req.FileNames); err != nil {
		return nil, err
	}

	result := &DeleteResult{}
	var errs []error
	for _, name := range req.FileNames {
		c.logger.DebugContext(ctx, "Deleting file", "dir", req.Directory, "file", name)

		if err := c.fileOps.DeleteFile(req.Directory, name); err != nil {
			c.logger.ErrorContext(ctx, "Failed to delete file", "file", name, "error", err)
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", name, err))
			continue
		}

		c.logger.InfoContext(ctx, "Deleted file", "dir", req.Directory, "file", name)
		result.Deleted = append(result.Deleted, name)
	}

	return result, errors.Join(errs...)
}
