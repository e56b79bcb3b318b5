package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fileops/internal/domain"
	"fileops/internal/errors"
)

// CreateCommand handles creating empty files.
type CreateCommand struct {
	fileOps domain.FileOperations
	logger  *slog.Logger
}

// NewCreateCommand creates a new create command.
func NewCreateCommand(fileOps domain.FileOperations, logger *slog.Logger) *CreateCommand {
	return &CreateCommand{
		fileOps: fileOps,
		logger:  logger,
	}
}

// CreateRequest contains the parameters for the create command.
type CreateRequest struct {
	Directory string
	FileNames []string
}

// CreateResult lists the files that were created, in request order.
type CreateResult struct {
	Created []string
}

// Execute creates every requested file. All files are attempted; failures
// are returned together.
func (c *CreateCommand) Execute(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	if err := validateFileNames(req.FileNames); err != nil {
		return nil, err
	}

	result := &CreateResult{}
	var errs []error
	for _, name := range req.FileNames {
		c.logger.DebugContext(ctx, "Creating file", "dir", req.Directory, "file", name)

		if err := c.fileOps.CreateFile(req.Directory, name); err != nil {
			c.logger.ErrorContext(ctx, "Failed to create file", "file", name, "error", err)
			errs = append(errs, fmt.Errorf("failed to create %s: %w", name, err))
			continue
		}

		c.logger.InfoContext(ctx, "Created file", "dir", req.Directory, "file", name)
		result.Created = append(result.Created, name)
	}

	return result, errors.Join(errs...)
}

func validateFileNames(names []string) error {
	if len(names) == 0 {
		return errors.NewValidationError("file_name", "", "required", "at least one file name must be given")
	}
	for _, name := range names {
		if name == "" {
			return errors.NewValidationError("file_name", name, "required", "file name must not be empty")
		}
	}
	return nil
}
