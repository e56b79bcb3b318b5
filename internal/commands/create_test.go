package commands

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileops/internal/domain"
	fileerrors "fileops/internal/errors"
	"fileops/internal/mocks"
	"fileops/internal/testutil"
)

// Test helper to create CreateCommand with test logger.
func newTestCreateCommand(fileOps domain.FileOperations) *CreateCommand {
	return NewCreateCommand(fileOps, testutil.Logger())
}

func TestCreateCommand_Execute_Success(t *testing.T) {
	// Arrange
	mockFileOps := mocks.NewMockFileOperations(t)
	mockFileOps.EXPECT().CreateFile("tmp/testdir", "a.txt").Return(nil)
	mockFileOps.EXPECT().CreateFile("tmp/testdir", "b.txt").Return(nil)

	cmd := newTestCreateCommand(mockFileOps)
	req := CreateRequest{
		Directory: "tmp/testdir",
		FileNames: []string{"a.txt", "b.txt"},
	}

	// Act
	result, err := cmd.Execute(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, result.Created)
}

func TestCreateCommand_Execute_ContinuesAfterFailure(t *testing.T) {
	// Arrange
	mockFileOps := mocks.NewMockFileOperations(t)
	failure := fileerrors.NewIOError("create", "ro/a.txt", fs.ErrPermission)
	mockFileOps.EXPECT().CreateFile("ro", "a.txt").Return(failure)
	mockFileOps.EXPECT().CreateFile("ro", "b.txt").Return(nil)

	cmd := newTestCreateCommand(mockFileOps)

	// Act
	result, err := cmd.Execute(context.Background(), CreateRequest{
		Directory: "ro",
		FileNames: []string{"a.txt", "b.txt"},
	})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create a.txt")
	assert.True(t, fileerrors.IsPermission(err))
	assert.ErrorIs(t, err, failure)
	require.NotNil(t, result)
	assert.Equal(t, []string{"b.txt"}, result.Created)
}

func TestCreateCommand_Execute_AllFail(t *testing.T) {
	// Arrange
	mockFileOps := mocks.NewMockFileOperations(t)
	mockFileOps.EXPECT().CreateFile("d", "a.txt").Return(errors.New("boom a"))
	mockFileOps.EXPECT().CreateFile("d", "b.txt").Return(errors.New("boom b"))

	cmd := newTestCreateCommand(mockFileOps)

	// Act
	result, err := cmd.Execute(context.Background(), CreateRequest{Directory: "d", FileNames: []string{"a.txt", "b.txt"}})

	// Assert
	var multi *fileerrors.MultiError
	require.ErrorAs(t, err, &multi)
	assert.Len(t, multi.Errors, 2)
	assert.Contains(t, err.Error(), "and 1 more errors")
	assert.Empty(t, result.Created)
}

func TestCreateCommand_Execute_Validation(t *testing.T) {
	tests := []struct {
		name  string
		names []string
	}{
		{name: "no_names", names: nil},
		{name: "empty_name", names: []string{"a.txt", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockFileOps := mocks.NewMockFileOperations(t)
			cmd := newTestCreateCommand(mockFileOps)

			// Act
			result, err := cmd.Execute(context.Background(), CreateRequest{Directory: "d", FileNames: tt.names})

			// Assert
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, fileerrors.IsValidation(err))
		})
	}
}

func TestCreateCommand_Execute_InMemory(t *testing.T) {
	// Arrange
	manager, memFs := testutil.MemoryManager()
	require.NoError(t, afero.WriteFile(memFs, "/data/a.txt", []byte("old"), 0o644))
	cmd := newTestCreateCommand(manager)

	// Act
	_, err := cmd.Execute(context.Background(), CreateRequest{Directory: "/data", FileNames: []string{"a.txt"}})

	// Assert
	require.NoError(t, err)
	data, err := afero.ReadFile(memFs, "/data/a.txt")
	require.NoError(t, err)
	assert.Empty(t, data)
}
