package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileops/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "empty_defaults_to_info", input: "", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "warning_alias", input: "warning", want: slog.LevelWarn},
		{name: "error_upper_case", input: "ERROR", want: slog.LevelError},
		{name: "unknown", input: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsConfiguration(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateFormat(t *testing.T) {
	require.NoError(t, ValidateFormat("text"))
	require.NoError(t, ValidateFormat("json"))
	require.NoError(t, ValidateFormat(""))

	err := ValidateFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: slog.LevelInfo, Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("visible", "file", "a.txt")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "file=a.txt")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: slog.LevelDebug, Format: FormatJSON, Output: &buf})

	logger.DebugContext(context.Background(), "created", "dir", "tmp")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "created", entry["msg"])
	assert.Equal(t, "tmp", entry["dir"])
	assert.Equal(t, "DEBUG", entry["level"])
}

func TestNewLogger_NilOutputUsesStderr(t *testing.T) {
	logger := NewLogger(Config{Level: slog.LevelError})
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.Level)
	assert.Equal(t, FormatText, cfg.Format)
	assert.NotNil(t, cfg.Output)
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()
	require.NotNil(t, logger)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := WithOperation(NewLogger(Config{Level: slog.LevelInfo, Output: &buf}), "delete")

	logger.Info("done")

	assert.Contains(t, buf.String(), "operation=delete")
}
