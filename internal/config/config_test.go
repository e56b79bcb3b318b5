package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	fileerrors "fileops/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	settings, err := Load(NewViper("", home))
	require.NoError(t, err)

	assert.Equal(t, Default(), settings)
}

func TestLoad_DefaultConfigFile(t *testing.T) {
	home := t.TempDir()
	path := DefaultConfigPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("directory: /srv/files\nlog:\n  level: debug\n"), 0o600))

	settings, err := Load(NewViper("", home))
	require.NoError(t, err)

	assert.Equal(t, "/srv/files", settings.Directory)
	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, "text", settings.Log.Format)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: json\n"), 0o600))

	settings, err := Load(NewViper(path, ""))
	require.NoError(t, err)

	assert.Equal(t, ".", settings.Directory)
	assert.Equal(t, "json", settings.Log.Format)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := Load(NewViper(path, ""))
	require.Error(t, err)
	assert.True(t, fileerrors.IsConfiguration(err))
}

func TestLoad_MalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unterminated\n"), 0o600))

	_, err := Load(NewViper(path, ""))
	require.Error(t, err)
	assert.True(t, fileerrors.IsConfiguration(err))
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FILEOPS_DIRECTORY", "/from/env")
	t.Setenv("FILEOPS_LOG_LEVEL", "warn")

	settings, err := Load(NewViper("", t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, "/from/env", settings.Directory)
	assert.Equal(t, "warn", settings.Log.Level)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("FILEOPS_LOG_LEVEL", "loud")

	_, err := Load(NewViper("", t.TempDir()))
	require.Error(t, err)
	assert.True(t, fileerrors.IsConfiguration(err))
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("FILEOPS_LOG_FORMAT", "xml")

	_, err := Load(NewViper("", t.TempDir()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestSettings_YAML(t *testing.T) {
	settings := &Settings{
		Directory: "/data",
		Log:       LogSettings{Level: "debug", Format: "json"},
	}

	out, err := settings.YAML()
	require.NoError(t, err)

	var decoded Settings
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *settings, decoded)
	assert.Contains(t, out, "directory: /data")
}

func TestDefaultConfigPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u", ".config", "fileops", "config.yaml"), DefaultConfigPath("/home/u"))
}
