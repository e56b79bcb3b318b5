// Package config loads fileops settings from a YAML file, FILEOPS_*
// environment variables and command line flags.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	fileerrors "fileops/internal/errors"
	"fileops/internal/logging"
)

// Configuration keys.
const (
	KeyDirectory = "directory"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "FILEOPS"

// LogSettings holds logger settings.
type LogSettings struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Settings represents the effective fileops configuration.
type Settings struct {
	Directory string      `yaml:"directory" mapstructure:"directory"`
	Log       LogSettings `yaml:"log" mapstructure:"log"`
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		Directory: ".",
		Log: LogSettings{
			Level:  string(logging.LevelInfo),
			Format: logging.FormatText,
		},
	}
}

// DefaultConfigPath returns $HOME/.config/fileops/config.yaml.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "fileops", "config.yaml")
}

// NewViper returns a viper instance with defaults and environment binding.
// When cfgFile is empty the default location under home is searched.
func NewViper(cfgFile, home string) *viper.Viper {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyDirectory, defaults.Directory)
	v.SetDefault(KeyLogLevel, defaults.Log.Level)
	v.SetDefault(KeyLogFormat, defaults.Log.Format)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home != "" {
		v.AddConfigPath(filepath.Dir(DefaultConfigPath(home)))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and decodes the merged settings.
// A missing default config file is not an error; an explicit one that
// cannot be read is.
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fileerrors.NewConfigurationError("config_file", v.ConfigFileUsed(), "failed to read config file", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fileerrors.NewConfigurationError("", "", "failed to decode configuration", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Validate checks the logger settings.
func (s *Settings) Validate() error {
	if _, err := logging.ParseLevel(s.Log.Level); err != nil {
		return err
	}
	return logging.ValidateFormat(s.Log.Format)
}

// YAML renders the settings as a YAML document.
func (s *Settings) YAML() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fileerrors.NewConfigurationError("config_format", "yaml", "failed to marshal config", err)
	}
	return string(data), nil
}
