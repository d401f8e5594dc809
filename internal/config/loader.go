package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load builds the configuration using the cascading strategy:
// defaults, then an optional TOML file, then environment variables.
func (l *Loader) Load(filePath string) (*Config, error) {
	if filePath == "" {
		filePath = os.Getenv("TODO_CONFIG_FILE")
	}
	if filePath != "" {
		if _, err := toml.DecodeFile(filePath, l.config); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", filePath, err)
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// Overrides holds command line flag overrides, applied last.
type Overrides struct {
	Port       *int
	DBDir      *string
	DBFilename *string
	LogLevel   *string
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(filePath string, overrides *Overrides) (*Config, error) {
	config, err := l.Load(filePath)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		if overrides.Port != nil {
			config.Server.Port = *overrides.Port
		}
		if overrides.DBDir != nil {
			config.Database.Dir = *overrides.DBDir
		}
		if overrides.DBFilename != nil {
			config.Database.Filename = *overrides.DBFilename
		}
		if overrides.LogLevel != nil {
			config.Server.LogLevel = *overrides.LogLevel
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
