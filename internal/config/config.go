package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the todo server
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Assistant  AssistantConfig  `toml:"assistant"`
	Validation ValidationConfig `toml:"validation"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	LogLevel    string   `toml:"log_level"`
}

// DatabaseConfig holds database-related configuration.
// Timeouts are env-only; the TOML decoder has no duration support.
type DatabaseConfig struct {
	Dir          string        `toml:"dir"`
	Filename     string        `toml:"filename"`
	QueryTimeout time.Duration `toml:"-"`
	WriteTimeout time.Duration `toml:"-"`
}

// AssistantConfig holds the external text-generation configuration.
// The credential is env-only so it never lands in a config file.
type AssistantConfig struct {
	APIKey  string        `toml:"-"`
	Model   string        `toml:"model"`
	Timeout time.Duration `toml:"-"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ContentMaxLength int `toml:"content_max_length"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Server: ServerConfig{
			Port:        5001,
			CORSOrigins: []string{"*"},
			LogLevel:    "info",
		},
		Database: DatabaseConfig{
			Dir:          filepath.Join(homeDir, ".todo"),
			Filename:     "todos.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Assistant: AssistantConfig{
			Model:   "gemini-1.5-flash",
			Timeout: 30 * time.Second,
		},
		Validation: ValidationConfig{
			ContentMaxLength: 200,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// AssistantConfigured reports whether a credential was provided.
// Absence disables the assistant without failing the rest of the system.
func (c *Config) AssistantConfigured() bool {
	return c.Assistant.APIKey != ""
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration
	if port := os.Getenv("TODO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if origins := os.Getenv("TODO_CORS_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = splitAndTrim(origins)
	}
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Server.LogLevel = level
	}

	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TODO_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Assistant configuration
	c.Assistant.APIKey = os.Getenv("GOOGLE_API_KEY")
	if model := os.Getenv("TODO_ASSISTANT_MODEL"); model != "" {
		c.Assistant.Model = model
	}
	if timeout := os.Getenv("TODO_ASSISTANT_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Assistant.Timeout = d
		}
	}

	// Validation configuration
	if maxLen := os.Getenv("TODO_CONTENT_MAX_LENGTH"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.ContentMaxLength = n
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	if c.Server.LogLevel == "" {
		return &ConfigError{Field: "server.log_level", Message: "log level cannot be empty"}
	}
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Assistant.Model == "" {
		return &ConfigError{Field: "assistant.model", Message: "assistant model cannot be empty"}
	}
	if c.Assistant.Timeout <= 0 {
		return &ConfigError{Field: "assistant.timeout", Message: "assistant timeout must be positive"}
	}
	if c.Validation.ContentMaxLength < 1 {
		return &ConfigError{Field: "validation.content_max_length", Message: "content max length must be at least 1"}
	}

	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
