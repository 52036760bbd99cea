// Package config holds caselog configuration, loaded from a YAML file
// in the data directory with defaults for everything.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all caselog configuration.
type Config struct {
	// Data locations
	Data DataConfig `yaml:"data"`

	// Assistant (generative-text service)
	Assist AssistConfig `yaml:"assist"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig names the files the tool owns.
type DataConfig struct {
	Dir       string `yaml:"dir"`        // data directory; ~ expands to $HOME
	CasesFile string `yaml:"cases_file"` // case document, relative to Dir
	PINFile   string `yaml:"pin_file"`   // PIN companion file, relative to Dir
	ExportDir string `yaml:"export_dir"` // export artifacts, relative to Dir
}

// AssistConfig configures the external text-generation service. The API
// key is deliberately absent: it comes from the environment or a prompt
// and is never written to disk.
type AssistConfig struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	Timeout   string `yaml:"timeout"` // Go duration string
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	File   string `yaml:"file"`   // relative to Data.Dir; empty disables
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Dir:       "~/.caselog",
			CasesFile: "case_logger_data.json",
			PINFile:   "pin",
			ExportDir: "exports",
		},
		Assist: AssistConfig{
			BaseURL:   "https://api.anthropic.com/v1",
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 1000,
			Timeout:   "30s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "caselog.log",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// APIKeyFromEnv returns the service credential from the environment.
// This is the only environment variable the tool reads.
func APIKeyFromEnv() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

// DataDir resolves the data directory, expanding a leading ~.
func (c *Config) DataDir() string {
	return expandHome(c.Data.Dir)
}

// CasesPath resolves the case document path.
func (c *Config) CasesPath() string {
	return filepath.Join(c.DataDir(), c.Data.CasesFile)
}

// PINPath resolves the PIN companion file path.
func (c *Config) PINPath() string {
	return filepath.Join(c.DataDir(), c.Data.PINFile)
}

// ExportPath resolves the export artifact directory.
func (c *Config) ExportPath() string {
	return filepath.Join(c.DataDir(), c.Data.ExportDir)
}

// LogPath resolves the log file path, empty when logging to file is off.
func (c *Config) LogPath() string {
	if c.Logging.File == "" {
		return ""
	}
	return filepath.Join(c.DataDir(), c.Logging.File)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
