// Package config provides centralized configuration for the cleaning run.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "path/filepath"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Paths   PathsConfig
	Input   InputConfig
	Logging LoggingConfig
}

// PathsConfig holds the input and output locations.
type PathsConfig struct {
	// InputDir is the directory holding airports.csv, airlines.csv and routes.csv (default: neo4j/import)
	InputDir string `env:"CLEAN_INPUT_DIR" envAlt:"INPUT_DIR" default:"neo4j/import"`

	// OutputDir is where cleaned files are written (default: <InputDir>/clean)
	OutputDir string `env:"CLEAN_OUTPUT_DIR"`
}

// InputConfig holds raw file reading settings.
type InputConfig struct {
	// Encoding is the raw file text encoding: utf-8, latin1, windows-1252 (default: utf-8)
	Encoding string `env:"CLEAN_INPUT_ENCODING" default:"utf-8"`

	// MaxFileSize is the largest raw file read, in bytes (default: 100MB)
	MaxFileSize int64 `env:"CLEAN_MAX_FILE_SIZE" default:"104857600"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ResolvedOutputDir returns OutputDir, or the clean subdirectory of InputDir
// when unset.
func (c *PathsConfig) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join(c.InputDir, "clean")
}
