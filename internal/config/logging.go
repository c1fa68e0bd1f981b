package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	envconfig "magazine-catalog/pkg/config"
)

// Supported logging levels and output formats.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"json", "text"}
)

// LoggingConfig controls how the catalog logger is built.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// DefaultLogging returns the configuration used when nothing is set.
func DefaultLogging() LoggingConfig {
	return LoggingConfig{Level: "info", Format: "json"}
}

// LoadLogging reads the logging configuration from LOG_LEVEL, LOG_FORMAT and
// LOG_ADD_SOURCE. Unsupported values fall back to the defaults.
func LoadLogging() LoggingConfig {
	def := DefaultLogging()
	return LoggingConfig{
		Level:     envconfig.GetEnvOneOf("LOG_LEVEL", def.Level, LogLevels...),
		Format:    envconfig.GetEnvOneOf("LOG_FORMAT", def.Format, LogFormats...),
		AddSource: envconfig.GetEnvBool("LOG_ADD_SOURCE", def.AddSource),
	}
}

// LoadLoggingFile loads logging configuration from a YAML file of the form
//
//	logging:
//	  level: debug
//	  format: text
//
// Missing keys take their default values.
// The path parameter is expected to come from a trusted source.
func LoadLoggingFile(path string) (LoggingConfig, error) {
	// #nosec G304 -- path is provided by trusted source, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return LoggingConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	doc := struct {
		Logging LoggingConfig `yaml:"logging"`
	}{Logging: DefaultLogging()}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return LoggingConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := doc.Logging.Validate(); err != nil {
		return LoggingConfig{}, fmt.Errorf("config validation failed: %w", err)
	}
	return doc.Logging, nil
}

// Validate checks that level and format are supported values.
func (c LoggingConfig) Validate() error {
	if !slices.Contains(LogLevels, c.Level) {
		return fmt.Errorf("unsupported log level %q", c.Level)
	}
	if !slices.Contains(LogFormats, c.Format) {
		return fmt.Errorf("unsupported log format %q", c.Format)
	}
	return nil
}
