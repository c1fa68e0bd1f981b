// Package config provides small helpers for reading typed values from environment variables.
package config

import (
	"log/slog"
	"os"
	"slices"
	"strings"
)

// GetEnvBool returns the value of an environment variable as a boolean.
//
// Accepted true values: "1", "t", "T", "true", "TRUE", "True"
// Accepted false values: "0", "f", "F", "false", "FALSE", "False"
//
// If the environment variable is not set, empty, or has an invalid value,
// this function returns the default value and logs a warning.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return true
	case "0", "f", "F", "false", "FALSE", "False":
		return false
	default:
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
}

// GetEnvOneOf returns the lower-cased value of an environment variable if it is
// one of allowed, and the default value otherwise. A value outside allowed is
// logged as a warning.
//
// Example:
//
//	level := GetEnvOneOf("LOG_LEVEL", "info", "debug", "info", "warn", "error")
func GetEnvOneOf(key, defaultValue string, allowed ...string) string {
	valueStr := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if valueStr == "" {
		return defaultValue
	}
	if !slices.Contains(allowed, valueStr) {
		slog.Warn("unsupported value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue),
			slog.Any("allowed", allowed))
		return defaultValue
	}
	return valueStr
}
