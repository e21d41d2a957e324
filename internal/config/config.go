// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for taskproc.
type Config struct {
	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Optional JSON Schema applied before the built-in record checks.
	SchemaFile string `toml:"schema_file"`
}
