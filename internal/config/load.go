package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Project config file names, checked in order.
var projectConfigNames = []string{"taskproc.toml", ".taskproc.toml"}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Project config file (taskproc.toml or .taskproc.toml in the working directory)
// 3. Environment variables
// CLI flags override individual fields afterwards in the command layer.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}

	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug|info|warn|error)", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q (expected text|json|logfmt)", c.LogFormat)
	}
	return nil
}

func findProjectConfigFile() string {
	for _, name := range projectConfigNames {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKPROC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKPROC_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKPROC_SCHEMA"); v != "" {
		cfg.SchemaFile = v
	}
}
