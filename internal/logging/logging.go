// Package logging constructs the console logger used for diagnostics.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/rekhak/taskproc/internal/config"
)

// New builds a logger from the configured level and format, writing to
// stderr. The logger is constructed per invocation and passed around
// explicitly; there is no package-level logger.
func New(cfg *config.Config) *log.Logger {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter builds a logger writing to w. Tests use this to capture or
// discard output.
func NewWithWriter(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           parseLevel(cfg.LogLevel),
		Formatter:       parseFormatter(cfg.LogFormat),
		ReportTimestamp: true,
		Prefix:          "taskproc",
	})
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func parseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
