// Package logging provides structured logging for DocParse.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/docparse/docparse/internal/config"
)

// Logger wraps slog and keeps the log file handle for closing.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New creates a logger with default settings: text output on stderr at info
// level. Stderr keeps log lines out of the TUI's stdout.
func New() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return &Logger{Logger: slog.New(handler)}
}

// NewWithConfig creates a logger from configuration.
func NewWithConfig(cfg config.LoggingConfig) *Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var output io.Writer = os.Stderr
	var logFile *os.File

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			output = f
			logFile = f
		}
		// If the file cannot be opened, fall back to stderr silently.
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return &Logger{Logger: slog.New(handler), file: logFile}
}

// ParseLevel maps a config string to a slog level. Unknown strings map to
// info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Close closes the log file if one is open.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
