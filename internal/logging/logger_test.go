package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docparse/docparse/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	l := New()
	if l == nil || l.Logger == nil {
		t.Fatal("New() returned nil logger")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewWithConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docparse.log")

	l := NewWithConfig(config.LoggingConfig{Level: "debug", Format: "json", File: path})
	l.Info("hello", "key", "value")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file missing json record: %s", data)
	}
}

func TestNewWithConfig_BadFileFallsBack(t *testing.T) {
	l := NewWithConfig(config.LoggingConfig{File: filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")})
	if l == nil {
		t.Fatal("logger should fall back to stderr, not be nil")
	}
	l.Info("still works")
	_ = l.Close()
}
