// Package logging configures the structured logger shared by the whole
// application.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/owenfaulkner29/jargon/internal/config"
)

// Setup builds a JSON logger at the configured level and installs it as the
// slog default. The TUI owns stdout, so output goes to cfg.File (or the XDG
// state directory when empty) and to stderr when cfg.File is "-".
//
// The returned close function releases the log file.
func Setup(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	w, closeFn, err := openOutput(cfg.File)
	if err != nil {
		return nil, nil, err
	}

	logger := New(w, cfg.Level)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// New returns a JSON logger writing to w. Unknown levels fall back to info
// with a warning.
func New(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	return logger
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// DefaultPath returns $XDG_STATE_HOME/jargon/jargon.log, falling back to
// ~/.local/state/jargon/jargon.log.
func DefaultPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "jargon", "jargon.log"), nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stderr, func() error { return nil }, nil
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
