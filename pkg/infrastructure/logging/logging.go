// Package logging provides structured logging using slog.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Config holds logging configuration.
type Config struct {
	Format string // "json" | "text"
	Level  string // "debug" | "info" | "warn" | "error"
}

// Setup builds a logger writing to w and installs it as the slog default.
// Reports go to stdout, so w is normally stderr.
func Setup(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewRunID creates a unique identifier for a simulation run.
func NewRunID() string {
	return uuid.New().String()
}

// RunLogger creates a logger carrying the run ID.
func RunLogger(logger *slog.Logger, runID string) *slog.Logger {
	return logger.With("run_id", runID)
}
