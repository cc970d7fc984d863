// Package logging sets up the application logger. The terminal belongs to
// the game screen, so records only go to a file, and only when one is asked for.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger writing text records to path. An empty path gives a
// logger that discards everything. debug lowers the level to slog.LevelDebug.
// The returned closer must be closed on shutdown.
func New(path string, debug bool) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}
