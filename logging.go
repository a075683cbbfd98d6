package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// openLogger returns a debug level text logger writing to path. With no
// path it discards everything, since the terminal belongs to the UI.
func openLogger(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return discardLogger(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discardLogger(), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
