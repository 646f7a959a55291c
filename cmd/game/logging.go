package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// setupLogging returns the session logger. The game owns the terminal, so
// logs go to the file at path, or nowhere when path is empty. The returned
// file is nil when logging is disabled. debug lowers the level from info to
// debug so spawns, hits and misses are recorded.
func setupLogging(path string, debug bool) (*log.Logger, *os.File, error) {
	if path == "" {
		return log.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "aimtrainer",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}
