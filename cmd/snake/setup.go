package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	cfg.Storage = overrideStorage(cfg.Storage, flagStore, flagDBPath)
	return cfg, nil
}

// overrideStorage replaces the configured backend and database path with non-empty flag values.
func overrideStorage(cfg config.StorageConfig, store, dbPath string) config.StorageConfig {
	if store != "" {
		cfg.Backend = store
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

// newLogger creates the process logger and makes it the default,
// so packages that log through the default logger write to w too.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	log.SetDefault(logger)
	return logger, nil
}

// openLogFile opens the log file for appending, creating ~/.snake if needed.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".snake", "snake.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openStore opens the configured backend. A store that cannot be opened is
// reported and replaced by nil so the game still runs with an in-memory high score.
func openStore(cfg config.StorageConfig, logger *log.Logger) registry.Backend {
	store, err := registry.Open(cfg)
	if err != nil {
		logger.Warn("could not open high-score store, scores will not be kept", "backend", cfg.Backend, "error", err)
		return nil
	}
	logger.Debug("high-score store opened", "backend", cfg.Backend)
	return store
}

// closeStore closes store if it was opened.
func closeStore(store registry.Backend, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close high-score store", "error", err)
	}
}
