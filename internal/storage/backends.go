package storage

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Backend names accepted by --store and storage.backend.
const (
	BackendSQLite   = "sqlite"
	BackendSaveData = "savedata"
	BackendMemory   = "memory"
)

var (
	_ snake.HighScoreStore = (*Store)(nil)
	_ snake.HighScoreStore = (*SaveData)(nil)
	_ snake.HighScoreStore = (*Memory)(nil)

	_ registry.Backend = (*Store)(nil)
	_ registry.Backend = (*SaveData)(nil)
	_ registry.Backend = (*Memory)(nil)
)

func init() {
	registry.Register(BackendSQLite, "SQLite database with run history", func(cfg config.StorageConfig) (registry.Backend, error) {
		return Open(cfg.DBPath)
	})
	registry.Register(BackendSaveData, "per-user application data file", func(cfg config.StorageConfig) (registry.Backend, error) {
		return OpenSaveData(cfg.AppName)
	})
	registry.Register(BackendMemory, "kept in memory until exit", func(config.StorageConfig) (registry.Backend, error) {
		return NewMemory(), nil
	})
}
