package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

const (
	saveObject   = "snake"
	highScoreKey = "highscore"
)

// SaveData keeps the high score as a decimal string in per-user application data.
type SaveData struct {
	mu      sync.Mutex
	manager *gdata.Manager
	logger  *log.Logger
}

// OpenSaveData opens the application data directory for appName.
func OpenSaveData(appName string) (*SaveData, error) {
	if appName == "" {
		return nil, fmt.Errorf("storage: save data needs an app name")
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &SaveData{
		manager: manager,
		logger:  log.WithPrefix("savedata"),
	}, nil
}

// LoadHighScore implements snake.HighScoreStore.
func (s *SaveData) LoadHighScore() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	score, ok, err := s.load()
	if err != nil {
		s.logger.Warn("could not load high score", "error", err)
		return 0, false
	}
	return score, ok
}

// StoreHighScore implements snake.HighScoreStore. A lower score than the stored one is ignored.
func (s *SaveData) StoreHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok, err := s.load(); err == nil && ok && current >= score {
		return nil
	}
	return s.save(score)
}

// ResetHighScore overwrites the stored high score with zero.
func (s *SaveData) ResetHighScore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(0)
}

// Close is a no-op; every write goes straight to disk.
func (s *SaveData) Close() error {
	return nil
}

func (s *SaveData) load() (int, bool, error) {
	if !s.manager.ObjectPropExists(saveObject, highScoreKey) {
		return 0, false, nil
	}
	data, err := s.manager.LoadObjectProp(saveObject, highScoreKey)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot read save data: %w", err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false, fmt.Errorf("storage: malformed high score %q: %w", data, err)
	}
	return score, true, nil
}

func (s *SaveData) save(score int) error {
	if err := s.manager.SaveObjectProp(saveObject, highScoreKey, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot write save data: %w", err)
	}
	return nil
}
