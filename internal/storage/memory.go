package storage

import "sync"

// Memory is a high-score store that lives only as long as the process.
type Memory struct {
	mu    sync.Mutex
	score int
	set   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadHighScore() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, m.set
}

func (m *Memory) StoreHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set || score > m.score {
		m.score = score
		m.set = true
	}
	return nil
}

func (m *Memory) ResetHighScore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score, m.set = 0, false
	return nil
}

func (m *Memory) Close() error {
	return nil
}
