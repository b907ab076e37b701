// Package registry maps high-score store names to factories.
// Backends register themselves in init() functions, so the CLI can pick one
// by name from --store or the config file without hardcoding the list.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Backend is a high-score store the game can be wired to.
type Backend interface {
	// LoadHighScore returns the stored score, or false when absent or unreadable.
	LoadHighScore() (int, bool)

	// StoreHighScore records a new best score. Lower scores never replace a higher one.
	StoreHighScore(score int) error

	// ResetHighScore forgets the stored score.
	ResetHighScore() error

	// Close releases the underlying resources.
	Close() error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory opens a backend from the storage section of the config.
type Factory func(cfg config.StorageConfig) (Backend, error)

type entry struct {
	factory     Factory
	description string
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = entry{factory: f, description: description}
}

// List returns all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for name, e := range backends {
		result = append(result, BackendInfo{Name: name, Description: e.description})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open creates the backend named by cfg.Backend.
func Open(cfg config.StorageConfig) (Backend, error) {
	mu.RLock()
	e, ok := backends[cfg.Backend]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", cfg.Backend)
	}
	return e.factory(cfg)
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}
