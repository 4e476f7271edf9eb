// Package registry maps engine IDs to factories. Engine packages register
// themselves from init(), so hosts only need a blank import to offer them.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/engine"
)

// EngineInfo describes a registered engine.
type EngineInfo struct {
	ID    string
	Title string
}

// Factory creates a new engine for one session.
type Factory func(cfg core.RuntimeConfig) (engine.Engine, error)

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	engines = make(map[string]entry)
)

// Register adds an engine factory. It panics if id is already taken.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := engines[id]; exists {
		panic(fmt.Sprintf("registry: engine %q already registered", id))
	}
	engines[id] = entry{title: title, factory: f}
}

// List returns every registered engine sorted by ID.
func List() []EngineInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EngineInfo, 0, len(engines))
	for id, e := range engines {
		result = append(result, EngineInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b EngineInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a new engine with the factory registered under id.
func Create(id string, cfg core.RuntimeConfig) (engine.Engine, error) {
	mu.RLock()
	e, ok := engines[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown engine %q", id)
	}

	eng, err := e.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return eng, nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := engines[id]
	return ok
}
