// Package registry provides a global registry of agent factories, so the
// CLI and the TUI can discover and instantiate agents by id without
// hardcoded switches.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/twenty48/internal/agent"
	"github.com/vovakirdan/twenty48/internal/config"
	"github.com/vovakirdan/twenty48/internal/game"
)

// Factory creates an agent owning the given board, tuned by cfg and
// seeded for reproducible runs.
type Factory func(b game.Board, cfg config.Config, seed int64) agent.Agent

// AgentInfo contains metadata about a registered agent.
type AgentInfo struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an agent factory to the registry.
// Panics if an agent with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: agent %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered agents, sorted by ID.
func List() []AgentInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AgentInfo, 0, len(factories))
	for id := range factories {
		result = append(result, AgentInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new agent by its ID.
func Create(id string, b game.Board, cfg config.Config, seed int64) (agent.Agent, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown agent %q", id)
	}

	return f(b, cfg, seed), nil
}

// Exists checks if an agent with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
