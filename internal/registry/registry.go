// Package registry provides a global registry for planner factories.
// Planners register themselves in init() functions, allowing the
// simulator and CLI to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-autopilot/internal/grid"
)

// Planner is the interface every movement planner must implement.
// Planners are pure decision logic: they read the board snapshot and
// return the path the snake should walk next. An empty path means no
// move exists and the caller must treat the agent as doomed.
type Planner interface {
	// ID returns a unique identifier for this planner (e.g. "safe").
	// Used for CLI commands and episode storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Plan computes the next path for the given snapshot. The returned
	// path excludes the current head cell and is consumed one cell per
	// movement tick. Plan never mutates the snapshot.
	Plan(s grid.State) []grid.Cell
}

// PlannerInfo contains metadata about a registered planner.
type PlannerInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new planner instance.
type Factory func() Planner

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a planner factory to the registry.
// Typically called from a planner's init() function.
// Panics if a planner with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: planner %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	p := f()
	titles[id] = p.Title()
}

// List returns information about all registered planners, sorted by ID.
func List() []PlannerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PlannerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PlannerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new planner by its ID.
// Returns an error if the planner ID is not registered.
func Create(id string) (Planner, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown planner %q", id)
	}

	return f(), nil
}

// Exists checks if a planner with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
