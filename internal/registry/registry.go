// Package registry provides a global registry for game simulations.
// Games register themselves in init() functions, allowing the session layer
// to instantiate a simulation by catalog id without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// ErrUnknownGame is returned by Create for ids nothing registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the capability every simulation implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the catalog identifier for this game (e.g., "snake", "pong").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset discards all previous state and builds the initial state.
	// Called at session start and again on "play again".
	Reset(cfg core.RuntimeConfig)

	// Apply handles one decoded command between ticks.
	// Commands that make no sense in the current state are ignored.
	Apply(cmd core.Command)

	// Advance runs exactly one simulation tick.
	Advance() core.StepResult

	// Render projects the current state into dst. It must not change the state.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current score and terminal flags.
	State() core.GameState
}

// PointerTarget is implemented by games driven by a pointer position
// (paddle games). The position is in screen cells and is sampled on the next tick.
type PointerTarget interface {
	SetPointer(x, y int)
}

// Releaser is implemented by games that need to know when a held control
// is let go but can only learn it from elapsed ticks (terminals report no key-up).
type Releaser interface {
	ReleaseAll()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new, not yet Reset, game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
