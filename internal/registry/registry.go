// Package registry keeps the table of playable game modes.
// Modes register themselves in init() functions, so the platform
// can list and start them without importing each one by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Game is what the platform drives on every tick.
// Implementations hold pure logic; input mapping, timing and terminal
// output belong to the platform.
type Game interface {
	// ID returns the mode identifier used on the command line and in the score table.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new session. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the session into dst, clearing it first.
	Render(dst *core.Screen)

	// State returns score, moves and the game over flag.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id.
// Panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
