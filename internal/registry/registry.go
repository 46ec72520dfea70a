// Package registry maps game IDs to factories. Games register themselves
// from init(), so front-ends and the CLI can create them by ID without
// importing every game package directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
)

// Game is the interface every front-end drives.
// A game is pure simulation: the front-end owns timing, input devices and
// the display, and hands the game one input snapshot per tick.
type Game interface {
	// ID returns the stable identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session with the given seed and tick rate.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// The input state must not change while Step runs.
	Step(in core.InputState) core.StepResult

	// Render hands the current frame to a display sink.
	Render(dst lcd.Blitter) error

	// State returns the current game state (score, lives, game over).
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, independent game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

// Registry holds game factories keyed by ID. It is safe for concurrent
// use; the SSH server creates games from many sessions at once.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a factory. It panics on an empty or duplicate ID, since
// both are programming errors in a game's init().
func (r *Registry) Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: game needs an ID and a factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	r.entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a game by ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// Default is the registry games add themselves to from init().
var Default = New()

// Register adds a factory to the default registry.
func Register(info GameInfo, f Factory) { Default.Register(info, f) }

// List returns the games in the default registry.
func List() []GameInfo { return Default.List() }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return Default.Create(id) }

// Exists reports whether id is in the default registry.
func Exists(id string) bool { return Default.Exists(id) }
