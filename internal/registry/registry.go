// Package registry provides a global registry for mini-game factories.
// Games register themselves in init() functions, allowing hosts
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

// Game is the interface every mini-game session implements.
// Games contain pure logic with no host dependencies (especially no Bubble Tea).
// The host handles input mapping, timing, and drawing the screen it receives.
type Game interface {
	// ID returns the game identifier used by the CLI and storage.
	ID() session.GameType

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the session in its Ready phase.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed step.
	Step(in core.InputFrame) core.StepResult

	// TickInterval is the nominal wall time between steps.
	TickInterval() time.Duration

	// Render draws the current session into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the coarse session status.
	State() core.GameState

	// Result returns the SessionResult once the session is terminal.
	Result() (session.Result, bool)
}

// Pointer is implemented by games that accept taps on the drawn screen.
type Pointer interface {
	// ScreenTap maps a screen cell of a w×h screen to a tap in game terms.
	ScreenTap(x, y, w, h int) (core.Tap, bool)
}

// KeyTapper is implemented by games that bind plain keys to taps.
type KeyTapper interface {
	KeyTap(key string) (core.Tap, bool)
}

// Holder is implemented by games whose control is held down between a
// Press and a Release. Hosts without key-up events toggle the hold.
type Holder interface {
	Holding() bool
}

// Options configure a new game instance.
type Options struct {
	Difficulty config.DifficultyPreset
	Profiles   config.Profiles
}

// DefaultOptions returns Normal difficulty with the built-in profiles.
func DefaultOptions() Options {
	return Options{
		Difficulty: config.DifficultyNormal,
		Profiles:   config.DefaultProfiles(),
	}
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    session.GameType
	Title string
}

// Factory creates a new instance of a game.
type Factory func(opts Options) Game

var (
	factories = make(map[session.GameType]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id session.GameType, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// List returns all registered games in priority order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for _, id := range session.GameTypes() {
		if _, ok := factories[id]; ok {
			result = append(result, GameInfo{ID: id, Title: id.Title()})
		}
	}
	return result
}

// Create instantiates a new game by its ID.
func Create(id session.GameType, opts Options) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", session.ErrUnknownGame, id)
	}
	if !opts.Difficulty.Valid() {
		return nil, fmt.Errorf("registry: %w: %q", config.ErrUnknownPreset, opts.Difficulty)
	}
	return f(opts), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id session.GameType) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
