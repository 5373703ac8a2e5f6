package core

// RuntimeConfig contains configuration passed to sessions at initialization.
// Sessions use this to size their frames and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Renderer frame rate cap; sessions keep their own fixed step
	Seed     int64 // RNG seed for deterministic gameplay

	// Rand overrides the seeded source when set.
	Rand Source
	// Clock overrides the session's step clock when set (used for reaction timing).
	Clock Clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use a fresh random seed in the platform layer
	}
}

// Source returns the configured random source, seeding one if absent.
func (c RuntimeConfig) Source() Source {
	if c.Rand != nil {
		return c.Rand
	}
	return NewSource(c.Seed)
}

// GameState represents the coarse status of a session.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1 for games without levels)
	GameOver bool // Whether the session reached a terminal phase
	Paused   bool // Whether the session is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Finished is true on exactly the tick the session became terminal.
	Finished bool
}
