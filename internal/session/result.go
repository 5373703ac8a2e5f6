// Package session defines the values shared by every mini-game session: the game
// types, the SessionResult handed to the progress store, and a headless driver
// that owns the periodic tick of a running session.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/nebula-flow/internal/config"
)

// ErrUnknownGame is returned for identifiers that name no game.
var ErrUnknownGame = errors.New("session: unknown game")

// GameType identifies one of the mini-games.
type GameType string

const (
	SpaceAttack   GameType = "space-attack"
	MindOrbit     GameType = "mind-orbit"
	StellarReflex GameType = "stellar-reflex"
	CosmicBalance GameType = "cosmic-balance"
)

// GameTypes returns every game in priority order. The order breaks ties when
// choosing a favorite game.
func GameTypes() []GameType {
	return []GameType{SpaceAttack, MindOrbit, StellarReflex, CosmicBalance}
}

// ParseGameType validates a game identifier.
func ParseGameType(s string) (GameType, error) {
	for _, g := range GameTypes() {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownGame, s)
}

// Title returns the display name of the game.
func (g GameType) Title() string {
	switch g {
	case SpaceAttack:
		return "Space Attack"
	case MindOrbit:
		return "Mind Orbit"
	case StellarReflex:
		return "Stellar Reflex"
	case CosmicBalance:
		return "Cosmic Balance"
	}
	return string(g)
}

// Metrics holds the game-specific measurements of a finished session.
// Fields a game does not produce stay zero.
type Metrics struct {
	FocusTime     int // Cosmic Balance: whole seconds in the target zone
	Accuracy      int // Cosmic Balance: percent of total round time in zone
	PerfectRounds int // Cosmic Balance
	AvgReactionMs int // Stellar Reflex: 0 when no reaction was recorded
	Level         int // level reached (1 when a game has no levels)
	Rounds        int // rounds or patterns completed
	Destroyed     int // Space Attack: objects removed by taps
	Escaped       int // Space Attack: objects that left the play area
}

// Result is the immutable SessionResult emitted once per completed session.
type Result struct {
	ID           string
	Game         GameType
	Difficulty   config.DifficultyPreset
	Score        int
	Metrics      Metrics
	EnergyEarned int
	Duration     time.Duration // simulated play time
	EndedAt      time.Time     // stamped by the host when the session ends
}

// NewResult creates a result with a fresh identifier.
func NewResult(game GameType, difficulty config.DifficultyPreset) Result {
	return Result{
		ID:         uuid.New().String(),
		Game:       game,
		Difficulty: difficulty,
	}
}

// Stamped returns a copy of r with EndedAt set to t unless already set.
func (r Result) Stamped(t time.Time) Result {
	if r.EndedAt.IsZero() {
		r.EndedAt = t
	}
	return r
}
