// Package progress aggregates lifetime statistics across sessions: per-game
// buckets, the energy currency, daily streaks and the favorite game. State is
// persisted through a key-value boundary with one key per field.
package progress

import (
	"time"

	"github.com/vovakirdan/nebula-flow/internal/session"
)

const (
	// NoFavorite is the favorite game before any session is recorded.
	NoFavorite = "None"
	// UnsetReaction marks a best reaction that was never recorded.
	UnsetReaction = 9999
)

// GameStats is the bucket every game keeps.
type GameStats struct {
	GamesPlayed  int
	TotalScore   int
	HighScore    int
	HighestLevel int
}

// AverageScore returns TotalScore / GamesPlayed, 0 before the first game.
func (s GameStats) AverageScore() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return s.TotalScore / s.GamesPlayed
}

// ReflexStats extends the Stellar Reflex bucket with reaction times.
type ReflexStats struct {
	GameStats
	BestReactionMs int // UnsetReaction until a reaction is recorded
	AvgReactionMs  int
}

// BalanceStats extends the Cosmic Balance bucket with focus measurements.
type BalanceStats struct {
	GameStats
	BestAccuracy   int
	TotalFocusTime int // seconds
}

// Record is the lifetime progress aggregate.
type Record struct {
	EnergyFragments   int
	TotalEnergyEarned int
	CurrentStreak     int
	BestStreak        int
	TotalGamesPlayed  int
	TotalPlayTime     float64 // seconds
	PerfectRounds     int
	FavoriteGame      string
	FirstPlayed       time.Time // zero when never played
	LastPlayed        time.Time

	SpaceAttack   GameStats
	MindOrbit     GameStats
	StellarReflex ReflexStats
	CosmicBalance BalanceStats
}

// NewRecord returns the record of a fresh install.
func NewRecord() Record {
	return Record{
		FavoriteGame:  NoFavorite,
		StellarReflex: ReflexStats{BestReactionMs: UnsetReaction},
	}
}

// stats returns the shared bucket of a game, or nil for an unknown game.
func (r *Record) stats(g session.GameType) *GameStats {
	switch g {
	case session.SpaceAttack:
		return &r.SpaceAttack
	case session.MindOrbit:
		return &r.MindOrbit
	case session.StellarReflex:
		return &r.StellarReflex.GameStats
	case session.CosmicBalance:
		return &r.CosmicBalance.GameStats
	}
	return nil
}

// Game returns the bucket of a game.
func (r Record) Game(g session.GameType) GameStats {
	if s := r.stats(g); s != nil {
		return *s
	}
	return GameStats{}
}

// TotalScore sums the total score of every game.
func (r Record) TotalScore() int {
	total := 0
	for _, g := range session.GameTypes() {
		total += r.Game(g).TotalScore
	}
	return total
}

// BestScore returns the highest score of any game.
func (r Record) BestScore() int {
	best := 0
	for _, g := range session.GameTypes() {
		best = max(best, r.Game(g).HighScore)
	}
	return best
}

// HasReaction reports whether a best reaction was ever recorded.
func (r Record) HasReaction() bool {
	return r.StellarReflex.BestReactionMs != UnsetReaction
}

// favorite returns the title of the most played game. Ties go to the game
// that comes first in priority order.
func (r Record) favorite() string {
	best, played := NoFavorite, 0
	for _, g := range session.GameTypes() {
		if n := r.Game(g).GamesPlayed; n > played {
			best, played = g.Title(), n
		}
	}
	return best
}
