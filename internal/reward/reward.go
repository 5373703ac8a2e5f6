// Package reward computes the energy fragments a session earns.
// Every function is pure so sessions and the progress store agree on the value.
package reward

import (
	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

// CosmicBalance returns (score/20 + perfect*10) * multiplier.
func CosmicBalance(score, perfect int, lvl config.DifficultyPreset) int {
	return (score/20 + perfect*10) * lvl.Multiplier()
}

// SpaceAttackLevelUp is the award for reaching level.
func SpaceAttackLevelUp(level int, lvl config.DifficultyPreset) int {
	return level * 5 * lvl.Multiplier()
}

// SpaceAttack sums the level-up awards for levels 2..levelReached.
func SpaceAttack(levelReached int, lvl config.DifficultyPreset) int {
	total := 0
	for l := 2; l <= levelReached; l++ {
		total += SpaceAttackLevelUp(l, lvl)
	}
	return total
}

// MindOrbitRound is the award for a correct pattern that advanced to level.
func MindOrbitRound(level int, lvl config.DifficultyPreset) int {
	return level * 3 * lvl.Multiplier()
}

// MindOrbit sums the round awards for levels 2..levelReached.
func MindOrbit(levelReached int, lvl config.DifficultyPreset) int {
	total := 0
	for l := 2; l <= levelReached; l++ {
		total += MindOrbitRound(l, lvl)
	}
	return total
}

// StellarReflex returns (score/10 + level*5) * multiplier.
func StellarReflex(score, level int, lvl config.DifficultyPreset) int {
	return (score/10 + level*5) * lvl.Multiplier()
}

// ForResult recomputes the energy a result earned.
// Unknown games earn nothing.
func ForResult(r session.Result) int {
	if !r.Difficulty.Valid() {
		return 0
	}
	switch r.Game {
	case session.CosmicBalance:
		return CosmicBalance(r.Score, r.Metrics.PerfectRounds, r.Difficulty)
	case session.SpaceAttack:
		return SpaceAttack(r.Metrics.Level, r.Difficulty)
	case session.MindOrbit:
		return MindOrbit(r.Metrics.Level, r.Difficulty)
	case session.StellarReflex:
		return StellarReflex(r.Score, r.Metrics.Level, r.Difficulty)
	}
	return 0
}
