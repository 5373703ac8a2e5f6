package cosmicbalance

import "github.com/vovakirdan/nebula-flow/internal/config"

// Snapshot is a read-only view of the session for drawing and tests.
type Snapshot struct {
	Phase         Phase
	Difficulty    config.DifficultyPreset
	Paused        bool
	Held          bool
	Position      float64
	Velocity      float64
	ZoneLo        float64
	ZoneHi        float64
	InZone        bool
	Round         int
	Rounds        int
	BetweenRounds bool
	RoundProgress float64 // 0..1 of the current round elapsed
	TimeInZone    float64 // seconds this round
	TotalInZone   float64 // seconds this session
	Score         int
	PerfectRounds int
}

// Snapshot returns the current session view.
func (g *Game) Snapshot() Snapshot {
	lo, hi := g.Zone()
	progress := 0.0
	if g.roundTicks > 0 && g.pauseLeft == 0 {
		progress = 1 - float64(g.ticksLeft)/float64(g.roundTicks)
	}
	return Snapshot{
		Phase:         g.phase,
		Difficulty:    g.difficulty,
		Paused:        g.paused,
		Held:          g.held,
		Position:      g.position,
		Velocity:      g.velocity,
		ZoneLo:        lo,
		ZoneHi:        hi,
		InZone:        g.inZone,
		Round:         g.round,
		Rounds:        g.cfg.Rounds,
		BetweenRounds: g.pauseLeft > 0,
		RoundProgress: progress,
		TimeInZone:    g.seconds(g.zoneTicks),
		TotalInZone:   g.seconds(g.totalZone),
		Score:         g.score,
		PerfectRounds: g.perfect,
	}
}
