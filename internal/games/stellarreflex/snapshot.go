package stellarreflex

import (
	"slices"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
)

// Snapshot is a read-only view of the session for drawing and tests.
type Snapshot struct {
	Phase      Phase
	Difficulty config.DifficultyPreset
	Paused     bool
	Countdown  int
	Area       core.Size
	Visible    bool
	Target     core.Point
	TargetSize float64
	Round      int // 1-based round in progress
	Rounds     int
	Score      int
	Level      int
	LastPoints int
	BestMs     int // 0 before the first hit
	AvgMs      int
}

// Snapshot returns the current session view.
func (g *Game) Snapshot() Snapshot {
	best := 0
	if len(g.reactions) > 0 {
		best = int(slices.Min(g.reactions).Milliseconds())
	}
	return Snapshot{
		Phase:      g.phase,
		Difficulty: g.difficulty,
		Paused:     g.paused,
		Countdown:  g.countdown,
		Area:       g.cfg.Area.Size(),
		Visible:    g.visible,
		Target:     g.target,
		TargetSize: g.profile.TargetSize,
		Round:      min(g.rounds+1, g.cfg.Rounds),
		Rounds:     g.cfg.Rounds,
		Score:      g.score,
		Level:      g.level,
		LastPoints: g.lastPoints,
		BestMs:     best,
		AvgMs:      AverageMs(g.reactions),
	}
}
