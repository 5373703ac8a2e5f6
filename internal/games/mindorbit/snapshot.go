package mindorbit

import "github.com/vovakirdan/nebula-flow/internal/config"

// Snapshot is a read-only view of the session. The pattern itself is not
// exposed; only the cell lit right now.
type Snapshot struct {
	Phase      Phase
	Difficulty config.DifficultyPreset
	Paused     bool
	GridSize   int
	Lit        int // -1 when no cell is lit
	PatternLen int
	Entered    int
	Score      int
	Level      int
	Energy     int
	LastAward  int
	Rounds     int
	Attempts   int
}

// Snapshot returns the current session view.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:      g.phase,
		Difficulty: g.difficulty,
		Paused:     g.paused,
		GridSize:   g.cfg.GridSize,
		Lit:        g.Lit(),
		PatternLen: len(g.pattern),
		Entered:    len(g.entered),
		Score:      g.score,
		Level:      g.level,
		Energy:     g.energy,
		LastAward:  g.lastAward,
		Rounds:     g.rounds,
		Attempts:   g.attempts,
	}
}
