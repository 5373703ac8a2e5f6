package spaceattack

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
	Area       core.Size
	Objects    []Object
	Score      int
	Level      int
	Energy     int
	LevelUp    bool // level-up banner visible
	LastAward  int
	Destroyed  int
	Escaped    int
	Elapsed    float64 // seconds
}

// Snapshot returns the current session view. Objects are copied.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:      g.phase,
		Difficulty: g.difficulty,
		Paused:     g.paused,
		Area:       g.cfg.Area.Size(),
		Objects:    slices.Clone(g.objects),
		Score:      g.score,
		Level:      g.level,
		Energy:     g.energy,
		LevelUp:    g.bannerFor > 0,
		LastAward:  g.lastAward,
		Destroyed:  g.destroyed,
		Escaped:    g.escaped,
		Elapsed:    float64(g.ticks) * g.cfg.MoveTick,
	}
}
