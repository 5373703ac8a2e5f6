package spaceattack

import (
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/reward"
)

// spawn adds an object just above the play area.
func (g *Game) spawn() {
	margin := g.cfg.SpawnMargin
	g.nextID++
	g.objects = append(g.objects, Object{
		ID:    g.nextID,
		X:     core.Uniform(g.rng, margin, g.cfg.Area.Width-margin),
		Y:     -margin,
		Size:  core.Uniform(g.rng, g.cfg.MinSize, g.cfg.MaxSize),
		Speed: g.profile.BaseSpeed + g.rng.Float64()*float64(g.level)*g.cfg.SpeedPerLevel,
	})
}

// move advances every object and discards those below the play area.
func (g *Game) move() {
	limit := g.cfg.Area.Height + g.cfg.SpawnMargin
	kept := g.objects[:0]
	for _, o := range g.objects {
		o.Y += o.Speed
		if o.Y > limit {
			g.escaped++
			continue
		}
		kept = append(kept, o)
	}
	g.objects = kept
}

func (g *Game) applyTap(t core.Tap) {
	switch t.Kind {
	case core.TapObject:
		g.TapObject(t.Object)
	case core.TapPoint:
		g.TapAt(t.At.X, t.At.Y)
	}
}

// TapObject destroys the live object with the given ID.
// Unknown IDs and taps outside Playing are ignored.
func (g *Game) TapObject(id uint64) bool {
	if g.phase != PhasePlaying {
		return false
	}
	for i, o := range g.objects {
		if o.ID == id {
			g.destroy(i)
			return true
		}
	}
	return false
}

// TapAt destroys the most recently spawned object under (x, y).
func (g *Game) TapAt(x, y float64) bool {
	if g.phase != PhasePlaying {
		return false
	}
	p := core.Point{X: x, Y: y}
	for i := len(g.objects) - 1; i >= 0; i-- {
		if g.objects[i].Contains(p) {
			g.destroy(i)
			return true
		}
	}
	return false
}

// Fire destroys the object closest to escaping.
func (g *Game) Fire() bool {
	if g.phase != PhasePlaying || len(g.objects) == 0 {
		return false
	}
	lowest := 0
	for i, o := range g.objects {
		if o.Y > g.objects[lowest].Y {
			lowest = i
		}
	}
	g.destroy(lowest)
	return true
}

func (g *Game) destroy(i int) {
	g.objects = append(g.objects[:i], g.objects[i+1:]...)
	g.destroyed++
	g.score += g.cfg.HitScore

	if g.score > 0 && g.score%g.cfg.LevelUpEvery == 0 {
		g.level++
		g.lastAward = reward.SpaceAttackLevelUp(g.level, g.difficulty)
		g.energy += g.lastAward
		g.bannerFor = int(levelUpBanner / g.cfg.MoveTick)
	}
}
