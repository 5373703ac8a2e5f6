package cosmicbalance

import (
	"math"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

// advance runs one physics tick and reports whether the session ended.
func (g *Game) advance() bool {
	if g.pauseLeft > 0 {
		g.pauseLeft--
		if g.pauseLeft == 0 {
			g.recenter()
		}
		return false
	}

	g.ticksLeft--
	g.integrate()

	if g.inZone {
		g.zoneTicks++
		g.totalZone++
		g.score++
	}

	if g.ticksLeft > 0 {
		return false
	}
	return g.finishRound()
}

// integrate applies control, drift, damping and the bounded bounce.
func (g *Game) integrate() {
	if g.held {
		switch {
		case g.position < 0.5:
			g.velocity += g.profile.ControlStrength
		case g.position > 0.5:
			g.velocity -= g.profile.ControlStrength
		}
	}

	g.velocity += core.Uniform(g.rng, -g.profile.DriftSpeed, g.profile.DriftSpeed)
	g.velocity *= g.cfg.Damping
	g.position += g.velocity

	switch {
	case g.position < 0:
		g.position = 0
		g.velocity = math.Abs(g.velocity) * g.cfg.Restitution
	case g.position > 1:
		g.position = 1
		g.velocity = -math.Abs(g.velocity) * g.cfg.Restitution
	}

	g.inZone = g.zoneContains(g.position)
}

func (g *Game) finishRound() bool {
	if g.seconds(g.zoneTicks) >= g.cfg.RoundDuration*g.cfg.PerfectThreshold {
		g.perfect++
	}
	g.zoneTicks = 0

	if g.round >= g.cfg.Rounds {
		g.finish()
		return true
	}
	g.round++
	g.pauseLeft = g.pauseTicks
	if g.pauseLeft == 0 {
		g.recenter()
	}
	return false
}

// recenter starts the next round from the middle at rest.
func (g *Game) recenter() {
	g.position = 0.5
	g.velocity = 0
	g.inZone = g.zoneContains(g.position)
	g.ticksLeft = g.roundTicks
}
