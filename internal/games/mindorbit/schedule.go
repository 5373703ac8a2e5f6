package mindorbit

// Pulse timing while Showing, in seconds since the phase began:
// lead-in, then for each cell a lit span followed by a dark span.

func (g *Game) phaseElapsed() float64 {
	return float64(g.phaseTicks) * g.cfg.Step
}

func (g *Game) litSpan() float64  { return g.profile.ShowSpeed * g.cfg.HighlightRatio }
func (g *Game) darkSpan() float64 { return g.profile.ShowSpeed * g.cfg.PauseRatio }

// showDuration is the time from entering Showing until input opens.
func (g *Game) showDuration() float64 {
	return g.cfg.LeadIn + float64(len(g.pattern))*(g.litSpan()+g.darkSpan())
}

// pulseAt returns the pattern position lit at time t, or -1 between pulses.
func (g *Game) pulseAt(t float64) int {
	t -= g.cfg.LeadIn
	if t < -timeEpsilon {
		return -1
	}
	period := g.litSpan() + g.darkSpan()
	i := int((t + timeEpsilon) / period)
	if i >= len(g.pattern) {
		return -1
	}
	if t-float64(i)*period+timeEpsilon >= g.litSpan() {
		return -1
	}
	return i
}

// Lit returns the cell currently highlighted, or -1.
func (g *Game) Lit() int {
	switch g.phase {
	case PhaseShowing:
		if i := g.pulseAt(g.phaseElapsed()); i >= 0 {
			return g.pattern[i]
		}
	case PhaseInput, PhaseCorrect, PhaseWrong:
		if g.flashTicks > 0 {
			return g.flashCell
		}
	}
	return -1
}
