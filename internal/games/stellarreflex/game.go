// Package stellarreflex implements Stellar Reflex, a ten-round reaction game:
// after a random delay a target appears and the player taps it as fast as possible.
package stellarreflex

import (
	"math"
	"time"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/reward"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

// Phase is the session phase.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseResults
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseResults:
		return "results"
	case PhaseAborted:
		return "aborted"
	}
	return "unknown"
}

// Points returns the score for a reaction time: 100 for an instant tap,
// falling linearly to a floor of 1 at one second or slower.
func Points(rt time.Duration) int {
	s := min(rt.Seconds(), 1)
	return max(1, int(math.Round((1-s)*100)))
}

// AverageMs returns the mean reaction in whole milliseconds, 0 for none.
func AverageMs(reactions []time.Duration) int {
	if len(reactions) == 0 {
		return 0
	}
	var sum time.Duration
	for _, r := range reactions {
		sum += r
	}
	mean := sum.Seconds() / float64(len(reactions))
	return int(math.Round(mean * 1000))
}

// Game implements Stellar Reflex.
type Game struct {
	cfg        config.StellarReflexConfig
	profile    config.StellarReflexProfile
	difficulty config.DifficultyPreset
	rng        core.Source
	steps      core.StepClock
	clock      core.Clock

	phase     Phase
	paused    bool
	countdown int
	cdTicks   int // ticks left for the current countdown value
	waitTicks int // ticks until the next target appears
	gapTicks  int // ticks of the pause after a hit
	visible   bool
	target    core.Point
	appear    time.Duration

	reactions  []time.Duration
	lastPoints int
	score      int
	level      int
	rounds     int
	ticks      int

	result    session.Result
	hasResult bool
}

// New creates a Stellar Reflex session.
func New(opts registry.Options) *Game {
	g := &Game{
		cfg:        opts.Profiles.StellarReflex,
		difficulty: opts.Difficulty,
	}
	g.profile = g.cfg.Difficulty.For(opts.Difficulty)
	return g
}

func init() {
	registry.Register(session.StellarReflex, func(opts registry.Options) registry.Game {
		return New(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() session.GameType { return session.StellarReflex }

// Title returns the display name.
func (g *Game) Title() string { return session.StellarReflex.Title() }

// TickInterval returns the fixed step.
func (g *Game) TickInterval() time.Duration { return core.Seconds(g.cfg.Step) }

// Reset returns the session to Ready. Reaction times are measured with
// cfg.Clock when set, otherwise with the session's simulated clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.Source()
	g.clock = cfg.Clock
	if g.clock == nil {
		g.clock = &g.steps
	}
	g.phase = PhaseReady
	g.paused = false
	g.clearSession()
}

func (g *Game) clearSession() {
	g.steps.Reset()
	g.countdown = 0
	g.cdTicks = 0
	g.waitTicks = 0
	g.gapTicks = 0
	g.visible = false
	g.reactions = g.reactions[:0]
	g.lastPoints = 0
	g.score = 0
	g.level = 1
	g.rounds = 0
	g.ticks = 0
	g.result = session.Result{}
	g.hasResult = false
}

func (g *Game) ticksFor(seconds float64) int {
	return int(math.Ceil(seconds/g.cfg.Step - 1e-9))
}

// Start begins the countdown from Ready or restarts a finished session.
func (g *Game) Start() {
	switch g.phase {
	case PhaseReady, PhaseResults, PhaseAborted:
		g.clearSession()
		g.phase = PhaseCountdown
		g.countdown = g.cfg.Countdown
		g.cdTicks = g.ticksFor(g.cfg.CountdownStep)
	}
}

// Exit abandons the session; an unfinished session yields no result.
// It reports whether the session became terminal.
func (g *Game) Exit() bool {
	switch g.phase {
	case PhaseReady, PhaseCountdown, PhasePlaying:
		g.phase = PhaseAborted
		g.visible = false
		return true
	}
	return false
}

// Step advances the session by one fixed step. Taps are judged against the
// clock reading before the step advances it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionExit) {
		finished := g.Exit()
		return core.StepResult{State: g.State(), Finished: finished}
	}
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionPause) && (g.phase == PhaseCountdown || g.phase == PhasePlaying) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	finished := false
	for _, t := range in.Taps {
		switch t.Kind {
		case core.TapPoint:
			finished = g.TapAt(t.At.X, t.At.Y) || finished
		case core.TapObject:
			finished = g.TapTarget() || finished
		}
	}
	if in.Has(core.ActionPress) {
		finished = g.TapTarget() || finished
	}
	if finished {
		return core.StepResult{State: g.State(), Finished: true}
	}

	switch g.phase {
	case PhaseCountdown:
		g.advance()
		g.tickCountdown()
	case PhasePlaying:
		g.advance()
		g.tickRound()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) advance() {
	g.ticks++
	g.steps.Advance(core.Seconds(g.cfg.Step))
}

func (g *Game) tickCountdown() {
	g.cdTicks--
	if g.cdTicks > 0 {
		return
	}
	g.countdown--
	if g.countdown > 0 {
		g.cdTicks = g.ticksFor(g.cfg.CountdownStep)
		return
	}
	g.phase = PhasePlaying
	g.scheduleTarget()
}

// scheduleTarget draws the wait before the next target.
func (g *Game) scheduleTarget() {
	delay := core.Uniform(g.rng, g.profile.DelayMin, g.profile.DelayMax)
	g.waitTicks = max(1, g.ticksFor(delay))
}

func (g *Game) tickRound() {
	switch {
	case g.gapTicks > 0:
		g.gapTicks--
		if g.gapTicks == 0 {
			g.scheduleTarget()
		}
	case !g.visible && g.waitTicks > 0:
		g.waitTicks--
		if g.waitTicks == 0 {
			g.showTarget()
		}
	}
}

func (g *Game) showTarget() {
	pad := g.profile.TargetSize + g.cfg.EdgePadding
	w, h := g.cfg.Area.Width, g.cfg.Area.Height
	g.target = core.Point{
		X: core.Uniform(g.rng, pad, w-pad),
		Y: core.Uniform(g.rng, pad+g.cfg.VerticalPadding, h-pad-g.cfg.VerticalPadding),
	}
	g.visible = true
	g.appear = g.clock.Now()
}

// TapAt hits the target when (x, y) lies within it. It reports whether the
// session finished as a result.
func (g *Game) TapAt(x, y float64) bool {
	if !g.visible || g.target.Dist(core.Point{X: x, Y: y}) > g.profile.TargetSize/2 {
		return false
	}
	return g.TapTarget()
}

// TapTarget records a hit on the visible target. Without a visible target
// it does nothing. It reports whether the session finished as a result.
func (g *Game) TapTarget() bool {
	if g.phase != PhasePlaying || !g.visible {
		return false
	}
	rt := max(0, g.clock.Now()-g.appear)
	g.visible = false
	g.reactions = append(g.reactions, rt)
	g.lastPoints = Points(rt)
	g.score += g.lastPoints
	g.rounds++
	if g.rounds%g.cfg.LevelEvery == 0 {
		g.level++
	}

	if g.rounds >= g.cfg.Rounds {
		g.finish()
		return true
	}
	g.gapTicks = max(1, g.ticksFor(g.cfg.RoundGap))
	return false
}

// State returns the coarse session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseResults || g.phase == PhaseAborted,
		Paused:   g.paused,
	}
}

// Result returns the SessionResult after the final round.
func (g *Game) Result() (session.Result, bool) {
	return g.result, g.hasResult
}

func (g *Game) finish() {
	g.phase = PhaseResults
	r := session.NewResult(session.StellarReflex, g.difficulty)
	r.Score = g.score
	r.Metrics = session.Metrics{
		AvgReactionMs: AverageMs(g.reactions),
		Level:         g.level,
		Rounds:        g.rounds,
	}
	r.EnergyEarned = reward.StellarReflex(g.score, g.level, g.difficulty)
	r.Duration = core.Seconds(float64(g.ticks) * g.cfg.Step)
	g.result = r
	g.hasResult = true
}
