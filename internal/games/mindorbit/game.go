// Package mindorbit implements Mind Orbit, an endless pattern memory game on a
// square grid of cells.
package mindorbit

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
	PhaseShowing
	PhaseInput
	PhaseCorrect
	PhaseWrong
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseShowing:
		return "showing"
	case PhaseInput:
		return "input"
	case PhaseCorrect:
		return "correct"
	case PhaseWrong:
		return "wrong"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Seconds a tapped cell stays lit during input.
const tapFlash = 0.3

// timeEpsilon absorbs float drift in the simulated schedule.
const timeEpsilon = 1e-9

// Game implements Mind Orbit.
type Game struct {
	cfg        config.MindOrbitConfig
	profile    config.MindOrbitProfile
	difficulty config.DifficultyPreset
	rng        core.Source

	phase      Phase
	paused     bool
	pattern    []int
	entered    []int
	phaseTicks int // ticks since the current phase began
	ticks      int // ticks since Start
	flashCell  int
	flashTicks int

	score     int
	level     int
	energy    int
	lastAward int
	rounds    int // patterns completed
	attempts  int // patterns shown

	result    session.Result
	hasResult bool
}

// New creates a Mind Orbit session.
func New(opts registry.Options) *Game {
	g := &Game{
		cfg:        opts.Profiles.MindOrbit,
		difficulty: opts.Difficulty,
	}
	g.profile = g.cfg.Difficulty.For(opts.Difficulty)
	return g
}

func init() {
	registry.Register(session.MindOrbit, func(opts registry.Options) registry.Game {
		return New(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() session.GameType { return session.MindOrbit }

// Title returns the display name.
func (g *Game) Title() string { return session.MindOrbit.Title() }

// TickInterval returns the fixed step.
func (g *Game) TickInterval() time.Duration { return core.Seconds(g.cfg.Step) }

// Cells returns the number of grid cells.
func (g *Game) Cells() int { return g.cfg.GridSize * g.cfg.GridSize }

// Reset returns the session to Ready.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.Source()
	g.phase = PhaseReady
	g.paused = false
	g.clearSession()
}

func (g *Game) clearSession() {
	g.pattern = g.pattern[:0]
	g.entered = g.entered[:0]
	g.phaseTicks = 0
	g.ticks = 0
	g.flashTicks = 0
	g.score = 0
	g.level = 1
	g.energy = 0
	g.lastAward = 0
	g.rounds = 0
	g.attempts = 0
	g.result = session.Result{}
	g.hasResult = false
}

// Start leaves Ready, skips the Correct/Wrong display, or restarts an ended session.
func (g *Game) Start() {
	switch g.phase {
	case PhaseReady, PhaseCorrect, PhaseWrong:
		g.startRound()
	case PhaseEnded:
		g.clearSession()
		g.startRound()
	}
}

// Exit ends the session. A started session yields a result.
// It reports whether the session became terminal.
func (g *Game) Exit() bool {
	switch g.phase {
	case PhaseEnded:
		return false
	case PhaseReady:
		g.phase = PhaseEnded
		return true
	}
	g.finish()
	return true
}

// startRound generates a fresh pattern of length patternBase+level and shows it.
func (g *Game) startRound() {
	n := g.profile.PatternBase + g.level
	g.pattern = g.pattern[:0]
	for range n {
		g.pattern = append(g.pattern, g.rng.IntN(g.Cells()))
	}
	g.entered = g.entered[:0]
	g.attempts++
	g.setPhase(PhaseShowing)
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.phaseTicks = 0
}

// Step advances the session by one fixed step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionExit) {
		finished := g.Exit()
		return core.StepResult{State: g.State(), Finished: finished}
	}
	if in.Has(core.ActionPause) && g.phase != PhaseReady && g.phase != PhaseEnded {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionStart) {
		g.Start()
	}
	for _, t := range in.Taps {
		if t.Kind == core.TapCell {
			g.TapCell(t.Cell)
		}
	}

	if g.phase == PhaseReady || g.phase == PhaseEnded {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.phaseTicks++
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	switch g.phase {
	case PhaseShowing:
		if g.phaseElapsed()+timeEpsilon >= g.showDuration() {
			g.setPhase(PhaseInput)
		}
	case PhaseCorrect, PhaseWrong:
		if g.phaseElapsed()+timeEpsilon >= g.cfg.ResultDelay {
			g.startRound()
		}
	}
	return core.StepResult{State: g.State()}
}

// TapCell enters a cell during Input. Taps in any other phase are ignored.
func (g *Game) TapCell(i int) bool {
	if g.phase != PhaseInput || i < 0 || i >= g.Cells() {
		return false
	}
	g.flashCell = i
	g.flashTicks = int(math.Ceil(tapFlash / g.cfg.Step))

	g.entered = append(g.entered, i)
	pos := len(g.entered) - 1
	if g.entered[pos] != g.pattern[pos] {
		g.setPhase(PhaseWrong)
		return true
	}
	if len(g.entered) == len(g.pattern) {
		g.completed()
	}
	return true
}

func (g *Game) completed() {
	g.score += 10 * g.level * g.difficulty.Multiplier()
	g.level++
	g.lastAward = reward.MindOrbitRound(g.level, g.difficulty)
	g.energy += g.lastAward
	g.rounds++
	g.setPhase(PhaseCorrect)
}

// State returns the coarse session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseEnded,
		Paused:   g.paused,
	}
}

// Result returns the SessionResult after Exit.
func (g *Game) Result() (session.Result, bool) {
	return g.result, g.hasResult
}

func (g *Game) finish() {
	g.phase = PhaseEnded
	g.paused = false
	r := session.NewResult(session.MindOrbit, g.difficulty)
	r.Score = g.score
	r.Metrics = session.Metrics{
		Level:  g.level,
		Rounds: g.rounds,
	}
	r.EnergyEarned = g.energy
	r.Duration = core.Seconds(float64(g.ticks) * g.cfg.Step)
	g.result = r
	g.hasResult = true
}
