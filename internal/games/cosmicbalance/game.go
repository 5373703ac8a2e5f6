// Package cosmicbalance implements Cosmic Balance, a five-round focus game where
// the player holds a control to keep a drifting orb inside a target zone.
package cosmicbalance

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
	PhasePlaying
	PhaseResults
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseResults:
		return "results"
	case PhaseAborted:
		return "aborted"
	}
	return "unknown"
}

// Game implements Cosmic Balance.
type Game struct {
	cfg        config.CosmicBalanceConfig
	profile    config.CosmicBalanceProfile
	difficulty config.DifficultyPreset
	rng        core.Source

	screenW int
	screenH int

	phase  Phase
	paused bool
	held   bool

	position float64 // 0..1 along the bar
	velocity float64
	inZone   bool

	round      int // 1-based
	roundTicks int // ticks per round
	ticksLeft  int // ticks remaining in the current round
	pauseTicks int // ticks per inter-round pause
	pauseLeft  int // > 0 while between rounds
	zoneTicks  int // in-zone ticks this round
	totalZone  int // in-zone ticks this session
	ticks      int // simulated ticks since Start
	score      int
	perfect    int
	result     session.Result
	hasResult  bool
}

// New creates a Cosmic Balance session.
func New(opts registry.Options) *Game {
	g := &Game{
		cfg:        opts.Profiles.CosmicBalance,
		difficulty: opts.Difficulty,
	}
	g.profile = g.cfg.Difficulty.For(opts.Difficulty)
	g.roundTicks = int(math.Round(g.cfg.RoundDuration / g.cfg.Step))
	g.pauseTicks = int(math.Ceil(g.cfg.RoundPause / g.cfg.Step))
	return g
}

func init() {
	registry.Register(session.CosmicBalance, func(opts registry.Options) registry.Game {
		return New(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() session.GameType { return session.CosmicBalance }

// Title returns the display name.
func (g *Game) Title() string { return session.CosmicBalance.Title() }

// TickInterval returns the fixed physics step.
func (g *Game) TickInterval() time.Duration { return core.Seconds(g.cfg.Step) }

// Reset returns the session to Ready.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.Source()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.phase = PhaseReady
	g.paused = false
	g.clearSession()
}

func (g *Game) clearSession() {
	g.held = false
	g.position = 0.5
	g.velocity = 0
	g.inZone = g.zoneContains(g.position)
	g.round = 1
	g.ticksLeft = g.roundTicks
	g.pauseLeft = 0
	g.zoneTicks = 0
	g.totalZone = 0
	g.ticks = 0
	g.score = 0
	g.perfect = 0
	g.result = session.Result{}
	g.hasResult = false
}

// Zone returns the target zone bounds.
func (g *Game) Zone() (lo, hi float64) {
	half := g.profile.ZoneSize / 2
	return 0.5 - half, 0.5 + half
}

func (g *Game) zoneContains(p float64) bool {
	lo, hi := g.Zone()
	return p >= lo && p <= hi
}

// Start begins a session from Ready or restarts a finished one.
func (g *Game) Start() {
	if g.phase == PhasePlaying {
		return
	}
	g.clearSession()
	g.phase = PhasePlaying
}

// Press engages the control.
func (g *Game) Press() {
	if g.phase == PhasePlaying {
		g.held = true
	}
}

// Holding reports whether the control is held.
func (g *Game) Holding() bool { return g.held }

// Release disengages the control.
func (g *Game) Release() {
	g.held = false
}

// Exit abandons the session. Unfinished sessions produce no result.
// It reports whether the session became terminal.
func (g *Game) Exit() bool {
	switch g.phase {
	case PhaseReady, PhasePlaying:
		g.phase = PhaseAborted
		g.held = false
		return true
	}
	return false
}

// Step advances the session by one fixed step.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionExit) {
		finished := g.Exit()
		return core.StepResult{State: g.State(), Finished: finished}
	}
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if in.Has(core.ActionPress) {
		g.Press()
	}
	if in.Has(core.ActionRelease) {
		g.Release()
	}

	if g.phase != PhasePlaying || g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	finished := g.advance()
	return core.StepResult{State: g.State(), Finished: finished}
}

// State returns the coarse session status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    1,
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
	g.held = false

	total := g.seconds(g.totalZone)
	r := session.NewResult(session.CosmicBalance, g.difficulty)
	r.Score = g.score
	r.Metrics = session.Metrics{
		FocusTime:     int(total),
		Accuracy:      int(total / (g.cfg.RoundDuration * float64(g.cfg.Rounds)) * 100),
		PerfectRounds: g.perfect,
		Level:         1,
		Rounds:        g.cfg.Rounds,
	}
	r.EnergyEarned = reward.CosmicBalance(g.score, g.perfect, g.difficulty)
	r.Duration = core.Seconds(g.seconds(g.ticks))
	g.result = r
	g.hasResult = true
}

func (g *Game) seconds(ticks int) float64 {
	return float64(ticks) * g.cfg.Step
}
