// Package spaceattack implements Space Attack, an endless game where objects fall
// through the play area and the player taps them before they escape.
package spaceattack

import (
	"time"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

// Phase is the session phase.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Seconds the level-up banner stays visible.
const levelUpBanner = 1.5

// spawnEpsilon absorbs float drift when the accumulator reaches the interval.
const spawnEpsilon = 1e-9

// Object is a falling target. X/Y is its center in play-area units.
type Object struct {
	ID    uint64
	X     float64
	Y     float64
	Size  float64
	Speed float64 // units per movement step
}

// Contains reports whether p lies within the object's radius.
func (o Object) Contains(p core.Point) bool {
	return core.Point{X: o.X, Y: o.Y}.Dist(p) <= o.Size/2
}

// Game implements Space Attack.
type Game struct {
	cfg        config.SpaceAttackConfig
	profile    config.SpaceAttackProfile
	difficulty config.DifficultyPreset
	rng        core.Source

	phase   Phase
	paused  bool
	objects []Object
	nextID  uint64

	spawnAcc  float64 // seconds since the last spawn
	ticks     int
	score     int
	level     int
	energy    int
	lastAward int
	bannerFor int // ticks the level-up banner remains
	destroyed int
	escaped   int

	result    session.Result
	hasResult bool
}

// New creates a Space Attack session.
func New(opts registry.Options) *Game {
	g := &Game{
		cfg:        opts.Profiles.SpaceAttack,
		difficulty: opts.Difficulty,
	}
	g.profile = g.cfg.Difficulty.For(opts.Difficulty)
	return g
}

func init() {
	registry.Register(session.SpaceAttack, func(opts registry.Options) registry.Game {
		return New(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() session.GameType { return session.SpaceAttack }

// Title returns the display name.
func (g *Game) Title() string { return session.SpaceAttack.Title() }

// TickInterval returns the movement step.
func (g *Game) TickInterval() time.Duration { return core.Seconds(g.cfg.MoveTick) }

// Reset returns the session to Ready.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = cfg.Source()
	g.phase = PhaseReady
	g.paused = false
	g.clearSession()
}

func (g *Game) clearSession() {
	g.objects = g.objects[:0]
	g.nextID = 0
	g.spawnAcc = 0
	g.ticks = 0
	g.score = 0
	g.level = 1
	g.energy = 0
	g.lastAward = 0
	g.bannerFor = 0
	g.destroyed = 0
	g.escaped = 0
	g.result = session.Result{}
	g.hasResult = false
}

// Start begins a session from Ready or restarts an ended one.
func (g *Game) Start() {
	if g.phase == PhasePlaying {
		return
	}
	g.clearSession()
	g.phase = PhasePlaying
}

// Exit ends the session. A started session yields a result with the score,
// level and energy reached so far. It reports whether the session became terminal.
func (g *Game) Exit() bool {
	switch g.phase {
	case PhaseReady:
		g.phase = PhaseEnded
		return true
	case PhasePlaying:
		g.finish()
		return true
	}
	return false
}

// SpawnInterval is the current spawn period in seconds.
func (g *Game) SpawnInterval() float64 {
	return g.profile.SpawnInterval / float64(g.level)
}

// Step advances the session by one movement step.
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
	if g.phase != PhasePlaying || g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, t := range in.Taps {
		g.applyTap(t)
	}
	if in.Has(core.ActionPress) {
		g.Fire()
	}

	g.ticks++
	if g.bannerFor > 0 {
		g.bannerFor--
	}
	g.move()
	g.spawnAcc += g.cfg.MoveTick
	if iv := g.SpawnInterval(); g.spawnAcc+spawnEpsilon >= iv {
		g.spawnAcc = max(0, g.spawnAcc-iv)
		g.spawn()
	}

	return core.StepResult{State: g.State()}
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
	r := session.NewResult(session.SpaceAttack, g.difficulty)
	r.Score = g.score
	r.Metrics = session.Metrics{
		Level:     g.level,
		Destroyed: g.destroyed,
		Escaped:   g.escaped,
	}
	r.EnergyEarned = g.energy
	r.Duration = core.Seconds(float64(g.ticks) * g.cfg.MoveTick)
	g.result = r
	g.hasResult = true
}
