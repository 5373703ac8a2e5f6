package tui

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

// generation numbers game models so ticks scheduled by a finished model are
// ignored by the next one.
var generation atomic.Int64

// GameModel hosts one game in Bubble Tea. It owns the tick loop, maps keys
// and mouse clicks to input frames and records each finished session once.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	frame      core.InputFrame
	state      core.GameState
	keys       *KeyMapper
	gen        int
	standalone bool // leaving the game quits the program
	last       *session.Result
	recordErr  error
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. Seed 0 picks a time-based seed.
// Without an explicit clock, reactions are timed on the wall clock.
func NewGameModel(game registry.Game, svc Services, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Clock == nil {
		cfg.Clock = core.NewWallClock()
	}
	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:    svc.withDefaults(),
		config: cfg,
		frame:  core.NewInputFrame(),
		keys:   NewKeyMapper(),
		gen:    int(generation.Add(1)),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.game.TickInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "ctrl+c" {
		if kt, ok := m.game.(registry.KeyTapper); ok {
			if tap, ok := kt.KeyTap(msg.String()); ok {
				m.frame.AddTap(tap)
				return m, nil
			}
		}
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit || msg.String() == "q" {
		m.exitSession()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionPress:
		if h, ok := m.game.(registry.Holder); ok && h.Holding() {
			action = core.ActionRelease
		}
	case core.ActionExit, core.ActionBack:
		if m.state.GameOver {
			return m.leave()
		}
		if action == core.ActionBack {
			return m, nil
		}
	}
	if action != core.ActionNone {
		m.frame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	p, ok := m.game.(registry.Pointer)
	if !ok {
		return m, nil
	}
	if tap, ok := p.ScreenTap(msg.X, msg.Y, m.screen.Width(), m.screen.Height()); ok {
		m.frame.AddTap(tap)
	}
	return m, nil
}

func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.quitting || m.backToMenu {
		return m, nil
	}
	m.step(m.frame)
	m.frame.Clear()
	return m, tickCmd(m.game.TickInterval(), m.gen)
}

func (m *GameModel) step(in core.InputFrame) {
	res := m.game.Step(in)
	m.state = res.State
	if res.Finished {
		m.record()
	}
}

// exitSession sends a final Exit so games that end on exit still report.
func (m *GameModel) exitSession() {
	if m.state.GameOver {
		return
	}
	in := core.NewInputFrame()
	in.Set(core.ActionExit)
	m.step(in)
}

func (m GameModel) leave() (tea.Model, tea.Cmd) {
	if m.standalone {
		m.quitting = true
		return m, tea.Quit
	}
	m.backToMenu = true
	return m, nil
}

func (m *GameModel) record() {
	r, ok := m.game.Result()
	if !ok {
		return
	}
	r = r.Stamped(m.svc.Now())
	m.last = &r
	m.svc.Logger.Info("session finished",
		"game", r.Game, "difficulty", r.Difficulty, "score", r.Score, "energy", r.EnergyEarned)

	if m.svc.Recorder == nil {
		return
	}
	if err := m.svc.Recorder.RecordSession(context.Background(), r); err != nil {
		m.recordErr = err
		m.svc.Logger.Error("could not record session", "game", r.Game, "error", err)
	}
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	if m.recordErr != nil {
		m.screen.DrawTextColored(0, m.screen.Height()-1, "progress not saved: "+m.recordErr.Error(), core.ColorRed)
	}
	return RenderScreen(m.screen)
}

// LastResult returns the most recent recorded session, if any.
func (m GameModel) LastResult() (session.Result, bool) {
	if m.last == nil {
		return session.Result{}, false
	}
	return *m.last, true
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user left a finished session.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, svc, cfg)
	model.standalone = true

	_, err := tea.NewProgram(model, programOptions(cfg)...).Run()
	return err
}
