package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/registry"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewStats
)

// SessionModel manages the full flow: menu -> game or stats -> menu.
// It is the top-level model of `nebula menu` and of every SSH session.
type SessionModel struct {
	svc      Services
	config   core.RuntimeConfig
	username string
	active   view
	menu     MenuModel
	game     *GameModel
	stats    *StatsModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, username string) SessionModel {
	svc = svc.withDefaults()
	if username != "" {
		svc.Logger = svc.Logger.With("user", username)
	}
	return SessionModel{
		svc:      svc,
		config:   cfg,
		username: username,
		menu:     NewMenuModel(svc, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.active {
	case viewGame:
		return m.updateGame(msg)
	case viewStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsStats():
		stats := NewStatsModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		m.stats = &stats
		m.active = viewStats
		return m, stats.Init()

	case m.menu.Selected() != nil:
		opts := m.svc.Options
		opts.Difficulty = m.menu.Difficulty()
		game, err := registry.Create(m.menu.Selected().ID, opts)
		if err != nil {
			m.svc.Logger.Error("could not create game", "game", m.menu.Selected().ID, "error", err)
			m.menu = NewMenuModel(m.svc, m.config)
			return m, nil
		}
		m.svc.Logger.Info("game started", "game", game.ID(), "difficulty", opts.Difficulty)

		gm := NewGameModel(game, m.svc, m.config)
		m.game = &gm
		m.active = viewGame
		return m, gm.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	switch {
	case gm.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case gm.BackToMenu():
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.stats.Update(msg)
	st := next.(StatsModel)
	m.stats = &st

	switch {
	case st.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case st.IsGoingBack():
		m.toMenu()
		return m, nil
	}
	return m, cmd
}

// toMenu returns to a fresh menu that keeps the chosen difficulty.
func (m *SessionModel) toMenu() {
	m.svc.Options.Difficulty = m.menu.Difficulty()
	m.menu = NewMenuModel(m.svc, m.config)
	m.game = nil
	m.stats = nil
	m.active = viewMenu
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.active {
	case viewGame:
		return m.game.View()
	case viewStats:
		return m.stats.View()
	}
	return m.menu.View()
}

// RunSession runs the menu flow in the local terminal.
func RunSession(svc Services, cfg core.RuntimeConfig) error {
	_, err := tea.NewProgram(NewSessionModel(svc, cfg, ""), programOptions(cfg)...).Run()
	return err
}
