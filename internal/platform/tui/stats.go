package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/progress"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/session"
	"github.com/vovakirdan/nebula-flow/internal/storage"
)

// Stats layout constants
const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxEntries         = 50
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// StatsKeyMap defines the key bindings for the statistics screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel shows lifetime progress and the best sessions of each game.
type StatsModel struct {
	games       []registry.GameInfo
	gameCursor  int
	svc         Services
	entries     []storage.SessionEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewStatsModel creates a new statistics model.
func NewStatsModel(svc Services, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		games:       registry.List(),
		svc:         svc.withDefaults(),
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadEntries()
	}
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Mode", Width: 7},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-18, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *StatsModel) current() session.GameType {
	return m.games[m.gameCursor].ID
}

func (m *StatsModel) loadEntries() {
	m.entries, m.loadErr = nil, nil
	if m.svc.History != nil {
		m.entries, m.loadErr = m.svc.History.TopScores(context.Background(), m.current(), maxEntries)
	}
	m.updateTableRows()
}

func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			e.Difficulty.Title(),
			e.EndedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the statistics model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the statistics screen. Like the menu it
// reports back and quit through accessors.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadEntries()
			}
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.loadEntries()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the statistics screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")).Render("STATISTICS")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.svc.Progress != nil {
		b.WriteString(m.renderSummary(m.svc.Progress.Record()))
		b.WriteString("\n")
	}

	if len(m.games) > 0 {
		if m.showSidebar {
			b.WriteString(m.renderWideLayout())
		} else {
			b.WriteString(m.renderNarrowLayout())
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

func field(label string, value any) string {
	return labelStyle.Render(label+" ") + valueStyle.Render(fmt.Sprint(value))
}

func (m StatsModel) renderSummary(rec progress.Record) string {
	now := m.svc.Now()
	days := m.svc.Progress.DaysActive(now)

	left := strings.Join([]string{
		field("Energy", rec.EnergyFragments),
		field("Earned", rec.TotalEnergyEarned),
		field("Perfect rounds", rec.PerfectRounds),
	}, "\n")
	mid := strings.Join([]string{
		field("Streak", rec.CurrentStreak),
		field("Best streak", rec.BestStreak),
		field("Days active", days),
	}, "\n")
	right := strings.Join([]string{
		field("Games", rec.TotalGamesPlayed),
		field("Play time", time.Duration(rec.TotalPlayTime*float64(time.Second)).Round(time.Second).String()),
		field("Favorite", rec.FavoriteGame),
	}, "\n")
	focus := field("Focus level", fmt.Sprintf("%d/100", m.svc.Progress.AverageFocusLevel()))

	row := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", mid, "    ", right)
	return panelStyle.Render(row + "\n" + focus)
}

// gameLines describes the lifetime bucket of the selected game.
func (m StatsModel) gameLines() []string {
	if m.svc.Progress == nil {
		return nil
	}
	rec := m.svc.Progress.Record()
	g := m.current()
	st := rec.Game(g)
	lines := []string{
		field("Played", st.GamesPlayed),
		field("High score", st.HighScore),
		field("Average", st.AverageScore()),
		field("Best level", st.HighestLevel),
	}
	switch g {
	case session.StellarReflex:
		best := "-"
		if rec.HasReaction() {
			best = fmt.Sprintf("%d ms", rec.StellarReflex.BestReactionMs)
		}
		lines = append(lines,
			field("Best reaction", best),
			field("Avg reaction", fmt.Sprintf("%d ms", rec.StellarReflex.AvgReactionMs)))
	case session.CosmicBalance:
		lines = append(lines,
			field("Best accuracy", fmt.Sprintf("%d%%", rec.CosmicBalance.BestAccuracy)),
			field("Focus time", fmt.Sprintf("%ds", rec.CosmicBalance.TotalFocusTime)))
	}
	return lines
}

func (m StatsModel) renderWideLayout() string {
	var sidebar strings.Builder
	for i, g := range m.games {
		if i == m.gameCursor {
			sidebar.WriteString(valueStyle.Render("> " + g.Title))
		} else {
			sidebar.WriteString("  " + g.Title)
		}
		sidebar.WriteString("\n")
	}
	if lines := m.gameLines(); len(lines) > 0 {
		sidebar.WriteString(strings.Repeat("-", sidebarWidth-4) + "\n")
		sidebar.WriteString(strings.Join(lines, "\n"))
	}
	left := panelStyle.Width(sidebarWidth).Render(sidebar.String())
	right := panelStyle.Render(m.renderTableContent())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder
	b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.gameCursor].Title), m.width))
	b.WriteString("\n")
	if lines := m.gameLines(); len(lines) > 0 {
		b.WriteString(strings.Join(lines, "  "))
		b.WriteString("\n")
	}
	b.WriteString(panelStyle.Render(m.renderTableContent()))
	return b.String()
}

func (m StatsModel) renderTableContent() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
	switch {
	case m.loadErr != nil:
		return empty.Render("History unavailable: " + m.loadErr.Error())
	case len(m.entries) == 0:
		return empty.Render("No sessions recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the statistics screen on its own.
func RunStats(svc Services, cfg core.RuntimeConfig) error {
	model := standaloneStats{NewStatsModel(svc, cfg.ScreenW, cfg.ScreenH)}
	_, err := tea.NewProgram(model, programOptions(cfg)...).Run()
	return err
}

// standaloneStats quits the program when the user goes back.
type standaloneStats struct{ StatsModel }

func (s standaloneStats) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.StatsModel.Update(msg)
	s.StatsModel = next.(StatsModel)
	if s.IsGoingBack() {
		return s, tea.Quit
	}
	return s, cmd
}
