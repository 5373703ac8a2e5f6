package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDim        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuEnergy     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// MenuModel is the game and difficulty picker.
type MenuModel struct {
	items      []registry.GameInfo
	presets    []config.DifficultyPreset
	cursor     int
	preset     int
	width      int
	height     int
	svc        Services
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *registry.GameInfo
	wantsStats bool
}

// NewMenuModel creates a new menu model starting at the configured difficulty.
func NewMenuModel(svc Services, cfg core.RuntimeConfig) MenuModel {
	svc = svc.withDefaults()
	presets := config.Presets()
	preset := 0
	for i, p := range presets {
		if p == svc.Options.Difficulty {
			preset = i
		}
	}
	return MenuModel{
		items:     registry.List(),
		presets:   presets,
		preset:    preset,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		svc:       svc,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu. The menu never quits the program
// itself except on a quit key; callers inspect Selected and WantsStats.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)
	case MenuActionRight:
		m.preset = (m.preset + 1) % len(m.presets)
	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	case MenuActionStats:
		m.wantsStats = true
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("N E B U L A   F L O W"), m.width))
	b.WriteString("\n")
	if line := m.progressLine(); line != "" {
		b.WriteString(centerText(menuEnergy.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("< Difficulty: %s (x%d energy) >", m.Difficulty().Title(), m.Difficulty().Multiplier())
	b.WriteString(centerText(diff, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Game  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Stats  |  Q: Quit"
	b.WriteString(centerText(menuDim.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) progressLine() string {
	if m.svc.Progress == nil {
		return ""
	}
	rec := m.svc.Progress.Record()
	return fmt.Sprintf("Energy %d  |  Streak %d  |  Games %d",
		rec.EnergyFragments, rec.CurrentStreak, rec.TotalGamesPlayed)
}

// Difficulty returns the chosen preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.presets[m.preset]
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the statistics screen.
func (m MenuModel) WantsStats() bool {
	return m.wantsStats
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
