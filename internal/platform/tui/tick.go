// Package tui provides the Bubble Tea host for Nebula Flow sessions.
// It maps terminal input to session actions, drives the tick loop at each
// game's nominal step, and forwards finished sessions to the recorder.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

// TickMsg is sent to trigger a session step. Gen identifies the game model
// that scheduled it so stale ticks from a previous game are dropped.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd schedules the next step after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// programOptions are shared by every full-screen program. TickRate caps the
// renderer frame rate; sessions keep stepping at their own interval.
func programOptions(cfg core.RuntimeConfig) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(cfg.TickRate),
	}
}
