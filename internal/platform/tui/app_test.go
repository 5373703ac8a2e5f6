package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

func sendSession(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(Services{}, core.DefaultConfig())
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("default difficulty = %s", m.Difficulty())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.Update(keyEnter)
	m = next.(MenuModel)

	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %s, want wrap to easy", m.Difficulty())
	}
	if sel := m.Selected(); sel == nil || sel.ID != session.MindOrbit {
		t.Errorf("selected = %+v, want mind orbit", sel)
	}
}

func TestSessionFlow(t *testing.T) {
	rec := &memRecorder{}
	m := NewSessionModel(Services{Recorder: rec}, core.DefaultConfig(), "pilot")

	// Space Attack is first; pick hard.
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyRight}, keyEnter)
	if m.active != viewGame || m.game == nil {
		t.Fatal("selecting a game should open it")
	}
	if m.game.game.ID() != session.SpaceAttack {
		t.Fatalf("game = %s", m.game.game.ID())
	}

	m = sendSession(t, m, keyEnter, m.game.tick(), keyEsc, m.game.tick())
	if len(rec.results) != 1 || rec.results[0].Difficulty != config.DifficultyHard {
		t.Fatalf("results = %+v", rec.results)
	}

	m = sendSession(t, m, keyEsc)
	if m.active != viewMenu {
		t.Fatal("leaving a finished game should return to the menu")
	}
	if m.menu.Difficulty() != config.DifficultyHard {
		t.Errorf("menu forgot difficulty: %s", m.menu.Difficulty())
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != viewStats {
		t.Fatal("tab should open statistics")
	}
	if m.View() == "" {
		t.Error("statistics view is empty")
	}
	m = sendSession(t, m, keyEsc)
	if m.active != viewMenu {
		t.Error("esc should leave statistics")
	}

	next, cmd := m.Update(keyRunes("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should quit")
	}
}
