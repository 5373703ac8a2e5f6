package mindorbit

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/nebula-flow/internal/config"
	"github.com/vovakirdan/nebula-flow/internal/core"
	"github.com/vovakirdan/nebula-flow/internal/registry"
	"github.com/vovakirdan/nebula-flow/internal/reward"
	"github.com/vovakirdan/nebula-flow/internal/session"
)

func newGame(t *testing.T, lvl config.DifficultyPreset) *Game {
	t.Helper()
	g := New(registry.Options{Difficulty: lvl, Profiles: config.DefaultProfiles()})
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	g.Reset(cfg)
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func tapFrame(cells ...int) core.InputFrame {
	f := core.NewInputFrame()
	for _, c := range cells {
		f.AddTap(core.TapCellIndex(c))
	}
	return f
}

// toInput starts a round (if needed) and steps until input opens.
func toInput(t *testing.T, g *Game) {
	t.Helper()
	if g.phase == PhaseReady {
		g.Start()
	}
	for i := 0; i < 1000; i++ {
		if g.phase == PhaseInput {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatalf("input never opened, phase %v", g.phase)
}

func wrongCell(c int) int { return (c + 1) % 16 }

func TestPatternGeneration(t *testing.T) {
	tests := []struct {
		lvl  config.DifficultyPreset
		want int
	}{
		{config.DifficultyEasy, 3},
		{config.DifficultyNormal, 4},
		{config.DifficultyHard, 5},
	}
	for _, tt := range tests {
		g := newGame(t, tt.lvl)
		g.Start()
		if len(g.pattern) != tt.want {
			t.Errorf("%s pattern length = %d, want %d", tt.lvl, len(g.pattern), tt.want)
		}
		for _, c := range g.pattern {
			if c < 0 || c >= 16 {
				t.Errorf("cell %d outside the grid", c)
			}
		}
	}
}

func TestShowingSchedule(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	g.Start()
	step := func(n int) {
		for i := 0; i < n; i++ {
			g.Step(core.NewInputFrame())
		}
	}

	step(5) // 0.25s, still in the lead-in
	if g.Lit() != -1 {
		t.Errorf("lit during lead-in = %d, want -1", g.Lit())
	}
	step(6) // 0.55s, first pulse
	if g.Lit() != g.pattern[0] {
		t.Errorf("lit = %d, want first cell %d", g.Lit(), g.pattern[0])
	}
	step(9) // 1.0s, dark gap
	if g.Lit() != -1 {
		t.Errorf("lit in gap = %d, want -1", g.Lit())
	}
	step(8) // 1.4s, second pulse
	if g.Lit() != g.pattern[1] {
		t.Errorf("lit = %d, want second cell %d", g.Lit(), g.pattern[1])
	}

	// Input opens at 0.5 + 4*0.8 = 3.7s (74 steps).
	step(73 - 28)
	if g.phase != PhaseShowing {
		t.Fatalf("phase at 3.65s = %v, want showing", g.phase)
	}
	step(1)
	if g.phase != PhaseInput {
		t.Fatalf("phase at 3.7s = %v, want input", g.phase)
	}
}

func TestTapsIgnoredOutsideInput(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)

	g.Step(tapFrame(0))
	if g.TapCell(0) || len(g.entered) != 0 {
		t.Error("tap in ready should be ignored")
	}

	g.Start()
	g.Step(tapFrame(g.pattern[0]))
	if len(g.entered) != 0 {
		t.Error("tap while showing should be ignored")
	}
}

func TestCorrectPattern(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	toInput(t, g)

	g.Step(tapFrame(g.pattern...))

	s := g.Snapshot()
	if s.Phase != PhaseCorrect {
		t.Fatalf("phase = %v, want correct", s.Phase)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, want 2", s.Level)
	}
	if s.Score != 10*1*2 {
		t.Errorf("score = %d, want 20", s.Score)
	}
	if s.LastAward != 2*3*2 || s.Energy != 12 {
		t.Errorf("award/energy = %d/%d, want 12/12", s.LastAward, s.Energy)
	}
}

func TestWrongTapAtAnyPosition(t *testing.T) {
	for pos := 0; pos < 4; pos++ {
		g := newGame(t, config.DifficultyNormal)
		toInput(t, g)

		taps := slices.Clone(g.pattern[:pos])
		taps = append(taps, wrongCell(g.pattern[pos]))
		g.Step(tapFrame(taps...))

		s := g.Snapshot()
		if s.Phase != PhaseWrong {
			t.Errorf("position %d: phase = %v, want wrong", pos, s.Phase)
		}
		if s.Level != 1 || s.Score != 0 {
			t.Errorf("position %d: level/score = %d/%d, want 1/0", pos, s.Level, s.Score)
		}
	}
}

func TestTapsAfterWrongInSameFrameIgnored(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	toInput(t, g)

	taps := append([]int{wrongCell(g.pattern[0])}, g.pattern...)
	g.Step(tapFrame(taps...))

	if g.phase != PhaseWrong || len(g.entered) != 1 {
		t.Errorf("phase %v with %d entries, want wrong with 1", g.phase, len(g.entered))
	}
}

func TestRetrySameLevelAfterWrong(t *testing.T) {
	g := newGame(t, config.DifficultyEasy)
	toInput(t, g)
	g.Step(tapFrame(wrongCell(g.pattern[0])))

	g.Step(frame(core.ActionStart))
	if g.phase != PhaseShowing {
		t.Fatalf("phase after start = %v, want showing", g.phase)
	}
	if len(g.pattern) != 3 || g.Snapshot().Attempts != 2 {
		t.Errorf("pattern length %d attempts %d, want 3/2", len(g.pattern), g.Snapshot().Attempts)
	}
}

func TestCorrectAutoAdvances(t *testing.T) {
	g := newGame(t, config.DifficultyHard)
	toInput(t, g)
	g.Step(tapFrame(g.pattern...))

	// The tapping step already counts toward the 1.5s display.
	for i := 0; i < 28; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.phase != PhaseCorrect {
		t.Fatalf("phase before 1.5s = %v, want correct", g.phase)
	}
	g.Step(core.NewInputFrame())
	if g.phase != PhaseShowing {
		t.Fatalf("phase after 1.5s = %v, want showing", g.phase)
	}
	if len(g.pattern) != 4+2 {
		t.Errorf("next pattern length = %d, want 6", len(g.pattern))
	}
}

func TestLevelsAccumulate(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	for round := 1; round <= 3; round++ {
		toInput(t, g)
		g.Step(tapFrame(g.pattern...))
		if g.Snapshot().Level != round+1 {
			t.Fatalf("round %d: level = %d", round, g.Snapshot().Level)
		}
		g.Start()
	}

	res := g.Step(frame(core.ActionExit))
	if !res.Finished {
		t.Fatal("exit did not end the session")
	}
	if !res.State.GameOver {
		t.Error("exit step should report the session as over")
	}
	r, ok := g.Result()
	if !ok {
		t.Fatal("no result after exit")
	}
	if r.Game != session.MindOrbit || r.Metrics.Level != 4 || r.Metrics.Rounds != 3 {
		t.Errorf("result = %+v", r)
	}
	if r.Score != (10*1+10*2+10*3)*2 {
		t.Errorf("score = %d, want 120", r.Score)
	}
	if r.EnergyEarned != reward.MindOrbit(4, config.DifficultyNormal) || r.EnergyEarned != reward.ForResult(r) {
		t.Errorf("energy = %d, want %d", r.EnergyEarned, reward.MindOrbit(4, config.DifficultyNormal))
	}

	if g.Step(frame(core.ActionExit)).Finished {
		t.Error("second exit reported Finished again")
	}
	if g.TapCell(0) {
		t.Error("tap after exit should be ignored")
	}
}

func TestKeyAndScreenTaps(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)

	tests := []struct {
		key  string
		cell int
	}{
		{"1", 0}, {"4", 3}, {"q", 4}, {"f", 11}, {"v", 15},
	}
	for _, tt := range tests {
		tap, ok := g.KeyTap(tt.key)
		if !ok || tap.Kind != core.TapCell || tap.Cell != tt.cell {
			t.Errorf("KeyTap(%q) = %+v, %v, want cell %d", tt.key, tap, ok, tt.cell)
		}
	}
	if _, ok := g.KeyTap("p"); ok {
		t.Error("unbound key should not map to a cell")
	}

	x0, y0 := GridOrigin(80, 4)
	tap, ok := g.ScreenTap(x0+2*cellW+1, y0+3*cellH+1, 80, 24)
	if !ok || tap.Cell != 14 {
		t.Errorf("ScreenTap = %+v, %v, want cell 14", tap, ok)
	}
	if _, ok := g.ScreenTap(0, 0, 80, 24); ok {
		t.Error("tap outside the grid should miss")
	}
}

func TestRenderShowsLitCell(t *testing.T) {
	g := newGame(t, config.DifficultyNormal)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "ENTER to start") {
		t.Error("ready screen missing start hint")
	}

	g.Start()
	for i := 0; i < 11; i++ {
		g.Step(core.NewInputFrame())
	}
	scr.Clear()
	g.Render(scr)

	lit := g.Lit()
	x0, y0 := GridOrigin(80, 4)
	x := x0 + (lit%4)*cellW + 1
	y := y0 + (lit/4)*cellH + 1
	if scr.Get(x, y) != '█' {
		t.Errorf("lit cell %d not filled at (%d, %d)", lit, x, y)
	}
}
