package cosmicbalance

import (
	"fmt"
	"math"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

const minWidth = 30

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// Draw renders a snapshot. The bar spans the screen width minus a margin.
func Draw(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()
	if w < minWidth || h < 10 {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorRed)
		return
	}

	dst.DrawTextCentered(0, "COSMIC BALANCE", core.ColorMagenta)
	dst.DrawTextColored(1, 1, s.Difficulty.Title(), core.ColorGray)
	score := fmt.Sprintf("Score %d", s.Score)
	dst.DrawTextColored(w-len(score)-1, 1, score, core.ColorYellow)

	switch s.Phase {
	case PhaseReady:
		dst.DrawOverlay(w/2, h/2, core.ColorCyan,
			"Keep the orb inside the zone",
			"Hold SPACE to pull it to the center",
			"",
			"Press ENTER to start")
		return
	case PhaseResults:
		drawResults(dst, s)
		return
	case PhaseAborted:
		dst.DrawTextCentered(h/2, "Session abandoned", core.ColorGray)
		return
	}

	drawRounds(dst, s, 3)
	drawBar(dst, s, h/2)

	hint := "Hold SPACE to control"
	hintColor := core.ColorGray
	switch {
	case s.InZone:
		hint, hintColor = "Perfect! Keep holding!", core.ColorGreen
	case s.Held:
		hint, hintColor = "Moving to center...", core.ColorCyan
	}
	dst.DrawTextCentered(h/2+3, hint, hintColor)
	dst.DrawTextCentered(h/2+5, fmt.Sprintf("In zone %.1fs", s.TimeInZone), core.ColorWhite)

	if s.BetweenRounds {
		dst.DrawOverlay(w/2, h/2-3, core.ColorYellow, fmt.Sprintf("Round %d", s.Round))
	}
	if s.Paused {
		dst.DrawOverlay(w/2, h/2, core.ColorYellow, "PAUSED")
	}
}

func drawRounds(dst *core.Screen, s Snapshot, y int) {
	label := fmt.Sprintf("Round %d/%d ", s.Round, s.Rounds)
	x := (dst.Width() - len(label) - s.Rounds*2) / 2
	dst.DrawText(x, y, label)
	x += len(label)
	for i := 1; i <= s.Rounds; i++ {
		r, c := '○', core.ColorGray
		switch {
		case i < s.Round:
			r, c = '●', core.ColorMagenta
		case i == s.Round && s.RoundProgress > 0:
			r, c = '◐', core.ColorCyan
		}
		dst.SetColored(x, y, r, c)
		x += 2
	}
}

func drawBar(dst *core.Screen, s Snapshot, y int) {
	left := 2
	width := dst.Width() - 4
	cell := func(v float64) int {
		return left + int(math.Round(v*float64(width-1)))
	}

	dst.DrawHLine(left, y, width, '─', core.ColorGray)
	for x := cell(s.ZoneLo); x <= cell(s.ZoneHi); x++ {
		dst.SetColored(x, y, '═', core.ColorGreen)
	}
	dst.SetColored(cell(s.ZoneLo), y-1, '┬', core.ColorGreen)
	dst.SetColored(cell(s.ZoneHi), y-1, '┬', core.ColorGreen)

	orb := core.ColorMagenta
	if s.InZone {
		orb = core.ColorGreen
	}
	dst.SetColored(cell(s.Position), y, '●', orb)
}

func drawResults(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()
	dst.DrawOverlay(w/2, h/2, core.ColorMagenta,
		"SESSION COMPLETE",
		"",
		fmt.Sprintf("Balance score   %d", s.Score),
		fmt.Sprintf("Focus time      %ds", int(s.TotalInZone)),
		fmt.Sprintf("Perfect rounds  %d/%d", s.PerfectRounds, s.Rounds),
		"",
		"ENTER: play again  ESC: back")
}
