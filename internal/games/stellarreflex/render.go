package stellarreflex

import (
	"fmt"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

const hudHeight = 3

func playRect(w, h int) core.Rect {
	return core.Rect{X: 0, Y: hudHeight, W: w, H: h - hudHeight - 1}
}

// targetCell returns the target's center cell and its radius in columns and rows.
func targetCell(s Snapshot, r core.Rect) (x, y, rx, ry int) {
	cx, cy := s.Area.ToCell(s.Target, r.W, r.H)
	rx = int(s.TargetSize / 2 / s.Area.W * float64(r.W))
	ry = int(s.TargetSize / 2 / s.Area.H * float64(r.H))
	return r.X + cx, r.Y + cy, rx, ry
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// ScreenTap maps a click on the drawn target to a target tap.
func (g *Game) ScreenTap(x, y, w, h int) (core.Tap, bool) {
	s := g.Snapshot()
	if !s.Visible {
		return core.Tap{}, false
	}
	cx, cy, rx, ry := targetCell(s, playRect(w, h))
	rx, ry = max(rx, 1), max(ry, 0)
	if x < cx-rx || x > cx+rx || y < cy-ry || y > cy+ry {
		return core.Tap{}, false
	}
	return core.TapObjectID(0), true
}

// Draw renders a snapshot.
func Draw(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()
	if w < 30 || h < 10 {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorRed)
		return
	}

	dst.DrawTextCentered(0, "STELLAR REFLEX", core.ColorGreen)
	dst.DrawTextColored(1, 1, s.Difficulty.Title(), core.ColorGray)
	hud := fmt.Sprintf("Round %d/%d  Score: %d", s.Round, s.Rounds, s.Score)
	dst.DrawTextColored(w-len(hud)-1, 1, hud, core.ColorYellow)

	switch s.Phase {
	case PhaseReady:
		dst.DrawOverlay(w/2, h/2, core.ColorGreen,
			"Tap the glowing targets as fast as you can!",
			"Click the target or press SPACE",
			"",
			"Press ENTER to start")
		return
	case PhaseCountdown:
		dst.DrawTextCentered(h/2-1, fmt.Sprintf("%d", s.Countdown), core.ColorGreen)
		dst.DrawTextCentered(h/2+1, "Get ready...", core.ColorWhite)
		return
	case PhaseResults:
		best := "-"
		if s.BestMs > 0 {
			best = fmt.Sprintf("%dms", s.BestMs)
		}
		dst.DrawOverlay(w/2, h/2, core.ColorGreen,
			"RESULTS",
			"",
			fmt.Sprintf("Score          %d", s.Score),
			fmt.Sprintf("Avg reaction   %dms", s.AvgMs),
			fmt.Sprintf("Best reaction  %s", best),
			fmt.Sprintf("Level          %d", s.Level),
			"",
			"ENTER: play again  ESC: back")
		return
	case PhaseAborted:
		dst.DrawTextCentered(h/2, "Session abandoned", core.ColorGray)
		return
	}

	if s.LastPoints > 0 {
		dst.DrawTextCentered(2, fmt.Sprintf("+%d", s.LastPoints), core.ColorCyan)
	}

	if !s.Visible {
		dst.DrawTextCentered(h/2, "Wait for it...", core.ColorGray)
	} else {
		x, y, rx, ry := targetCell(s, playRect(w, h))
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				dst.SetColored(x+dx, y+dy, '░', core.ColorGreen)
			}
		}
		dst.SetColored(x, y, '◎', core.ColorYellow)
	}

	if s.Paused {
		dst.DrawOverlay(w/2, h/2, core.ColorYellow, "PAUSED")
	}
}
