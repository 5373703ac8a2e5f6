package mindorbit

import (
	"fmt"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

const (
	cellW   = 7
	cellH   = 3
	gridTop = 4
)

// keyRows label the first four rows and columns of the grid.
var keyRows = []string{"1234", "qwer", "asdf", "zxcv"}

func keyLabel(i, size int) string {
	row, col := i/size, i%size
	if row >= len(keyRows) || col >= len(keyRows[row]) {
		return ""
	}
	return string(keyRows[row][col])
}

// KeyTap maps a labelled key to a cell tap.
func (g *Game) KeyTap(key string) (core.Tap, bool) {
	size := g.cfg.GridSize
	for i := 0; i < g.Cells(); i++ {
		if l := keyLabel(i, size); l != "" && l == key {
			return core.TapCellIndex(i), true
		}
	}
	return core.Tap{}, false
}

// GridOrigin returns the top-left cell of a size×size grid drawn w columns wide.
func GridOrigin(w, size int) (int, int) {
	return (w - size*cellW) / 2, gridTop
}

// ScreenTap maps a click inside the grid to a cell tap.
func (g *Game) ScreenTap(x, y, w, _ int) (core.Tap, bool) {
	size := g.cfg.GridSize
	x0, y0 := GridOrigin(w, size)
	if x < x0 || y < y0 || x >= x0+size*cellW || y >= y0+size*cellH {
		return core.Tap{}, false
	}
	col := (x - x0) / cellW
	row := (y - y0) / cellH
	return core.TapCellIndex(row*size + col), true
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// Draw renders a snapshot.
func Draw(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()
	if w < s.GridSize*cellW+2 || h < gridTop+s.GridSize*cellH+3 {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorRed)
		return
	}

	dst.DrawTextCentered(0, "MIND ORBIT", core.ColorBlue)
	dst.DrawTextColored(1, 1, s.Difficulty.Title(), core.ColorGray)
	hud := fmt.Sprintf("Lv.%d  Score: %d", s.Level, s.Score)
	dst.DrawTextColored(w-len(hud)-1, 1, hud, core.ColorYellow)

	msg, c := instruction(s)
	dst.DrawTextCentered(2, msg, c)

	x0, y0 := GridOrigin(w, s.GridSize)
	for i := 0; i < s.GridSize*s.GridSize; i++ {
		r := core.Rect{X: x0 + (i%s.GridSize)*cellW, Y: y0 + (i/s.GridSize)*cellH, W: cellW, H: cellH}
		border := core.ColorGray
		if s.Phase == PhaseInput {
			border = core.ColorBlue
		}
		if i == s.Lit {
			border = core.ColorCyan
			for x := r.X + 1; x < r.Right()-1; x++ {
				dst.SetColored(x, r.Y+1, '█', core.ColorCyan)
			}
		} else if l := keyLabel(i, s.GridSize); l != "" {
			dst.DrawTextColored(r.X+cellW/2, r.Y+1, l, core.ColorGray)
		}
		dst.DrawBox(r, border)
	}

	footer := y0 + s.GridSize*cellH + 1
	switch s.Phase {
	case PhaseInput:
		dst.DrawTextCentered(footer, fmt.Sprintf("%d / %d", s.Entered, s.PatternLen), core.ColorWhite)
	case PhaseEnded:
		dst.DrawOverlay(w/2, h/2, core.ColorBlue,
			"ORBIT CLOSED",
			"",
			fmt.Sprintf("Score     %d", s.Score),
			fmt.Sprintf("Level     %d", s.Level),
			fmt.Sprintf("Patterns  %d", s.Rounds),
			fmt.Sprintf("Energy    +%d", s.Energy),
			"",
			"ENTER: play again  ESC: back")
	case PhaseCorrect:
		dst.DrawOverlay(w/2, h/2, core.ColorGreen,
			fmt.Sprintf("LEVEL %d", s.Level),
			fmt.Sprintf("+%d Energy Fragments", s.LastAward))
	}
	if s.Paused {
		dst.DrawOverlay(w/2, h/2, core.ColorYellow, "PAUSED")
	}
}

func instruction(s Snapshot) (string, core.Color) {
	switch s.Phase {
	case PhaseReady:
		return "Watch the pattern and repeat it. ENTER to start", core.ColorWhite
	case PhaseShowing:
		return "Watch carefully...", core.ColorCyan
	case PhaseInput:
		return "Repeat the pattern", core.ColorBlue
	case PhaseCorrect:
		return "Correct! Well done.", core.ColorGreen
	case PhaseWrong:
		return "Incorrect. Try again.", core.ColorRed
	}
	return "", core.ColorDefault
}
