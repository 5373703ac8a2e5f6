package spaceattack

import (
	"fmt"

	"github.com/vovakirdan/nebula-flow/internal/core"
)

const hudHeight = 2

// playRect is the screen region the play area is mapped onto.
func playRect(w, h int) core.Rect {
	return core.Rect{X: 0, Y: hudHeight, W: w, H: h - hudHeight - 1}
}

// objectCell returns the screen cell of an object's center and its radius in
// columns. ok is false while the object is outside the play area.
func objectCell(o Object, area core.Size, r core.Rect) (x, y, radius int, ok bool) {
	if o.Y < 0 || o.Y > area.H {
		return 0, 0, 0, false
	}
	cx, cy := area.ToCell(core.Point{X: o.X, Y: o.Y}, r.W, r.H)
	radius = int(o.Size / 2 / area.W * float64(r.W))
	return r.X + cx, r.Y + cy, radius, true
}

// Render draws the session into dst.
func (g *Game) Render(dst *core.Screen) {
	Draw(dst, g.Snapshot())
}

// ScreenTap maps a click on a drawn object to an object tap.
func (g *Game) ScreenTap(x, y, w, h int) (core.Tap, bool) {
	area := g.cfg.Area.Size()
	r := playRect(w, h)
	for i := len(g.objects) - 1; i >= 0; i-- {
		o := g.objects[i]
		cx, cy, radius, ok := objectCell(o, area, r)
		if !ok || cy != y {
			continue
		}
		if d := x - cx; d >= -max(radius, 1) && d <= max(radius, 1) {
			return core.TapObjectID(o.ID), true
		}
	}
	return core.Tap{}, false
}

// Draw renders a snapshot.
func Draw(dst *core.Screen, s Snapshot) {
	w, h := dst.Width(), dst.Height()
	if w < 30 || h < 10 {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorRed)
		return
	}

	dst.DrawTextCentered(0, "SPACE ATTACK", core.ColorCyan)
	dst.DrawTextColored(1, 1, s.Difficulty.Title(), core.ColorGray)
	hud := fmt.Sprintf("Lv.%d  Score: %d", s.Level, s.Score)
	dst.DrawTextColored(w-len(hud)-1, 1, hud, core.ColorYellow)

	switch s.Phase {
	case PhaseReady:
		dst.DrawOverlay(w/2, h/2, core.ColorCyan,
			"Destroy the falling meteorites",
			"Click them, or SPACE for the lowest one",
			"",
			"Press ENTER to start")
		return
	case PhaseEnded:
		dst.DrawOverlay(w/2, h/2, core.ColorCyan,
			"MISSION OVER",
			"",
			fmt.Sprintf("Score       %d", s.Score),
			fmt.Sprintf("Level       %d", s.Level),
			fmt.Sprintf("Destroyed   %d", s.Destroyed),
			fmt.Sprintf("Energy      +%d", s.Energy),
			"",
			"ENTER: play again  ESC: back")
		return
	}

	r := playRect(w, h)
	for _, o := range s.Objects {
		x, y, radius, ok := objectCell(o, s.Area, r)
		if !ok {
			continue
		}
		c := core.ColorOrange
		if o.Size >= 45 {
			c = core.ColorRed
		}
		if radius > 0 {
			dst.SetColored(x-1, y, '(', c)
			dst.SetColored(x+1, y, ')', c)
		}
		dst.SetColored(x, y, '@', c)
	}

	dst.DrawTextColored(1, h-1, fmt.Sprintf("Destroyed %d  Escaped %d", s.Destroyed, s.Escaped), core.ColorGray)

	if s.LevelUp {
		dst.DrawOverlay(w/2, h/2, core.ColorGreen,
			fmt.Sprintf("LEVEL %d", s.Level),
			fmt.Sprintf("+%d Energy Fragments", s.LastAward))
	}
	if s.Paused {
		dst.DrawOverlay(w/2, h/2, core.ColorYellow, "PAUSED")
	}
}
