// Package core provides fundamental types and utilities shared by the Nebula Flow
// games. It contains no external dependencies (especially no Bubble Tea) to keep
// session logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Point is a position in play-area units (not terminal cells).
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Size is the extent of a play area in play-area units.
type Size struct {
	W, H float64
}

// ToCell maps a play-area point onto a screen of w×h cells.
func (s Size) ToCell(p Point, w, h int) (int, int) {
	if s.W <= 0 || s.H <= 0 {
		return 0, 0
	}
	x := int(p.X / s.W * float64(w))
	y := int(p.Y / s.H * float64(h))
	return Clamp(x, 0, w-1), Clamp(y, 0, h-1)
}

// FromCell maps the center of a screen cell back into play-area units.
func (s Size) FromCell(x, y, w, h int) Point {
	if w <= 0 || h <= 0 {
		return Point{}
	}
	return Point{
		X: (float64(x) + 0.5) / float64(w) * s.W,
		Y: (float64(y) + 0.5) / float64(h) * s.H,
	}
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
