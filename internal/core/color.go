package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors.
type Color uint8

// Predefined colors for session elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
