package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorOrange
	ColorGray
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
)
