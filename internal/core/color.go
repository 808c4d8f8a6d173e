package core

// Color is a foreground color for a screen cell.
// The platform maps it to an ANSI color; the rules never see escape codes.
type Color uint8

// Colors used by the game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorCyan
	ColorBlue
	ColorRed
	ColorWhite
	ColorGray
	ColorOrange
)
