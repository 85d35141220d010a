package core

// Color represents a foreground color for a screen cell.
// Frontends map it to ANSI 256-color codes or to themed styles.
type Color uint8

// Palette used by the terminal frontend.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// Game roles, themed from the color configuration
	ColorShip
	ColorBullet
	ColorAlien
	ColorBanner
	ColorPlayButton
	ColorEasyButton
	ColorHardButton
)
