package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// paletteCodes maps the fixed palette to ANSI 256-color codes.
var paletteCodes = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightRed:    "9",
	core.ColorBrightGreen:  "10",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// Theme maps core.Color to lipgloss styles.
// Palette colors are drawn over the configured background; game roles use
// the configured hex colors.
type Theme struct {
	styles map[core.Color]lipgloss.Style
}

// NewTheme builds a theme from the color configuration.
func NewTheme(colors config.ColorConfig) Theme {
	bg := lipgloss.Color(colors.Background)
	base := lipgloss.NewStyle().Background(bg)

	styles := make(map[core.Color]lipgloss.Style, len(paletteCodes)+8)
	styles[core.ColorDefault] = base
	for c, code := range paletteCodes {
		styles[c] = base.Foreground(lipgloss.Color(code))
	}

	text := lipgloss.Color(colors.Text)
	styles[core.ColorShip] = base.Foreground(lipgloss.Color(colors.Ship))
	styles[core.ColorBullet] = base.Foreground(lipgloss.Color(colors.Bullet))
	styles[core.ColorAlien] = base.Foreground(lipgloss.Color(colors.Alien))
	styles[core.ColorBanner] = lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color(colors.ScoreBanner))
	styles[core.ColorPlayButton] = lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color(colors.PlayButton)).Bold(true)
	styles[core.ColorEasyButton] = lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color(colors.EasyButton)).Bold(true)
	styles[core.ColorHardButton] = lipgloss.NewStyle().Foreground(text).Background(lipgloss.Color(colors.HardButton)).Bold(true)

	return Theme{styles: styles}
}

// Style returns the style for a color, falling back to the default.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t.styles[c]; ok {
		return style
	}
	return t.styles[core.ColorDefault]
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(t.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}
