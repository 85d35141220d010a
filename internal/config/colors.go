package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#RRGGBB" or "#RGB" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q must be #RRGGBB or #RGB", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustColor parses a color that Validate has already accepted.
// Invalid input yields opaque magenta so that mistakes are visible.
func MustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// fields returns the colors paired with their YAML names.
func (c ColorConfig) fields() [][2]string {
	return [][2]string{
		{"background", c.Background},
		{"ship", c.Ship},
		{"bullet", c.Bullet},
		{"alien", c.Alien},
		{"text", c.Text},
		{"play_button", c.PlayButton},
		{"easy_button", c.EasyButton},
		{"hard_button", c.HardButton},
		{"score_banner", c.ScoreBanner},
	}
}

// validate reports every color that does not parse.
func (c ColorConfig) validate() []error {
	var errs []error
	for _, f := range c.fields() {
		if _, err := ParseHexColor(f[1]); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", f[0], err))
		}
	}
	return errs
}
