package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
)

// Glyphs used for game entities.
const (
	ShipGlyph   = '▲'
	AlienGlyph  = '▓'
	BulletGlyph = '│'
)

// Painter draws the game into a character screen, scaling logical pixels
// down to cells.
type Painter struct {
	screen   *core.Screen
	logicalW float64
	logicalH float64
}

// NewPainter creates a painter for a play area of the given logical size.
func NewPainter(screen *core.Screen, logicalW, logicalH float64) *Painter {
	return &Painter{screen: screen, logicalW: logicalW, logicalH: logicalH}
}

var _ invasion.Renderer = (*Painter)(nil)

// scale returns cells per logical pixel on each axis.
func (p *Painter) scale() (sx, sy float64) {
	return float64(p.screen.Width()) / p.logicalW, float64(p.screen.Height()) / p.logicalH
}

// cells maps a logical box to screen cells.
func (p *Painter) cells(box core.RectF) core.Rect {
	sx, sy := p.scale()
	return box.Scale(sx, sy)
}

// ToLogical maps the center of cell (col, row) to logical coordinates.
func (p *Painter) ToLogical(col, row int) (x, y float64) {
	sx, sy := p.scale()
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

// Clear blanks the screen.
func (p *Painter) Clear() {
	p.screen.Clear()
}

// DrawShip draws the player's ship.
func (p *Painter) DrawShip(box core.RectF) {
	r := p.cells(box)
	p.screen.DrawRect(r, '█', core.ColorShip)
	// Nose on the top row
	p.screen.SetColored(r.X+r.W/2, r.Y, ShipGlyph, core.ColorShip)
}

// DrawBullet draws one bullet.
func (p *Painter) DrawBullet(box core.RectF) {
	r := p.cells(box)
	// Bullets are thinner than a cell; keep them one column wide.
	r.W = 1
	p.screen.DrawRect(r, BulletGlyph, core.ColorBullet)
}

// DrawAlien draws one alien.
func (p *Painter) DrawAlien(box core.RectF) {
	p.screen.DrawRect(p.cells(box), AlienGlyph, core.ColorAlien)
}

// DrawHUD draws a banner row: remaining ships on the left, score, high
// score and level on the right.
func (p *Painter) DrawHUD(h invasion.HUD) {
	p.screen.DrawRect(core.NewRect(0, 0, p.screen.Width(), 1), ' ', core.ColorBanner)

	ships := strings.Repeat(string(ShipGlyph), max(h.ShipsLeft, 0))
	p.screen.DrawTextColored(1, 0, ships, core.ColorBanner)

	text := fmt.Sprintf("Score %s  High %s  Level %d", commas(h.Score), commas(h.HighScore), h.Level)
	x := p.screen.Width() - len([]rune(text)) - 1
	p.screen.DrawTextColored(max(x, 0), 0, text, core.ColorBanner)
}

// DrawButton draws a menu button with its label centered.
func (p *Painter) DrawButton(b invasion.Button) {
	r := p.cells(b.Box)
	c := buttonColor(b.Kind)

	label := b.Label
	if r.H >= 3 {
		p.screen.DrawRect(r, ' ', c)
		p.screen.DrawBox(r, c)
	} else {
		label = "[ " + label + " ]"
	}

	mid := r.Y + r.H/2
	x := r.X + (r.W-len([]rune(label)))/2
	p.screen.DrawTextColored(x, mid, label, c)
}

func buttonColor(k invasion.ButtonKind) core.Color {
	switch k {
	case invasion.ButtonEasy:
		return core.ColorEasyButton
	case invasion.ButtonHard:
		return core.ColorHardButton
	default:
		return core.ColorPlayButton
	}
}

// commas formats n with thousands separators.
func commas(n int) string {
	return invasion.FormatScore(n)
}
