package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/invasion"
)

// HUD layout in logical pixels.
const (
	textScale  = 2.5
	hudMargin  = 20
	labelPad   = 6
	iconWidth  = 30
	iconHeight = 24
)

// palette holds the parsed configuration colors.
type palette struct {
	background color.RGBA
	ship       color.RGBA
	bullet     color.RGBA
	alien      color.RGBA
	text       color.RGBA
	play       color.RGBA
	easy       color.RGBA
	hard       color.RGBA
	banner     color.RGBA
}

func newPalette(c config.ColorConfig) palette {
	return palette{
		background: config.MustColor(c.Background),
		ship:       config.MustColor(c.Ship),
		bullet:     config.MustColor(c.Bullet),
		alien:      config.MustColor(c.Alien),
		text:       config.MustColor(c.Text),
		play:       config.MustColor(c.PlayButton),
		easy:       config.MustColor(c.EasyButton),
		hard:       config.MustColor(c.HardButton),
		banner:     config.MustColor(c.ScoreBanner),
	}
}

// canvas draws the game onto an Ebitengine image.
type canvas struct {
	dst  *ebiten.Image
	pal  palette
	face text.Face
}

var _ invasion.Renderer = (*canvas)(nil)

func newCanvas(colors config.ColorConfig) *canvas {
	return &canvas{
		pal:  newPalette(colors),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

func (c *canvas) fillRect(box core.RectF, clr color.Color) {
	vector.DrawFilledRect(c.dst, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), clr, false)
}

// Clear fills the background.
func (c *canvas) Clear() {
	c.dst.Fill(c.pal.background)
}

// DrawShip draws a hull with a cockpit on top.
func (c *canvas) DrawShip(box core.RectF) {
	c.drawShip(box, c.pal.ship)
}

func (c *canvas) drawShip(box core.RectF, clr color.Color) {
	c.fillRect(core.NewRectF(box.X, box.Y+box.H/3, box.W, box.H*2/3), clr)
	c.fillRect(core.NewRectF(box.X+box.W/3, box.Y, box.W/3, box.H/3), clr)
}

// DrawBullet draws one bullet.
func (c *canvas) DrawBullet(box core.RectF) {
	c.fillRect(box, c.pal.bullet)
}

// DrawAlien draws a body with two eyes.
func (c *canvas) DrawAlien(box core.RectF) {
	c.fillRect(box, c.pal.alien)
	eyeW, eyeH := box.W*0.15, box.H*0.15
	c.fillRect(core.NewRectF(box.X+box.W*0.2, box.Y+box.H*0.3, eyeW, eyeH), c.pal.background)
	c.fillRect(core.NewRectF(box.X+box.W*0.65, box.Y+box.H*0.3, eyeW, eyeH), c.pal.background)
}

// DrawHUD draws the remaining ships top left, the high score top center,
// and the score with the level below it top right.
func (c *canvas) DrawHUD(h invasion.HUD) {
	for i := range max(h.ShipsLeft, 0) {
		x := float64(hudMargin + i*(iconWidth+labelPad))
		c.drawShip(core.NewRectF(x, hudMargin/2, iconWidth, iconHeight), c.pal.ship)
	}

	screenW := float64(c.dst.Bounds().Dx())
	c.drawLabel("High "+invasion.FormatScore(h.HighScore), screenW/2, hudMargin, text.AlignCenter)
	bottom := c.drawLabel(invasion.FormatScore(h.Score), screenW-hudMargin, hudMargin, text.AlignEnd)
	c.drawLabel("Level "+invasion.FormatScore(h.Level), screenW-hudMargin, bottom+labelPad, text.AlignEnd)
}

// drawLabel draws banner text anchored at (x, y) and returns the bottom edge
// of its background.
func (c *canvas) drawLabel(s string, x, y float64, align text.Align) float64 {
	w, h := text.Measure(s, c.face, 0)
	w, h = w*textScale, h*textScale

	left := x
	switch align {
	case text.AlignCenter:
		left = x - w/2
	case text.AlignEnd:
		left = x - w
	}
	c.fillRect(core.NewRectF(left-labelPad, y-labelPad, w+2*labelPad, h+2*labelPad), c.pal.banner)

	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(c.pal.text)
	text.Draw(c.dst, s, c.face, op)

	return y + h + labelPad
}

// DrawButton draws a filled button with its label centered.
func (c *canvas) DrawButton(b invasion.Button) {
	c.fillRect(b.Box, c.buttonColor(b.Kind))

	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(b.Box.CenterX(), b.Box.Y+b.Box.H/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c.pal.text)
	text.Draw(c.dst, b.Label, c.face, op)
}

func (c *canvas) buttonColor(k invasion.ButtonKind) color.RGBA {
	switch k {
	case invasion.ButtonEasy:
		return c.pal.easy
	case invasion.ButtonHard:
		return c.pal.hard
	default:
		return c.pal.play
	}
}
