package invasion

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// HUD is the scoreboard shown on every frame.
// Score and HighScore are rounded to tens for display.
type HUD struct {
	Score     int
	HighScore int
	Level     int
	ShipsLeft int
}

// Renderer receives draw requests in logical coordinates.
// The game owns geometry only; pixels are the frontend's business.
type Renderer interface {
	Clear()
	DrawShip(box core.RectF)
	DrawBullet(box core.RectF)
	DrawAlien(box core.RectF)
	DrawHUD(h HUD)
	DrawButton(b Button)
}

// Render draws the current frame: background, ship, bullets, aliens, HUD,
// and the menu buttons when not Active.
func (g *Game) Render(r Renderer) {
	r.Clear()
	r.DrawShip(g.ship.Box())
	for _, b := range g.bullets {
		r.DrawBullet(b.Box())
	}
	for _, a := range g.fleet.Aliens {
		r.DrawAlien(a.Box())
	}
	r.DrawHUD(g.HUD())

	for _, b := range g.Buttons() {
		r.DrawButton(b)
	}
}

// HUD returns the scoreboard values for display.
func (g *Game) HUD() HUD {
	return HUD{
		Score:     roundTens(g.stats.Score),
		HighScore: roundTens(g.stats.HighScore),
		Level:     g.stats.Level,
		ShipsLeft: g.stats.ShipsLeft,
	}
}

var numberPrinter = message.NewPrinter(language.English)

// FormatScore formats a score with thousands separators, e.g. 1,250,000.
func FormatScore(n int) string {
	return numberPrinter.Sprintf("%d", n)
}
