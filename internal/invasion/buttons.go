package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Button sizes in logical pixels.
const (
	ButtonWidth  = 200
	ButtonHeight = 50
)

// ButtonKind identifies a menu button.
type ButtonKind int

const (
	ButtonPlay ButtonKind = iota
	ButtonEasy
	ButtonHard
)

// String returns the button label.
func (k ButtonKind) String() string {
	switch k {
	case ButtonPlay:
		return "Play"
	case ButtonEasy:
		return "Easy"
	case ButtonHard:
		return "Hard"
	default:
		return "?"
	}
}

// Preset returns the difficulty a button selects, or "" for Play.
func (k ButtonKind) Preset() config.DifficultyPreset {
	switch k {
	case ButtonEasy:
		return config.DifficultyEasy
	case ButtonHard:
		return config.DifficultyHard
	default:
		return ""
	}
}

// Button is a clickable menu region.
type Button struct {
	Kind  ButtonKind
	Label string
	Box   core.RectF
}

// Buttons returns the menu buttons currently shown.
// Nothing is shown while Active; otherwise Play until it has been clicked,
// then Easy above Hard.
func (g *Game) Buttons() []Button {
	if g.phase == PhaseActive {
		return nil
	}

	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	upper := core.NewRectF(w/2-ButtonWidth/2, h/2-ButtonHeight, ButtonWidth, ButtonHeight)
	lower := core.NewRectF(w/2-ButtonWidth/2, h/2+ButtonHeight, ButtonWidth, ButtonHeight)

	if !g.clickedPlay {
		return []Button{{Kind: ButtonPlay, Label: ButtonPlay.String(), Box: upper}}
	}
	return []Button{
		{Kind: ButtonEasy, Label: ButtonEasy.String(), Box: upper},
		{Kind: ButtonHard, Label: ButtonHard.String(), Box: lower},
	}
}

// buttonAt returns the visible button containing (x, y).
func (g *Game) buttonAt(x, y float64) (Button, bool) {
	for _, b := range g.Buttons() {
		if b.Box.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// pressButton activates a visible button.
func (g *Game) pressButton(kind ButtonKind, res *StepResult) {
	visible := false
	for _, b := range g.Buttons() {
		if b.Kind == kind {
			visible = true
			break
		}
	}
	if !visible {
		return
	}

	if kind == ButtonPlay {
		g.clickedPlay = true
		return
	}
	g.startGame(kind.Preset(), res)
}
