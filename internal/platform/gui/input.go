package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// keyBindings maps physical keys to game keys.
var keyBindings = map[ebiten.Key]core.Key{
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyA:          core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyD:          core.KeyRight,
	ebiten.KeySpace:      core.KeyFire,
	ebiten.KeyP:          core.KeyStart,
	ebiten.KeyE:          core.KeyEasy,
	ebiten.KeyH:          core.KeyHard,
	ebiten.KeyQ:          core.KeyQuit,
}

// input collects the events of one tick from Ebitengine's input state.
type input struct {
	keys []ebiten.Key
}

func newInput() *input {
	return &input{keys: make([]ebiten.Key, 0, 8)}
}

// Poll returns this tick's events: close request, key presses, key
// releases, then a left click.
func (in *input) Poll() []core.Event {
	var events []core.Event

	if ebiten.IsWindowBeingClosed() {
		events = append(events, core.Event{Kind: core.EventClose})
	}

	in.keys = inpututil.AppendJustPressedKeys(in.keys[:0])
	for _, k := range in.keys {
		if gk, ok := keyBindings[k]; ok {
			events = append(events, core.KeyDown(gk))
		}
	}

	in.keys = inpututil.AppendJustReleasedKeys(in.keys[:0])
	for _, k := range in.keys {
		if gk, ok := keyBindings[k]; ok {
			events = append(events, core.KeyUp(gk))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		events = append(events, core.Click(float64(x), float64(y)))
	}

	return events
}
