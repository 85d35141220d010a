// Package gui is the desktop window frontend for Alien Invasion, built on
// Ebitengine. The window's logical size is the configured play area and
// Ebitengine scales it to whatever size the window actually has.
package gui

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/session"
)

// Window adapts a game session to ebiten.Game.
type Window struct {
	session *session.Session
	canvas  *canvas
	input   *input
	width   int
	height  int
	err     error
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow creates a window for the session.
func NewWindow(sess *session.Session) *Window {
	game := sess.Game()
	w, h := game.Screen()
	return &Window{
		session: sess,
		canvas:  newCanvas(game.Config().Colors),
		input:   newInput(),
		width:   int(w),
		height:  int(h),
	}
}

// Update runs one simulation tick.
func (w *Window) Update() error {
	res := w.session.Step(w.input.Poll())

	if w.session.Game().CursorVisible() {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if res.Quit {
		w.err = w.session.Close()
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.session.Game().Render(w.canvas)
}

// Layout keeps the logical play area regardless of the window size.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until the player quits or closes it.
// The session is closed on return.
func Run(sess *session.Session, runtime core.RuntimeConfig) error {
	defer sess.Close()

	win := NewWindow(sess)

	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowTitle("Alien Invasion")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return win.err
}
