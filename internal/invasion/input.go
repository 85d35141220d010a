package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// dispatch applies one input event. It returns false once a quit was
// requested so the caller stops draining.
func (g *Game) dispatch(ev core.Event, res *StepResult) bool {
	switch ev.Kind {
	case core.EventKeyDown:
		return g.keyDown(ev.Key, res)
	case core.EventKeyUp:
		g.keyUp(ev.Key)
	case core.EventClick:
		if b, ok := g.buttonAt(ev.X, ev.Y); ok {
			g.pressButton(b.Kind, res)
		}
	case core.EventClose:
		res.Quit = true
		return false
	}
	return true
}

func (g *Game) keyDown(k core.Key, res *StepResult) bool {
	switch k {
	case core.KeyLeft:
		g.ship.MovingLeft = true
	case core.KeyRight:
		g.ship.MovingRight = true
	case core.KeyFire:
		g.fireBullet()
	case core.KeyStart:
		if g.phase != PhaseActive {
			g.startGame("", res)
		}
	case core.KeyEasy:
		g.pressButton(ButtonEasy, res)
	case core.KeyHard:
		g.pressButton(ButtonHard, res)
	case core.KeyQuit:
		res.Quit = true
		return false
	}
	return true
}

func (g *Game) keyUp(k core.Key) {
	switch k {
	case core.KeyLeft:
		g.ship.MovingLeft = false
	case core.KeyRight:
		g.ship.MovingRight = false
	}
}

// fireBullet adds a bullet unless the cap is reached or the game is not Active.
func (g *Game) fireBullet() bool {
	if g.phase != PhaseActive || len(g.bullets) >= g.cfg.Bullet.Allowed {
		return false
	}
	g.bullets = append(g.bullets, newBullet(g.ship, g.cfg.Bullet.Width, g.cfg.Bullet.Height))
	return true
}
