// Package invasion implements the Alien Invasion game core: ship, bullets,
// the alien fleet, collisions, scoring and the pre-game/active/game-over
// state machine.
//
// The core is frontend-agnostic. A frontend feeds discrete input events into
// Step once per fixed tick and then calls Render with its own Renderer.
// Movement is expressed in logical pixels per tick, so a run is fully
// determined by its configuration and event sequence.
package invasion

import (
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Game holds all state for one player session.
type Game struct {
	cfg      config.InvasionConfig
	settings *config.Settings
	runtime  core.RuntimeConfig

	ship    *Ship
	bullets []*Bullet
	fleet   Fleet
	stats   Stats

	phase       Phase
	clickedPlay bool
	pauseTicks  int // Remaining frozen ticks after losing a ship
	tick        uint64
}

// New creates a game driven by the given runtime settings.
// Call Reset before the first Step.
func New(settings *config.Settings) *Game {
	cfg := settings.Config()
	return &Game{
		cfg:      cfg,
		settings: settings,
		runtime:  core.DefaultConfig(),
		ship:     newShip(cfg.Ship.Width, cfg.Ship.Height),
	}
}

// Reset returns the game to the pre-game menu. The high score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.settings.Reset()

	g.stats.Reset(g.cfg.Ship.Limit)
	g.phase = PhasePreGame
	g.clickedPlay = false
	g.pauseTicks = 0
	g.tick = 0

	g.bullets = nil
	g.fleet.Clear()
	g.fleet.Direction = 1

	g.ship.MovingLeft = false
	g.ship.MovingRight = false
	g.ship.Center(g.cfg.Screen.Width, g.cfg.Screen.Height)
}

// Step advances the simulation by one tick.
// All events are dispatched first; the world is updated only while Active
// and not frozen after a lost ship.
func (g *Game) Step(events []core.Event) StepResult {
	var res StepResult
	g.tick++

	for _, ev := range events {
		if !g.dispatch(ev, &res) {
			break
		}
	}

	if g.phase == PhaseActive {
		if g.pauseTicks > 0 {
			g.pauseTicks--
		} else {
			g.update(&res)
		}
	}

	res.State = g.State()
	return res
}

// update runs one tick of world simulation.
func (g *Game) update(res *StepResult) {
	g.ship.Update(g.settings.ShipSpeed, g.cfg.Screen.Width)
	g.updateBullets(res)
	g.updateAliens(res)
}

// updateBullets moves bullets, prunes those off the top, resolves hits and
// levels up when the fleet is gone.
func (g *Game) updateBullets(res *StepResult) {
	for _, b := range g.bullets {
		b.Update(g.settings.BulletSpeed)
	}
	g.bullets = pruneBullets(g.bullets)

	var destroyed int
	g.bullets, g.fleet.Aliens, destroyed = resolveHits(g.bullets, g.fleet.Aliens)
	g.stats.AddPoints(g.settings.AlienPoints * destroyed)

	if g.fleet.Len() == 0 {
		g.levelUp(res)
	}
}

// updateAliens turns the fleet at the edges, moves it, then checks for a
// collision with the ship or the bottom of the screen.
func (g *Game) updateAliens(res *StepResult) {
	g.fleet.CheckEdges(g.cfg.Screen.Width, g.settings.FleetDropSpeed)
	g.fleet.Update(g.settings.AlienSpeed)

	if g.fleet.HitTest(g.ship.Box()) != nil {
		g.shipHit(res)
		return
	}
	if g.fleet.CheckBottom(g.cfg.Screen.Height) {
		g.shipHit(res)
	}
}

// State returns the current game state.
func (g *Game) State() State {
	return State{
		Phase:      g.phase,
		Score:      g.stats.Score,
		HighScore:  g.stats.HighScore,
		Level:      g.stats.Level,
		ShipsLeft:  g.stats.ShipsLeft,
		Difficulty: g.settings.Preset(),
		Paused:     g.pauseTicks > 0,
	}
}

// SetHighScore seeds the high score, typically from storage at startup.
// It never lowers the current value.
func (g *Game) SetHighScore(score int) {
	if score > g.stats.HighScore {
		g.stats.HighScore = score
	}
}

// CursorVisible reports whether a pointer should be shown.
// The cursor is hidden during play.
func (g *Game) CursorVisible() bool {
	return g.phase != PhaseActive
}

// Screen returns the logical play-area size.
func (g *Game) Screen() (w, h float64) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// Config returns the static configuration the game runs with.
func (g *Game) Config() config.InvasionConfig {
	return g.cfg
}
