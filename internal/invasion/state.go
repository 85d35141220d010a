package invasion

import "github.com/vovakirdan/alien-invasion/internal/config"

// Phase is the top-level game state. Exactly one phase holds at any time.
type Phase int

const (
	PhasePreGame  Phase = iota // No fleet, waiting for Play
	PhaseActive                // Ship and fleet simulated
	PhaseGameOver              // Ships exhausted, waiting for a new game
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhasePreGame:
		return "pregame"
	case PhaseActive:
		return "active"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// State is the externally visible summary of the game.
type State struct {
	Phase      Phase
	Score      int
	HighScore  int
	Level      int
	ShipsLeft  int
	Difficulty config.DifficultyPreset
	Paused     bool // Frozen after losing a ship
}

// TransitionKind names a state change that happened during a Step.
type TransitionKind int

const (
	TransitionStart TransitionKind = iota
	TransitionLevelUp
	TransitionShipHit
	TransitionGameOver
)

// String returns the transition name used in logs.
func (k TransitionKind) String() string {
	switch k {
	case TransitionStart:
		return "start"
	case TransitionLevelUp:
		return "level_up"
	case TransitionShipHit:
		return "ship_hit"
	case TransitionGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Transition records a state change together with the stats right after it.
type Transition struct {
	Kind       TransitionKind
	Score      int
	Level      int
	ShipsLeft  int
	Difficulty config.DifficultyPreset
}

// StepResult contains the outcome of a single simulation tick.
type StepResult struct {
	State       State
	Transitions []Transition
	Quit        bool // Quit key or window close; the caller persists and exits
}

// startGame resets stats and dynamic settings and enters the Active phase
// with a fresh fleet.
func (g *Game) startGame(preset config.DifficultyPreset, res *StepResult) {
	if preset != "" {
		if err := g.settings.ApplyPreset(preset); err != nil {
			return
		}
	} else {
		g.settings.Reset()
	}

	g.stats.Reset(g.cfg.Ship.Limit)
	g.phase = PhaseActive
	g.clickedPlay = true
	g.pauseTicks = 0

	g.bullets = nil
	g.fleet.Direction = 1
	g.spawnFleet()
	g.ship.Center(g.cfg.Screen.Width, g.cfg.Screen.Height)

	g.record(res, TransitionStart)
}

// levelUp clears bullets, spawns a faster fleet and advances the level.
func (g *Game) levelUp(res *StepResult) {
	g.bullets = nil
	g.spawnFleet()
	g.settings.IncreaseSpeed()
	g.stats.Level++

	g.record(res, TransitionLevelUp)
}

// shipHit handles an alien reaching the ship or the bottom of the screen.
// The strike that uses up the last ship ends the game.
func (g *Game) shipHit(res *StepResult) {
	g.stats.ShipsLeft = max(g.stats.ShipsLeft-1, 0)
	g.bullets = nil
	g.fleet.Clear()

	if g.stats.ShipsLeft == 0 {
		g.phase = PhaseGameOver
		g.clickedPlay = false
		g.pauseTicks = 0
		g.record(res, TransitionGameOver)
		return
	}

	g.spawnFleet()
	g.ship.Center(g.cfg.Screen.Width, g.cfg.Screen.Height)
	g.pauseTicks = g.runtime.TicksFor(g.cfg.Gameplay.HitPauseMS)

	g.record(res, TransitionShipHit)
}

func (g *Game) spawnFleet() {
	g.fleet.Create(
		g.cfg.Screen.Width, g.cfg.Screen.Height,
		g.cfg.Alien.Width, g.cfg.Alien.Height,
		g.cfg.Ship.Height,
	)
}

func (g *Game) record(res *StepResult, kind TransitionKind) {
	if res == nil {
		return
	}
	res.Transitions = append(res.Transitions, Transition{
		Kind:       kind,
		Score:      g.stats.Score,
		Level:      g.stats.Level,
		ShipsLeft:  g.stats.ShipsLeft,
		Difficulty: g.settings.Preset(),
	})
}
