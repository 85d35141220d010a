package invasion

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Positions are stored in thousandths of a pixel to keep primitive types only.
type Snapshot struct {
	Tick        uint64
	Phase       int
	ClickedPlay bool
	PauseTicks  int

	ShipX int
	ShipY int

	Score     int
	HighScore int
	Level     int
	ShipsLeft int

	Direction  int
	AlienData  []int // X, Y per alien
	BulletData []int // X, Y per bullet
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	alienData := make([]int, 0, len(g.fleet.Aliens)*2)
	for _, a := range g.fleet.Aliens {
		alienData = append(alienData, milli(a.X), milli(a.Y))
	}
	bulletData := make([]int, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bulletData = append(bulletData, milli(b.X), milli(b.Y))
	}

	return Snapshot{
		Tick:        g.tick,
		Phase:       int(g.phase),
		ClickedPlay: g.clickedPlay,
		PauseTicks:  g.pauseTicks,
		ShipX:       milli(g.ship.X),
		ShipY:       milli(g.ship.Y),
		Score:       g.stats.Score,
		HighScore:   g.stats.HighScore,
		Level:       g.stats.Level,
		ShipsLeft:   g.stats.ShipsLeft,
		Direction:   int(g.fleet.Direction),
		AlienData:   alienData,
		BulletData:  bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PauseTicks) //#nosec G115 -- hash computation
	if snap.ClickedPlay {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.ShipX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Direction) //#nosec G115 -- hash computation

	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}
