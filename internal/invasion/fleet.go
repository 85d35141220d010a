package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Fleet is the grid of aliens active in the current level.
// All aliens share one horizontal direction: +1 right, -1 left.
type Fleet struct {
	Aliens    []*Alien
	Direction float64
}

// Create replaces the fleet with a fresh grid.
// Alien (col, row) sits at x = w + 2w*col, y = h + 2h*row.
func (f *Fleet) Create(screenW, screenH, alienW, alienH, shipH float64) {
	cols, rows := core.FleetLayout(screenW, screenH, alienW, alienH, shipH)

	f.Aliens = make([]*Alien, 0, cols*rows)
	for row := range rows {
		for col := range cols {
			f.Aliens = append(f.Aliens, &Alien{
				X: alienW + 2*alienW*float64(col),
				Y: alienH + 2*alienH*float64(row),
				W: alienW,
				H: alienH,
			})
		}
	}
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.Aliens)
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	f.Aliens = nil
}

// CheckEdges flips the direction and drops every alien by drop if any alien
// touches the left or right boundary. It reports whether the fleet turned.
// The first offender is enough; the fleet turns at most once per call.
func (f *Fleet) CheckEdges(screenW, drop float64) bool {
	for _, a := range f.Aliens {
		if a.X+a.W >= screenW || a.X <= 0 {
			for _, b := range f.Aliens {
				b.Y += drop
			}
			f.Direction = -f.Direction
			return true
		}
	}
	return false
}

// Update moves every alien horizontally by speed in the fleet direction.
func (f *Fleet) Update(speed float64) {
	dx := speed * f.Direction
	for _, a := range f.Aliens {
		a.X += dx
	}
}

// CheckBottom reports whether any alien's bottom edge reached screenH.
func (f *Fleet) CheckBottom(screenH float64) bool {
	for _, a := range f.Aliens {
		if a.Y+a.H >= screenH {
			return true
		}
	}
	return false
}

// HitTest returns the first alien overlapping box, or nil.
func (f *Fleet) HitTest(box core.RectF) *Alien {
	for _, a := range f.Aliens {
		if a.Box().Intersects(box) {
			return a
		}
	}
	return nil
}
