package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Ship is the player's ship. Position is the top-left corner in logical pixels.
type Ship struct {
	X, Y float64
	W, H float64

	MovingLeft  bool
	MovingRight bool
}

func newShip(w, h float64) *Ship {
	return &Ship{W: w, H: h}
}

// Box returns the ship's bounding box.
func (s *Ship) Box() core.RectF {
	return core.NewRectF(s.X, s.Y, s.W, s.H)
}

// Center places the ship at the bottom center of the screen.
func (s *Ship) Center(screenW, screenH float64) {
	s.X = (screenW - s.W) / 2
	s.Y = screenH - s.H
}

// Update moves the ship by speed according to its movement flags,
// keeping it inside [0, screenW].
func (s *Ship) Update(speed, screenW float64) {
	if s.MovingRight && s.X+s.W < screenW {
		s.X += speed
	}
	if s.MovingLeft && s.X > 0 {
		s.X -= speed
	}
	s.X = clampF(s.X, 0, screenW-s.W)
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	X, Y float64
	W, H float64
}

// newBullet spawns a bullet with its top edge at the ship's top, horizontally centered.
func newBullet(ship *Ship, w, h float64) *Bullet {
	return &Bullet{
		X: ship.Box().CenterX() - w/2,
		Y: ship.Y,
		W: w,
		H: h,
	}
}

// Box returns the bullet's bounding box.
func (b *Bullet) Box() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Update moves the bullet up by speed.
func (b *Bullet) Update(speed float64) {
	b.Y -= speed
}

// Gone reports whether the bullet has left the top of the play area.
func (b *Bullet) Gone() bool {
	return b.Y+b.H <= 0
}

// Alien is one member of the fleet.
type Alien struct {
	X, Y float64
	W, H float64
}

// Box returns the alien's bounding box.
func (a *Alien) Box() core.RectF {
	return core.NewRectF(a.X, a.Y, a.W, a.H)
}

func clampF(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
