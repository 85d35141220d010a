package invasion

// resolveHits removes every bullet/alien pair that overlaps.
//
// Pass one marks: each bullet takes the first live alien it overlaps, in
// slice order, so a bullet never destroys more than one alien. Pass two
// compacts both slices in place. The returned count is both the number of
// aliens destroyed and the number of bullets consumed.
func resolveHits(bullets []*Bullet, aliens []*Alien) ([]*Bullet, []*Alien, int) {
	if len(bullets) == 0 || len(aliens) == 0 {
		return bullets, aliens, 0
	}

	deadBullet := make([]bool, len(bullets))
	deadAlien := make([]bool, len(aliens))
	destroyed := 0

	for bi, b := range bullets {
		box := b.Box()
		for ai, a := range aliens {
			if deadAlien[ai] {
				continue
			}
			if box.Intersects(a.Box()) {
				deadBullet[bi] = true
				deadAlien[ai] = true
				destroyed++
				break
			}
		}
	}

	if destroyed == 0 {
		return bullets, aliens, 0
	}
	return compact(bullets, deadBullet), compact(aliens, deadAlien), destroyed
}

// compact drops the items whose dead flag is set, preserving order.
func compact[T any](items []T, dead []bool) []T {
	out := items[:0]
	for i, it := range items {
		if !dead[i] {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

// pruneBullets drops bullets that left the top of the play area.
func pruneBullets(bullets []*Bullet) []*Bullet {
	out := bullets[:0]
	for _, b := range bullets {
		if !b.Gone() {
			out = append(out, b)
		}
	}
	clear(bullets[len(out):])
	return out
}
