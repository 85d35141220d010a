package invasion

// Stats tracks score and progress. HighScore survives Reset.
type Stats struct {
	ShipsLeft int
	Score     int
	HighScore int
	Level     int
}

// Reset starts a new game with the given number of ships.
func (s *Stats) Reset(ships int) {
	s.ShipsLeft = ships
	s.Score = 0
	s.Level = 1
}

// AddPoints adds to the score and raises the high score when beaten.
func (s *Stats) AddPoints(points int) {
	if points <= 0 {
		return
	}
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// roundTens rounds n to the nearest multiple of ten, halves up.
func roundTens(n int) int {
	if n < 0 {
		return -roundTens(-n)
	}
	return (n + 5) / 10 * 10
}
