package core

// FleetLayout returns how many alien columns and rows fit on the screen.
// One alien width of margin is kept on each side and aliens are spaced one
// body apart. Vertically, three alien heights and the ship's height are
// reserved.
func FleetLayout(screenW, screenH, alienW, alienH, shipH float64) (cols, rows int) {
	if alienW <= 0 || alienH <= 0 {
		return 0, 0
	}
	cols = int((screenW - 2*alienW) / (2 * alienW))
	rows = int((screenH - 3*alienH - shipH) / (2 * alienH))
	return max(cols, 0), max(rows, 0)
}
