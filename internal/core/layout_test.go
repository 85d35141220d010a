package core

import "testing"

func TestFleetLayout(t *testing.T) {
	tests := []struct {
		name                                    string
		screenW, screenH, alienW, alienH, shipH float64
		cols, rows                              int
	}{
		{"default window", 1200, 800, 60, 58, 48, 9, 4},
		{"fullscreen", 1920, 1080, 60, 58, 48, 15, 7},
		{"too narrow", 100, 800, 60, 58, 48, 0, 4},
		{"too short", 1200, 200, 60, 58, 48, 9, 0},
		{"zero alien", 1200, 800, 0, 58, 48, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := FleetLayout(tc.screenW, tc.screenH, tc.alienW, tc.alienH, tc.shipH)
			if cols != tc.cols || rows != tc.rows {
				t.Errorf("FleetLayout() = (%d, %d), expected (%d, %d)", cols, rows, tc.cols, tc.rows)
			}
		})
	}
}
