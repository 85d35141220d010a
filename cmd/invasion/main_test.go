package main

import "testing"

func TestRootFlags(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"fps", "60"},
		{"db", "~/.invasion/scores.db"},
		{"config", ""},
		{"log", "~/.invasion/invasion.log"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := rootCmd.PersistentFlags().Lookup(tc.name)
			if f == nil {
				t.Fatalf("flag --%s not registered", tc.name)
			}
			if f.DefValue != tc.expected {
				t.Errorf("--%s default = %q, expected %q", tc.name, f.DefValue, tc.expected)
			}
		})
	}
}

// The simulation is deterministic, so there is no seed to pass in.
func TestNoSeedFlag(t *testing.T) {
	if f := rootCmd.PersistentFlags().Lookup("seed"); f != nil {
		t.Errorf("unexpected --seed flag with default %q", f.DefValue)
	}
	if f := playCmd.Flags().Lookup("seed"); f != nil {
		t.Errorf("unexpected play --seed flag with default %q", f.DefValue)
	}
}
