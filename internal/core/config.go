package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to convert wall-clock settings into ticks.
type RuntimeConfig struct {
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
	}
}

// TicksFor converts a duration in milliseconds to a whole number of ticks.
func (c RuntimeConfig) TicksFor(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return ms * rate / 1000
}
