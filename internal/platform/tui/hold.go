package tui

import "github.com/vovakirdan/alien-invasion/internal/core"

// holdTracker turns the press-only key stream of a terminal into key
// down/up pairs for the steering keys.
//
// A press starts (or refreshes) a hold. Auto-repeat keeps refreshing it while
// the key is down; once no repeat arrives for timeout ticks the hold is
// released. Pressing the opposite direction releases the current one at once.
type holdTracker struct {
	timeout int
	held    core.Key
	idle    int // Ticks since the last press of held
}

func newHoldTracker(timeout int) *holdTracker {
	return &holdTracker{timeout: max(timeout, 1)}
}

// Press records a steering key press and returns the events it causes.
// A repeat of the held key produces no events.
func (h *holdTracker) Press(k core.Key) []core.Event {
	if k == h.held {
		h.idle = 0
		return nil
	}

	var out []core.Event
	if h.held != core.KeyNone {
		out = append(out, core.KeyUp(h.held))
	}
	h.held = k
	h.idle = 0
	return append(out, core.KeyDown(k))
}

// Tick ages the current hold and returns a key-up once it times out.
func (h *holdTracker) Tick() []core.Event {
	if h.held == core.KeyNone {
		return nil
	}
	h.idle++
	if h.idle < h.timeout {
		return nil
	}
	k := h.held
	h.held = core.KeyNone
	h.idle = 0
	return []core.Event{core.KeyUp(k)}
}

// Held returns the steering key currently considered down.
func (h *holdTracker) Held() core.Key {
	return h.held
}
