package core

// Key represents a semantic game key, abstracted from physical key presses.
// Frontends translate their own key codes into these.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // Left arrow, A - steer left
	KeyRight     // Right arrow, D - steer right
	KeyFire      // Space - fire a bullet
	KeyStart     // P - start a new game
	KeyQuit      // Q, Ctrl+C - persist and exit
	KeyEasy      // E - pick the Easy button when it is shown
	KeyHard      // H - pick the Hard button when it is shown
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	case KeyStart:
		return "Start"
	case KeyQuit:
		return "Quit"
	case KeyEasy:
		return "Easy"
	case KeyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// EventKind classifies an input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventClick // Mouse button press at X, Y (logical coordinates)
	EventClose // Window close request
)

// Event is one discrete input event.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y float64
}

// KeyDown builds a key press event.
func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUp builds a key release event.
func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// Click builds a mouse click event at logical coordinates.
func Click(x, y float64) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

// InputQueue collects the events that arrive between two simulation ticks.
type InputQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *InputQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *InputQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
