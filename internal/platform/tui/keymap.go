package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Start key.Binding
	Easy  key.Binding
	Hard  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Easy, k.Hard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Start, k.Easy, k.Hard, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Easy: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "easy"),
		),
		Hard: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help footer.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game key.
// Unbound keys map to core.KeyNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyQuit
	case key.Matches(msg, km.keys.Left):
		return core.KeyLeft
	case key.Matches(msg, km.keys.Right):
		return core.KeyRight
	case key.Matches(msg, km.keys.Fire):
		return core.KeyFire
	case key.Matches(msg, km.keys.Start):
		return core.KeyStart
	case key.Matches(msg, km.keys.Easy):
		return core.KeyEasy
	case key.Matches(msg, km.keys.Hard):
		return core.KeyHard
	}
	return core.KeyNone
}
