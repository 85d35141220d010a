package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/session"
)

// holdMS is how long a steering key stays down without a key-repeat.
// Terminals wait about half a second before repeating, so this must be longer.
const holdMS = 600

// Minimum play area in cells.
const (
	minCols = 20
	minRows = 10
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	session *session.Session
	screen  *core.Screen
	painter *Painter
	theme   Theme
	keys    *KeyMapper
	help    help.Model
	holds   *holdTracker
	queue   *core.InputQueue
	runtime core.RuntimeConfig

	quitting bool
	err      error
}

// NewModel creates a Bubble Tea model for the session. width and height are
// the terminal size in cells; one row is kept for the help footer.
func NewModel(sess *session.Session, runtime core.RuntimeConfig, width, height int) Model {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	game := sess.Game()
	logicalW, logicalH := game.Screen()
	screen := core.NewScreen(max(width, minCols), max(height-1, minRows))

	h := help.New()
	h.Width = width

	return Model{
		session: sess,
		screen:  screen,
		painter: NewPainter(screen, logicalW, logicalH),
		theme:   NewTheme(game.Config().Colors),
		keys:    NewKeyMapper(),
		help:    h,
		holds:   newHoldTracker(runtime.TicksFor(holdMS)),
		queue:   &core.InputQueue{},
		runtime: runtime,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(max(msg.Width, minCols), max(msg.Height-1, minRows))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the game events for a key press.
func (m Model) handleKey(msg tea.KeyMsg) {
	k := m.keys.MapKey(msg)
	switch k {
	case core.KeyNone:
		return
	case core.KeyLeft, core.KeyRight:
		for _, ev := range m.holds.Press(k) {
			m.queue.Push(ev)
		}
	default:
		m.queue.Push(core.KeyDown(k))
	}
}

// handleMouse queues a click for left button presses.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	x, y := m.painter.ToLogical(msg.X, msg.Y)
	m.queue.Push(core.Click(x, y))
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	events := m.queue.Drain()
	events = append(events, m.holds.Tick()...)

	res := m.session.Step(events)
	if res.Quit {
		m.err = m.session.Close()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Game().Render(m.painter)
	return m.theme.Render(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Err returns the error from saving the high score on quit, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the session and blocks until the
// player quits. The session is closed on return.
func Run(sess *session.Session, runtime core.RuntimeConfig, width, height int) error {
	defer sess.Close()

	model := NewModel(sess, runtime, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the menu buttons
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
