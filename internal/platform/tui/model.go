package tui

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/session"
)

const wordsTableHeight = 12

// Model is the Bubble Tea model hosting one session.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	layout   boardLayout
	tickRate int

	keys  KeyMap
	help  help.Model
	words table.Model
	shown int // found words already in the table

	cursor   core.Position
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(sess *session.Session, tickRate int) Model {
	width, height := sess.State().Size()
	layout := newBoardLayout(width, height)

	h := help.New()
	h.ShowAll = false

	return Model{
		session:  sess,
		screen:   core.NewScreen(layout.screenSize()),
		layout:   layout,
		tickRate: tickRate,
		keys:     DefaultKeyMap(),
		help:     h,
		words:    newWordsTable(),
	}
}

func newWordsTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Word", Width: 10},
			{Title: "Score", Width: 6},
		}),
		table.WithHeight(wordsTableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

// Err returns the fatal session error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey moves the keyboard cursor. The cursor acts as the hover
// position, and Select clicks the cell under it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.session.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Select):
		m.session.Input.RecordClick(m.cursor)
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy int) {
	m.cursor = core.Pos(
		core.Clamp(m.cursor.X+dx, 0, m.layout.width-1),
		core.Clamp(m.cursor.Y+dy, 0, m.layout.height-1),
	)
	m.session.Input.RecordHover(m.cursor)
}

// handleMouse records hover on motion and a click on left press. Events
// outside the board are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, ok := m.layout.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.cursor = p
		m.session.Input.RecordHover(p)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.cursor = p
			m.session.Input.RecordHover(p)
			m.session.Input.RecordClick(p)
		}
	}
	return m, nil
}

// handleTick advances the session by one frame and schedules the next
// one while the driver keeps running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	driver := m.session.Driver
	if err := driver.Advance(timeMs(msg)); err != nil {
		if errors.Is(err, session.ErrStopped) {
			return m, nil
		}
		m.err = err
		return m, tea.Quit
	}

	m.syncWords()

	if !driver.Running() {
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

// syncWords appends newly found words to the table.
func (m *Model) syncWords() {
	words := m.session.State().FoundWords()
	if len(words) == m.shown {
		return
	}

	rows := m.words.Rows()
	for _, w := range words[m.shown:] {
		rows = append(rows, table.Row{w.Text(), strconv.Itoa(w.Score)})
	}
	m.words.SetRows(rows)
	m.words.GotoBottom()
	m.shown = len(words)
}

func timeMs(msg TickMsg) int64 {
	return time.Time(msg).UnixMilli()
}

// View renders the board, the found words and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := view{
		state:   m.session.State(),
		letters: m.session.Letters,
		cursor:  m.cursor,
		layout:  m.layout,
	}
	v.draw(m.screen)

	side := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Words (%d)", m.shown)),
		m.words.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), "  ", side)
	return body + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for sess and stops the session when
// the program exits. It returns the fatal session error, if any.
func Run(sess *session.Session, tickRate int) error {
	defer sess.Stop()

	p := tea.NewProgram(
		NewModel(sess, tickRate),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
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
