// Package tui provides the Bubble Tea frontend for a Game of Life session.
// It maps terminal keys and mouse clicks to session commands and renders the
// board two columns per cell.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"golife/internal/core"
	"golife/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	aliveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	runStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	pauseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	focusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

const (
	aliveGlyph = "██"
	deadGlyph  = "··"
	// cellColumns is the terminal width of one cell glyph.
	cellColumns = 2
	// boardTop is the number of lines drawn above the board.
	boardTop = 2
)

type tickMsg time.Time

func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model wrapping a session.
type Model struct {
	s     *session.Session
	frame time.Duration

	width  int
	height int
}

// New returns a model driving s at tps frames per second.
func New(s *session.Session, tps int) *Model {
	return &Model{s: s, frame: core.FrameDelta(tps), width: 80, height: 24}
}

// Session returns the wrapped session.
func (m *Model) Session() *session.Session { return m.s }

// Init starts the frame clock.
func (m *Model) Init() tea.Cmd { return tickCmd(m.frame) }

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg, m.s.Phase()) {
			return m, tea.Quit
		}
		if k, ok := keyFor(msg); ok {
			m.s.HandleKey(k)
		}
		return m, nil
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if x, y, ok := m.cellAt(msg.X, msg.Y); ok {
				m.s.Apply(session.ToggleCell(x, y))
			}
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.s.Update(m.frame)
		return m, tickCmd(m.frame)
	}
	return m, nil
}

// cellAt maps a terminal position to a board cell. Only cells drawn by
// viewBoard resolve.
func (m *Model) cellAt(col, row int) (int, int, bool) {
	if m.s.Phase() != session.PhaseRunning || col < 0 || row < boardTop {
		return 0, 0, false
	}
	x, y := col/cellColumns, row-boardTop
	cols, rows := m.visible()
	if x >= cols || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

// visible returns how many board columns and rows fit in the terminal.
func (m *Model) visible() (cols, rows int) {
	g := m.s.Grid()
	cols, rows = g.Width(), g.Height()
	if m.height > boardTop+2 {
		rows = min(rows, m.height-boardTop-2)
	}
	if m.width > 0 {
		cols = min(cols, m.width/cellColumns)
	}
	return cols, rows
}

func isQuit(msg tea.KeyMsg, phase session.Phase) bool {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return true
	case tea.KeyRunes:
		return phase == session.PhaseRunning && string(msg.Runes) == "q"
	}
	return false
}

func keyFor(msg tea.KeyMsg) (session.Key, bool) {
	switch msg.Type {
	case tea.KeyLeft:
		return session.KeyLeft, true
	case tea.KeyRight:
		return session.KeyRight, true
	case tea.KeyEnter:
		return session.KeyEnter, true
	case tea.KeySpace:
		return session.KeySpace, true
	case tea.KeyBackspace:
		return session.KeyMinus, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return session.KeyNone, false
		}
		r := msg.Runes[0]
		if r >= '0' && r <= '9' {
			return session.KeyDigit(int(r - '0')), true
		}
		switch r {
		case '-':
			return session.KeyMinus, true
		case ' ':
			return session.KeySpace, true
		case 'n':
			return session.KeyStep, true
		case 'c':
			return session.KeyClear, true
		case 'r':
			return session.KeyRandomize, true
		case 'm':
			return session.KeyMenu, true
		}
	}
	return session.KeyNone, false
}

// View renders the current phase.
func (m *Model) View() string {
	if m.s.Phase() == session.PhaseMenu {
		return m.viewMenu()
	}
	return m.viewBoard()
}

func (m *Model) viewMenu() string {
	in := m.s.Menu()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Game of Life"))
	b.WriteString("\n\n")
	b.WriteString(m.field("Width", session.FieldWidth, in))
	b.WriteString("   ")
	b.WriteString(m.field("Height", session.FieldHeight, in))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("0-9 type · - delete · ←/→ switch field · enter start · esc quit"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("empty or 0 becomes 1, max %d", in.MaxDimension())))
	return b.String()
}

func (m *Model) field(label string, f session.Field, in *session.SizeInput) string {
	value := in.Digits(f)
	if in.Focus() == f {
		return fmt.Sprintf("%s: %s", label, focusStyle.Render("["+value+"_]"))
	}
	return fmt.Sprintf("%s: [%s]", label, value)
}

func (m *Model) viewBoard() string {
	g := m.s.Grid()
	stats := m.s.Stats()
	pb := m.s.Playback()

	state := pauseStyle.Render("paused")
	if pb.Running() {
		state = runStyle.Render("running")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Game of Life"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%dx%d  gen %d  pop %d  %s  %v",
		g.Width(), g.Height(), stats.Generation, stats.Population, state, pb.Interval()))
	if stats.Stable {
		b.WriteString(dimStyle.Render("  (stable)"))
	}
	b.WriteString("\n\n")

	cols, rows := m.visible()
	cells := g.Cells()
	for y := 0; y < rows; y++ {
		b.WriteString(renderRow(cells[y*g.Width() : y*g.Width()+cols]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("space run/pause · ←/→ slower/faster · click toggle · n step · r random · c clear · m menu · q quit"))
	return b.String()
}

// renderRow draws a row of cells, styling each run of equal cells once.
func renderRow(row []core.Cell) string {
	var b strings.Builder
	for start := 0; start < len(row); {
		end := start
		for end < len(row) && row[end] == row[start] {
			end++
		}
		if row[start] == core.Alive {
			b.WriteString(aliveStyle.Render(strings.Repeat(aliveGlyph, end-start)))
		} else {
			b.WriteString(deadStyle.Render(strings.Repeat(deadGlyph, end-start)))
		}
		start = end
	}
	return b.String()
}
