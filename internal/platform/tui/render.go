package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/session"
)

// inkStyles maps screen inks to lipgloss styles.
var inkStyles = map[core.Ink]lipgloss.Style{
	core.InkPlain:     lipgloss.NewStyle(),
	core.InkTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.InkText:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.InkMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.InkLetter:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.InkGolden:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.InkPath:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	core.InkWalkable:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.InkCursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.InkClockHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.InkClockMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.InkClockLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.InkError:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// RenderScreen styles a Screen for display, one escape sequence per run
// of same-ink cells.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		s.Runs(y, func(text string, ink core.Ink) {
			style, ok := inkStyles[ink]
			if !ok {
				style = inkStyles[core.InkPlain]
			}
			sb.WriteString(style.Render(text))
		})
	}
	return sb.String()
}

// Board layout on the screen.
const (
	cellWidth  = 3
	headerRows = 3
	clockWidth = 20

	wordsPanelWidth = 26
)

// boardLayout places grid cells on the screen.
type boardLayout struct {
	width, height int
	box           core.Rect
}

func newBoardLayout(width, height int) boardLayout {
	return boardLayout{
		width:  width,
		height: height,
		box:    core.NewRect(1, headerRows, width*cellWidth+2, height+2),
	}
}

// screenSize returns the screen dimensions needed for the board and the
// panels under it.
func (l boardLayout) screenSize() (int, int) {
	w := max(l.box.Right()+2, 36)
	return w, l.box.Bottom() + 5
}

// MinSize returns the terminal size needed to play a grid of the given
// dimensions, words panel included.
func MinSize(width, height int) (int, int) {
	w, h := newBoardLayout(width, height).screenSize()
	return w + wordsPanelWidth, max(h, wordsTableHeight+4) + 1
}

// origin returns the screen position of a grid cell's letter.
func (l boardLayout) origin(p core.Position) (int, int) {
	return l.box.X + 1 + p.X*cellWidth + 1, l.box.Y + 1 + p.Y
}

// cellAt maps a screen position to a grid cell.
func (l boardLayout) cellAt(x, y int) (core.Position, bool) {
	inner := l.box.Inset(1)
	if !inner.Contains(x, y) {
		return core.Position{}, false
	}
	return core.Pos((x-inner.X)/cellWidth, y-inner.Y), true
}

// view is what the renderer needs from a session.
type view struct {
	state   *session.State
	letters *session.LetterService
	cursor  core.Position
	layout  boardLayout
}

func (v view) draw(s *core.Screen) {
	s.Clear()
	st := v.state

	s.Centered(0, "G O L D E N", core.InkTitle)
	s.Text(1, 1, fmt.Sprintf("Score %d", st.Score()), core.InkText)
	v.drawClock(s, 2)

	s.Box(v.layout.box, core.InkMuted)
	v.drawGrid(s)

	y := v.layout.box.Bottom() + 1
	v.drawTriplets(s, y)
	v.drawGolden(s, y+1)

	if st.Finished() {
		s.Centered(y+3, fmt.Sprintf("GAME OVER - final score %d", st.Score()), core.InkError)
	}
}

func (v view) drawClock(s *core.Screen, y int) {
	clock := v.state.Clock()
	filled := int(clock.Fraction()*clockWidth + 0.5)

	x := 1
	s.Put(x, y, '[', core.InkPlain)
	s.HLine(x+1, y, filled, '#', core.ClockInk(clock.Fraction()))
	s.HLine(x+1+filled, y, clockWidth-filled, '.', core.InkMuted)
	s.Put(x+1+clockWidth, y, ']', core.InkPlain)
	s.Text(x+3+clockWidth, y, fmt.Sprintf("%4.1fs", float64(clock.RemainingMs)/1000), core.InkPlain)
}

func (v view) drawGrid(s *core.Screen) {
	grid := v.state.Grid()
	for y := 0; y < v.layout.height; y++ {
		for x := 0; x < v.layout.width; x++ {
			p := core.Pos(x, y)
			sx, sy := v.layout.origin(p)

			cell, ok := grid.At(p)
			if !ok {
				s.Put(sx, sy, ' ', core.InkPlain)
				continue
			}
			r, ink := v.glyph(cell)
			s.Put(sx, sy, r, ink)

			if p == v.cursor {
				s.Put(sx-1, sy, '[', core.InkCursor)
				s.Put(sx+1, sy, ']', core.InkCursor)
			}
		}
	}
}

// glyph picks the rune and ink of a cell from its letter and pathing.
func (v view) glyph(cell core.Cell) (rune, core.Ink) {
	letter, ok, err := v.letters.Resolve(cell.Letter)
	if err != nil {
		return '?', core.InkError
	}

	if !ok {
		switch cell.Pathing {
		case core.PathPath:
			return '*', core.InkPath
		case core.PathWalkable:
			return '.', core.InkWalkable
		default:
			return '.', core.InkMuted
		}
	}

	r := []rune(letter.Char)[0]
	switch {
	case cell.Pathing == core.PathPath:
		return r, core.InkPath
	case cell.Pathing == core.PathBlocked:
		return r, core.InkMuted
	case v.state.Golden().Contains(cell.Letter):
		return r, core.InkGolden
	default:
		return r, core.InkLetter
	}
}

func (v view) drawTriplets(s *core.Screen, y int) {
	tr := v.state.Triplets()
	next, err := tr.Next()
	if err != nil {
		s.Text(1, y, "Next: none", core.InkMuted)
		return
	}

	s.Text(1, y, "Next: "+v.tripletText(next), core.InkText)
	future := tr.Future()
	if len(future) > 0 {
		s.Text(16, y, fmt.Sprintf("then %s  (%d left)", v.tripletText(future[0]), tr.Remaining()), core.InkMuted)
	}
}

func (v view) tripletText(t core.Triplet) string {
	letters, err := v.letters.ResolveWord(t[:])
	if err != nil {
		return "???"
	}
	var sb strings.Builder
	for _, l := range letters {
		sb.WriteString(l.Char)
	}
	return sb.String()
}

func (v view) drawGolden(s *core.Screen, y int) {
	golden := v.state.Golden()
	letters, err := v.letters.ResolveWord(golden.Codes())
	if err != nil {
		return
	}
	word := session.ResolvedWord{Letters: letters}
	s.Text(1, y, fmt.Sprintf("Golden: %s (%d)", word.Text(), golden.Score()), core.InkGolden)
}
