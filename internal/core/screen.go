package core

import (
	"strings"
	"unicode/utf8"
)

// ScreenCell is one character of the screen buffer with its ink.
type ScreenCell struct {
	Rune rune
	Ink  Ink
}

var blank = ScreenCell{Rune: ' '}

// Screen is a fixed-size character buffer the board is drawn into before
// the host styles it. Writes outside the buffer are dropped.
type Screen struct {
	width, height int
	cells         []ScreenCell // row-major
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.cells = make([]ScreenCell, s.width*s.height)
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Put writes one rune.
func (s *Screen) Put(x, y int, r rune, ink Ink) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = ScreenCell{Rune: r, Ink: ink}
	}
}

// Cell returns the cell at (x, y), blank when outside the buffer.
func (s *Screen) Cell(x, y int) ScreenCell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// Text writes text left to right from (x, y), clipped at the edges.
func (s *Screen) Text(x, y int, text string, ink Ink) {
	for _, r := range text {
		s.Put(x, y, r, ink)
		x++
	}
}

// Centered writes text centered on row y.
func (s *Screen) Centered(y int, text string, ink Ink) {
	s.Text((s.width-utf8.RuneCountInString(text))/2, y, text, ink)
}

// Box outlines r with box-drawing characters.
func (s *Screen) Box(r Rect, ink Ink) {
	right, bottom := r.Right()-1, r.Bottom()-1

	s.HLine(r.X+1, r.Y, r.W-2, '─', ink)
	s.HLine(r.X+1, bottom, r.W-2, '─', ink)
	for y := r.Y + 1; y < bottom; y++ {
		s.Put(r.X, y, '│', ink)
		s.Put(right, y, '│', ink)
	}

	s.Put(r.X, r.Y, '┌', ink)
	s.Put(right, r.Y, '┐', ink)
	s.Put(r.X, bottom, '└', ink)
	s.Put(right, bottom, '┘', ink)
}

// HLine repeats r over n cells from (x, y).
func (s *Screen) HLine(x, y, n int, r rune, ink Ink) {
	for i := range n {
		s.Put(x+i, y, r, ink)
	}
}

// Runs calls fn for each maximal run of same-ink cells on row y.
func (s *Screen) Runs(y int, fn func(text string, ink Ink)) {
	if y < 0 || y >= s.height || s.width == 0 {
		return
	}
	row := s.cells[y*s.width : (y+1)*s.width]

	var sb strings.Builder
	ink := row[0].Ink
	for _, c := range row {
		if c.Ink != ink {
			fn(sb.String(), ink)
			sb.Reset()
			ink = c.Ink
		}
		sb.WriteRune(c.Rune)
	}
	fn(sb.String(), ink)
}

// String returns the unstyled buffer, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.height)
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.width : (y+1)*s.width] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
