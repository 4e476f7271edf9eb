package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/golden/internal/core"
)

// Slice holds one facet of the latest snapshot. Readers call Get; only
// the Driver, during snapshot decomposition, replaces the value.
type Slice[T any] struct {
	value T
}

// Get returns the value written by the most recent update.
func (s *Slice[T]) Get() T {
	return s.value
}

// update replaces the held value. There is no merging.
func (s *Slice[T]) update(v T) {
	s.value = v
}

// Clock is the countdown before the next triplet drops.
type Clock struct {
	MaxMs       int64
	RemainingMs int64
}

// Fraction returns the remaining share of the clock in [0, 1].
func (c Clock) Fraction() float64 {
	if c.MaxMs <= 0 {
		return 0
	}
	f := float64(c.RemainingMs) / float64(c.MaxMs)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// ResolvedWord is a found word with its letters resolved for display.
type ResolvedWord struct {
	Letters []Letter
	Score   int
}

// Text joins the letter characters.
func (w ResolvedWord) Text() string {
	var sb strings.Builder
	for _, l := range w.Letters {
		sb.WriteString(l.Char)
	}
	return sb.String()
}

// Triplets is the triplet slice: an immutable sequence fixed at session
// start and a current index owned by the engine.
type Triplets struct {
	seq   []core.Triplet
	index int
}

func newTriplets(seq []core.Triplet) *Triplets {
	return &Triplets{seq: append([]core.Triplet(nil), seq...)}
}

// Index returns the current triplet index.
func (t *Triplets) Index() int {
	return t.index
}

// All returns a copy of the full triplet sequence.
func (t *Triplets) All() []core.Triplet {
	return slices.Clone(t.seq)
}

// Next returns the triplet at the current index.
func (t *Triplets) Next() (core.Triplet, error) {
	if t.index >= len(t.seq) {
		return core.Triplet{}, fmt.Errorf("%w: next at %d of %d", ErrTripletIndex, t.index, len(t.seq))
	}
	return t.seq[t.index], nil
}

// Future returns a copy of the triplets after the current index.
func (t *Triplets) Future() []core.Triplet {
	if t.index+1 >= len(t.seq) {
		return nil
	}
	return slices.Clone(t.seq[t.index+1:])
}

// Remaining returns how many triplets have not been dropped yet.
func (t *Triplets) Remaining() int {
	return len(t.seq) - t.index
}

// check validates a new index without applying it.
func (t *Triplets) check(index int) error {
	if index < 0 || index > len(t.seq) {
		return fmt.Errorf("%w: index %d exceeds %d triplets", ErrTripletIndex, index, len(t.seq))
	}
	if index < t.index {
		return fmt.Errorf("%w: index went back from %d to %d", ErrTripletIndex, t.index, index)
	}
	return nil
}

func (t *Triplets) update(index int) error {
	if err := t.check(index); err != nil {
		return err
	}
	t.index = index
	return nil
}

// State groups every slice of the session. Renderers read it; the Driver
// is its only writer.
type State struct {
	width, height int

	clock      Slice[Clock]
	score      Slice[int]
	foundWords Slice[[]ResolvedWord]
	grid       Slice[Grid]
	finished   Slice[bool]
	triplets   *Triplets
	golden     *GoldenWord
}

func newState(width, height int, triplets []core.Triplet, golden *GoldenWord) *State {
	return &State{
		width:    width,
		height:   height,
		grid:     Slice[Grid]{value: make(Grid)},
		triplets: newTriplets(triplets),
		golden:   golden,
	}
}

// Size returns the grid dimensions.
func (s *State) Size() (width, height int) {
	return s.width, s.height
}

// Clock returns the clock slice.
func (s *State) Clock() Clock {
	return s.clock.Get()
}

// Score returns the score slice.
func (s *State) Score() int {
	return s.score.Get()
}

// FoundWords returns the found words of the latest snapshot.
func (s *State) FoundWords() []ResolvedWord {
	return s.foundWords.Get()
}

// Grid returns a copy of the grid rebuilt from the latest snapshot.
func (s *State) Grid() Grid {
	return s.grid.Get().Clone()
}

// Finished reports whether the engine ended the game.
func (s *State) Finished() bool {
	return s.finished.Get()
}

// Triplets returns the triplet slice.
func (s *State) Triplets() *Triplets {
	return s.triplets
}

// Golden returns the golden word slice.
func (s *State) Golden() *GoldenWord {
	return s.golden
}
