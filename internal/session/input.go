package session

import (
	"sync"

	"github.com/vovakirdan/golden/internal/core"
)

// InputBuffer collects user interaction between frames. Clicks queue in
// arrival order and are drained once per frame; the hover position is
// overwritten by each hover event and survives drains.
//
// Recording may happen from any goroutine; a click recorded before a
// DrainClicks call is part of that drain, a later one is not.
type InputBuffer struct {
	mu       sync.Mutex
	clicks   []core.Position
	hover    core.Position
	hoverSet bool
}

// NewInputBuffer creates an empty input buffer.
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{}
}

// RecordClick appends a click to the queue. The queue is unbounded.
func (b *InputBuffer) RecordClick(p core.Position) {
	b.mu.Lock()
	b.clicks = append(b.clicks, p)
	b.mu.Unlock()
}

// RecordHover replaces the hover position.
func (b *InputBuffer) RecordHover(p core.Position) {
	b.mu.Lock()
	b.hover = p
	b.hoverSet = true
	b.mu.Unlock()
}

// DrainClicks returns the queued clicks in order and empties the queue.
// Returns an empty, non-nil slice when nothing was recorded.
func (b *InputBuffer) DrainClicks() []core.Position {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.clicks) == 0 {
		return []core.Position{}
	}
	clicks := b.clicks
	b.clicks = nil
	return clicks
}

// PeekHover returns the last hover position without clearing it. The
// boolean is false if no hover was ever recorded.
func (b *InputBuffer) PeekHover() (core.Position, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hover, b.hoverSet
}

// Pending returns the number of clicks waiting for the next drain.
func (b *InputBuffer) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clicks)
}
