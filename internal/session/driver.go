package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/engine"
)

// Driver advances a session by exactly one engine step per frame and fans
// each snapshot out to the State slices.
//
// A Driver is not safe for concurrent use: Advance, Run and Stop must be
// called from the goroutine that owns the frame loop.
type Driver struct {
	engine  engine.Engine
	input   *InputBuffer
	letters *LetterService
	state   *State
	logger  *log.Logger

	clockMaxMs  int64
	started     bool
	lastFrameMs int64
	frames      uint64
	resolved    []ResolvedWord

	stopped bool
	err     error
}

// NewDriver wires a driver to its collaborators and seeds the slices with
// the session-level values the engine exposes outside Step.
func NewDriver(eng engine.Engine, input *InputBuffer, letters *LetterService, golden *GoldenWord, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := eng.GridSize()
	d := &Driver{
		engine:     eng,
		input:      input,
		letters:    letters,
		state:      newState(w, h, eng.Triplets(), golden),
		logger:     logger,
		clockMaxMs: eng.ClockMaxMs(),
	}
	d.state.clock.update(Clock{MaxMs: d.clockMaxMs, RemainingMs: d.clockMaxMs})
	d.state.score.update(eng.Score())
	return d
}

// State returns the slices written by this driver.
func (d *Driver) State() *State {
	return d.state
}

// LastFrameMs returns the timestamp of the most recent frame.
func (d *Driver) LastFrameMs() int64 {
	return d.lastFrameMs
}

// Frames returns how many frames were advanced successfully.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Running reports whether the host should schedule another frame.
func (d *Driver) Running() bool {
	return !d.stopped && d.err == nil
}

// Err returns the fatal error that terminated the session, if any.
func (d *Driver) Err() error {
	return d.err
}

// Advance runs one frame at wall-clock time nowMs. The first call reports
// a zero delta; later calls report the time since the previous frame.
// Any error is fatal to the session: the driver stops scheduling and
// returns the same error on every later call.
func (d *Driver) Advance(nowMs int64) error {
	if d.err != nil {
		return d.err
	}
	if d.stopped {
		return ErrStopped
	}

	var delta int64
	if d.started {
		delta = nowMs - d.lastFrameMs
	}
	d.started = true
	d.lastFrameMs = nowMs

	if delta < 0 {
		d.logger.Debug("frame clock went backwards", "delta_ms", delta)
		delta = 0
	}

	clicks := d.input.DrainClicks()
	var hover *core.Position
	if p, ok := d.input.PeekHover(); ok {
		hover = &p
	}

	snap, err := d.engine.Step(delta, clicks, hover)
	if err != nil {
		return d.fail(fmt.Errorf("%w: %w", ErrEngineStep, err))
	}

	if err := d.decompose(snap); err != nil {
		return d.fail(err)
	}

	d.frames++
	return nil
}

// decompose validates the snapshot and then writes every slice. A rejected
// snapshot leaves all slices untouched.
func (d *Driver) decompose(snap core.Snapshot) error {
	if err := d.state.triplets.check(snap.TripletIndex); err != nil {
		return err
	}

	words, err := d.resolveFoundWords(snap.FoundWords)
	if err != nil {
		return err
	}

	grid, dups := BuildGrid(snap.Cells)
	for _, p := range dups {
		d.logger.Warn("duplicate cell in snapshot", "x", p.X, "y", p.Y, "frame", d.frames)
	}

	d.state.clock.update(Clock{MaxMs: d.clockMaxMs, RemainingMs: snap.ClockRemainingMs})
	d.state.score.update(d.engine.Score())
	d.state.triplets.index = snap.TripletIndex
	d.state.foundWords.update(words)
	d.state.grid.update(grid)

	if snap.Finished && !d.state.finished.Get() {
		d.logger.Info("game finished", "score", d.state.Score(), "words", len(words))
	}
	d.state.finished.update(snap.Finished)

	d.resolved = words
	return nil
}

// resolveFoundWords resolves the engine's word history. The history only
// grows, so entries already resolved are reused.
func (d *Driver) resolveFoundWords(found []core.FoundWord) ([]ResolvedWord, error) {
	start := len(d.resolved)
	if len(found) < start {
		start = 0
	}

	words := make([]ResolvedWord, 0, len(found))
	words = append(words, d.resolved[:start]...)
	for _, fw := range found[start:] {
		letters, err := d.letters.ResolveWord(fw.Letters)
		if err != nil {
			return nil, fmt.Errorf("found word %d: %w", len(words), err)
		}
		words = append(words, ResolvedWord{Letters: letters, Score: fw.Score})
	}
	return words, nil
}

func (d *Driver) fail(err error) error {
	d.err = err
	d.logger.Error("session terminated", "error", err, "frame", d.frames)
	return err
}

// Stop cancels future frames and releases the engine and input buffer.
// Safe to call more than once.
func (d *Driver) Stop() {
	if d.stopped {
		return
	}
	d.stopped = true

	if c, ok := d.engine.(io.Closer); ok {
		if err := c.Close(); err != nil {
			d.logger.Warn("engine close failed", "error", err)
		}
	}
	d.engine = nil
	d.input = nil
	d.logger.Info("session stopped", "frames", d.frames, "score", d.state.Score())
}

// Run owns frame scheduling for hosts without their own frame callback.
// It advances once per received frame until ctx is done, frames is closed,
// or a fatal error occurs.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			d.Stop()
			return ctx.Err()
		case t, ok := <-frames:
			if !ok {
				d.Stop()
				return nil
			}
			if err := d.Advance(t.UnixMilli()); err != nil {
				return err
			}
			if !d.Running() {
				return nil
			}
		}
	}
}
