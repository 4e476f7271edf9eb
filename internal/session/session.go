// Package session is the synchronization layer between a simulation
// engine and a renderer. It batches user input between frames, drives the
// engine once per frame and decomposes each snapshot into state slices
// that the renderer reads independently.
//
// Every service is built once per session by New and handed explicitly to
// the components that need it; nothing is looked up globally.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/golden/internal/engine"
)

// Session bundles the services of one game session.
type Session struct {
	Input   *InputBuffer
	Letters *LetterService
	Golden  *GoldenWord
	Driver  *Driver
}

// New builds the services for one session around eng.
func New(eng engine.Engine, logger *log.Logger) *Session {
	letters := NewLetterService()
	letters.Bind(eng.Letters())

	codes, score := eng.GoldenWord()
	golden := NewGoldenWord(codes, score)

	input := NewInputBuffer()
	driver := NewDriver(eng, input, letters, golden, logger)

	if logger != nil {
		w, h := eng.GridSize()
		logger.Info("session started",
			"width", w,
			"height", h,
			"clock_ms", eng.ClockMaxMs(),
			"triplets", len(eng.Triplets()),
		)
	}

	return &Session{
		Input:   input,
		Letters: letters,
		Golden:  golden,
		Driver:  driver,
	}
}

// State is shorthand for s.Driver.State().
func (s *Session) State() *State {
	return s.Driver.State()
}

// Stop tears the session down.
func (s *Session) Stop() {
	s.Driver.Stop()
}
