package session

import (
	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/engine"
)

type fakeLetter struct {
	char  string
	score int
}

// fakeTable is a letters table that counts lookups.
type fakeTable struct {
	letters map[core.LetterCode]fakeLetter
	lookups int
}

func newFakeTable() *fakeTable {
	return &fakeTable{letters: map[core.LetterCode]fakeLetter{
		0: {"A", 1},
		1: {"B", 7},
		4: {"E", 1},
		5: {"F", 8},
		7: {"H", 8},
	}}
}

func (t *fakeTable) TryGetChar(code core.LetterCode) (string, bool) {
	t.lookups++
	l, ok := t.letters[code]
	return l.char, ok
}

func (t *fakeTable) TryGetScore(code core.LetterCode) (int, bool) {
	t.lookups++
	l, ok := t.letters[code]
	return l.score, ok
}

type stepCall struct {
	delta    int64
	clicks   []core.Position
	hover    core.Position
	hoverSet bool
}

// fakeEngine replays scripted snapshots and records every Step call.
type fakeEngine struct {
	table    *fakeTable
	triplets []core.Triplet
	golden   []core.LetterCode
	score    int

	snaps []core.Snapshot
	err   error
	calls []stepCall

	closed bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		table:    newFakeTable(),
		triplets: []core.Triplet{{0, 1, 4}, {5, 7, 0}, {4, 4, 1}},
		golden:   []core.LetterCode{1, 0, 4},
		score:    0,
	}
}

func (e *fakeEngine) Step(deltaMs int64, clicks []core.Position, hover *core.Position) (core.Snapshot, error) {
	call := stepCall{delta: deltaMs, clicks: clicks}
	if hover != nil {
		call.hover = *hover
		call.hoverSet = true
	}
	e.calls = append(e.calls, call)

	if e.err != nil {
		return core.Snapshot{}, e.err
	}
	if len(e.snaps) == 0 {
		return core.Snapshot{ClockRemainingMs: 1000}, nil
	}
	snap := e.snaps[0]
	if len(e.snaps) > 1 {
		e.snaps = e.snaps[1:]
	}
	return snap, nil
}

func (e *fakeEngine) Score() int                           { return e.score }
func (e *fakeEngine) ClockMaxMs() int64                    { return 1000 }
func (e *fakeEngine) Triplets() []core.Triplet             { return e.triplets }
func (e *fakeEngine) GoldenWord() ([]core.LetterCode, int) { return e.golden, 116 }
func (e *fakeEngine) GridSize() (int, int)                 { return 2, 2 }
func (e *fakeEngine) Letters() engine.LettersTable         { return e.table }

func (e *fakeEngine) Close() error {
	e.closed = true
	return nil
}

var _ engine.Engine = (*fakeEngine)(nil)
