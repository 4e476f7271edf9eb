package session

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/golden/internal/core"
)

func newTestDriver(eng *fakeEngine) (*Driver, *InputBuffer) {
	letters := NewLetterService()
	letters.Bind(eng.Letters())
	codes, score := eng.GoldenWord()
	input := NewInputBuffer()
	return NewDriver(eng, input, letters, NewGoldenWord(codes, score), nil), input
}

func TestAdvanceDeltas(t *testing.T) {
	eng := newFakeEngine()
	d, _ := newTestDriver(eng)

	if err := d.Advance(1000); err != nil {
		t.Fatalf("first Advance() failed: %v", err)
	}
	if err := d.Advance(1016); err != nil {
		t.Fatalf("second Advance() failed: %v", err)
	}

	if len(eng.calls) != 2 {
		t.Fatalf("engine stepped %d times, expected 2", len(eng.calls))
	}
	if eng.calls[0].delta != 0 {
		t.Errorf("first delta = %d, expected 0", eng.calls[0].delta)
	}
	if eng.calls[1].delta != 16 {
		t.Errorf("second delta = %d, expected 16", eng.calls[1].delta)
	}
	if d.LastFrameMs() != 1016 {
		t.Errorf("LastFrameMs() = %d, expected 1016", d.LastFrameMs())
	}
	if d.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", d.Frames())
	}
}

func TestAdvanceNegativeDelta(t *testing.T) {
	eng := newFakeEngine()
	d, _ := newTestDriver(eng)

	d.Advance(2000)
	if err := d.Advance(1990); err != nil {
		t.Fatalf("Advance() with earlier timestamp failed: %v", err)
	}
	if eng.calls[1].delta != 0 {
		t.Errorf("delta = %d, expected clamp to 0", eng.calls[1].delta)
	}
	if d.LastFrameMs() != 1990 {
		t.Errorf("LastFrameMs() = %d, expected 1990", d.LastFrameMs())
	}
}

func TestAdvanceDrainsClicksKeepsHover(t *testing.T) {
	eng := newFakeEngine()
	d, input := newTestDriver(eng)

	input.RecordClick(core.Pos(0, 0))
	input.RecordClick(core.Pos(1, 1))
	input.RecordHover(core.Pos(1, 0))
	d.Advance(0)
	d.Advance(16)

	first, second := eng.calls[0], eng.calls[1]
	if diff := cmp.Diff([]core.Position{core.Pos(0, 0), core.Pos(1, 1)}, first.clicks); diff != "" {
		t.Errorf("first frame clicks mismatch (-want +got):\n%s", diff)
	}
	if len(second.clicks) != 0 {
		t.Errorf("second frame clicks = %v, expected none", second.clicks)
	}
	for i, c := range eng.calls {
		if !c.hoverSet || c.hover != core.Pos(1, 0) {
			t.Errorf("frame %d hover = %v (set=%v), expected (1,0)", i, c.hover, c.hoverSet)
		}
	}
}

func TestAdvanceNoHover(t *testing.T) {
	eng := newFakeEngine()
	d, _ := newTestDriver(eng)
	d.Advance(0)

	if eng.calls[0].hoverSet {
		t.Error("engine received a hover although none was recorded")
	}
}

func TestAdvanceDecomposesSnapshot(t *testing.T) {
	eng := newFakeEngine()
	eng.score = 42
	eng.snaps = []core.Snapshot{{
		ClockRemainingMs: 600,
		Cells: []core.Cell{
			{Position: core.Pos(0, 0), Letter: 1},
			{Position: core.Pos(0, 1), Letter: core.EmptyLetter, Pathing: core.PathWalkable},
			{Position: core.Pos(1, 0), Letter: 4},
			{Position: core.Pos(1, 1), Letter: core.EmptyLetter},
		},
		FoundWords:   []core.FoundWord{{Letters: []core.LetterCode{5, 0, 7}, Score: 34}},
		TripletIndex: 1,
	}}
	d, _ := newTestDriver(eng)

	if err := d.Advance(0); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}

	st := d.State()
	if got := st.Clock(); got != (Clock{MaxMs: 1000, RemainingMs: 600}) {
		t.Errorf("Clock() = %+v", got)
	}
	if st.Score() != 42 {
		t.Errorf("Score() = %d, expected 42", st.Score())
	}
	if st.Triplets().Index() != 1 {
		t.Errorf("triplet index = %d, expected 1", st.Triplets().Index())
	}
	if st.Grid().Len() != 4 {
		t.Errorf("grid has %d cells, expected 4", st.Grid().Len())
	}
	if c, _ := st.Grid().At(core.Pos(0, 1)); c.Pathing != core.PathWalkable {
		t.Errorf("cell (0,1) pathing = %v, expected Walkable", c.Pathing)
	}

	words := st.FoundWords()
	if len(words) != 1 || words[0].Text() != "FAH" || words[0].Score != 34 {
		t.Errorf("FoundWords() = %+v, expected FAH/34", words)
	}
	if st.Finished() {
		t.Error("Finished() should be false")
	}
}

func TestGridReadersCannotRewrite(t *testing.T) {
	eng := newFakeEngine()
	eng.snaps = []core.Snapshot{{
		ClockRemainingMs: 1000,
		Cells: []core.Cell{
			{Position: core.Pos(0, 0), Letter: 1},
			{Position: core.Pos(1, 1), Letter: core.EmptyLetter},
		},
	}}
	d, _ := newTestDriver(eng)
	if err := d.Advance(0); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}

	st := d.State()
	g := st.Grid()
	g[5] = map[int]core.Cell{5: {Position: core.Pos(7, 7)}}
	g[0][0] = core.Cell{Position: core.Pos(3, 3), Letter: 4}

	if _, ok := st.Grid().At(core.Pos(5, 5)); ok {
		t.Error("cell written by a reader is visible in the next Grid()")
	}
	if c, _ := st.Grid().At(core.Pos(0, 0)); c.Position != core.Pos(0, 0) || c.Letter != 1 {
		t.Errorf("cell (0,0) = %+v after a reader write, expected letter 1 at (0,0)", c)
	}

	// Each frame rebuilds the grid from scratch.
	if err := d.Advance(16); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if got := st.Grid().Len(); got != 2 {
		t.Errorf("grid has %d cells after the next frame, expected 2", got)
	}
}

func TestInitialState(t *testing.T) {
	eng := newFakeEngine()
	eng.score = 5
	d, _ := newTestDriver(eng)
	st := d.State()

	if st.Clock() != (Clock{MaxMs: 1000, RemainingMs: 1000}) {
		t.Errorf("initial Clock() = %+v", st.Clock())
	}
	if st.Score() != 5 {
		t.Errorf("initial Score() = %d, expected 5", st.Score())
	}
	if w, h := st.Size(); w != 2 || h != 2 {
		t.Errorf("Size() = %dx%d, expected 2x2", w, h)
	}
	if st.Grid() == nil || st.Grid().Len() != 0 {
		t.Errorf("initial grid = %v, expected empty", st.Grid())
	}
	if !st.Golden().Contains(1) {
		t.Error("golden slice should contain code 1")
	}
}

func TestFoundWordsResolvedOnce(t *testing.T) {
	eng := newFakeEngine()
	w1 := core.FoundWord{Letters: []core.LetterCode{0, 1}, Score: 8}
	w2 := core.FoundWord{Letters: []core.LetterCode{4}, Score: 1}
	eng.snaps = []core.Snapshot{
		{FoundWords: []core.FoundWord{w1}},
		{FoundWords: []core.FoundWord{w1}},
		{FoundWords: []core.FoundWord{w1, w2}},
	}
	d, _ := newTestDriver(eng)

	d.Advance(0)
	after1 := eng.table.lookups
	d.Advance(16)
	if eng.table.lookups != after1 {
		t.Errorf("unchanged history caused %d extra lookups", eng.table.lookups-after1)
	}
	d.Advance(32)

	var texts []string
	for _, w := range d.State().FoundWords() {
		texts = append(texts, w.Text())
	}
	if diff := cmp.Diff([]string{"AB", "E"}, texts); diff != "" {
		t.Errorf("found words mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineFailureIsTerminal(t *testing.T) {
	eng := newFakeEngine()
	d, _ := newTestDriver(eng)
	d.Advance(0)

	boom := errors.New("boom")
	eng.err = boom
	err := d.Advance(16)
	if !errors.Is(err, ErrEngineStep) || !errors.Is(err, boom) {
		t.Fatalf("Advance() error = %v, expected ErrEngineStep wrapping boom", err)
	}
	if d.Running() {
		t.Error("Running() should be false after a fatal error")
	}

	calls := len(eng.calls)
	if again := d.Advance(32); !errors.Is(again, ErrEngineStep) {
		t.Errorf("later Advance() error = %v, expected the stored error", again)
	}
	if len(eng.calls) != calls {
		t.Error("engine stepped after the session terminated")
	}
	if !errors.Is(d.Err(), ErrEngineStep) {
		t.Errorf("Err() = %v", d.Err())
	}
}

func TestBadTripletIndexLeavesSlices(t *testing.T) {
	eng := newFakeEngine()
	eng.snaps = []core.Snapshot{
		{ClockRemainingMs: 900, TripletIndex: 1},
		{ClockRemainingMs: 100, TripletIndex: 9, Cells: []core.Cell{{Position: core.Pos(0, 0), Letter: 1}}},
	}
	d, _ := newTestDriver(eng)

	if err := d.Advance(0); err != nil {
		t.Fatalf("first Advance() failed: %v", err)
	}
	err := d.Advance(16)
	if !errors.Is(err, ErrTripletIndex) {
		t.Fatalf("Advance() error = %v, expected ErrTripletIndex", err)
	}

	st := d.State()
	if st.Clock().RemainingMs != 900 {
		t.Errorf("clock = %d after rejected snapshot, expected 900", st.Clock().RemainingMs)
	}
	if st.Triplets().Index() != 1 {
		t.Errorf("triplet index = %d, expected 1", st.Triplets().Index())
	}
	if st.Grid().Len() != 0 {
		t.Error("grid changed after rejected snapshot")
	}
	if d.Running() {
		t.Error("Running() should be false")
	}
}

func TestUnknownFoundWordLetter(t *testing.T) {
	eng := newFakeEngine()
	eng.snaps = []core.Snapshot{{FoundWords: []core.FoundWord{{Letters: []core.LetterCode{0, 99}}}}}
	d, _ := newTestDriver(eng)

	if err := d.Advance(0); !errors.Is(err, ErrLookup) {
		t.Errorf("Advance() error = %v, expected ErrLookup", err)
	}
}

func TestDuplicateCellLogged(t *testing.T) {
	eng := newFakeEngine()
	eng.snaps = []core.Snapshot{{Cells: []core.Cell{
		{Position: core.Pos(1, 1), Letter: 0},
		{Position: core.Pos(1, 1), Letter: 4},
	}}}

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	letters := NewLetterService()
	letters.Bind(eng.Letters())
	d := NewDriver(eng, NewInputBuffer(), letters, NewGoldenWord(nil, 0), logger)

	if err := d.Advance(0); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "duplicate cell") {
		t.Errorf("expected duplicate cell warning, log was:\n%s", buf.String())
	}
	if c, _ := d.State().Grid().At(core.Pos(1, 1)); c.Letter != 4 {
		t.Errorf("duplicate cell letter = %d, expected 4", c.Letter)
	}
}

func TestFinishedLatches(t *testing.T) {
	eng := newFakeEngine()
	eng.snaps = []core.Snapshot{{TripletIndex: 3, Finished: true}}
	d, _ := newTestDriver(eng)

	if err := d.Advance(0); err != nil {
		t.Fatalf("Advance() failed: %v", err)
	}
	if !d.State().Finished() {
		t.Error("Finished() should be true")
	}
	if !d.Running() {
		t.Error("a finished game keeps the frame loop running")
	}
}

func TestStop(t *testing.T) {
	eng := newFakeEngine()
	d, _ := newTestDriver(eng)
	d.Advance(0)

	d.Stop()
	d.Stop()

	if !eng.closed {
		t.Error("Stop() should close the engine")
	}
	if d.Running() {
		t.Error("Running() should be false after Stop()")
	}
	if err := d.Advance(16); !errors.Is(err, ErrStopped) {
		t.Errorf("Advance() after Stop() error = %v, expected ErrStopped", err)
	}
	if len(eng.calls) != 1 {
		t.Errorf("engine stepped %d times, expected 1", len(eng.calls))
	}
}

func TestRunUntilChannelClosed(t *testing.T) {
	eng := newFakeEngine()
	d, _ := newTestDriver(eng)

	frames := make(chan time.Time, 3)
	base := time.UnixMilli(5000)
	frames <- base
	frames <- base.Add(16 * time.Millisecond)
	frames <- base.Add(33 * time.Millisecond)
	close(frames)

	if err := d.Run(context.Background(), frames); err != nil {
		t.Fatalf("Run() error = %v, expected nil", err)
	}
	if d.Frames() != 3 {
		t.Errorf("Frames() = %d, expected 3", d.Frames())
	}
	if eng.calls[2].delta != 17 {
		t.Errorf("third delta = %d, expected 17", eng.calls[2].delta)
	}
	if !eng.closed {
		t.Error("Run() should stop the driver when frames close")
	}
}

func TestRunCancelled(t *testing.T) {
	eng := newFakeEngine()
	d, _ := newTestDriver(eng)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, make(chan time.Time))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if d.Running() {
		t.Error("Running() should be false after cancellation")
	}
}

func TestRunStopsOnFatalError(t *testing.T) {
	eng := newFakeEngine()
	eng.err = errors.New("boom")
	d, _ := newTestDriver(eng)

	frames := make(chan time.Time, 2)
	frames <- time.UnixMilli(0)
	frames <- time.UnixMilli(16)

	if err := d.Run(context.Background(), frames); !errors.Is(err, ErrEngineStep) {
		t.Errorf("Run() error = %v, expected ErrEngineStep", err)
	}
	if len(eng.calls) != 1 {
		t.Errorf("engine stepped %d times, expected 1", len(eng.calls))
	}
}

func TestSessionNew(t *testing.T) {
	eng := newFakeEngine()
	var buf bytes.Buffer
	s := New(eng, log.New(&buf))

	if _, _, err := s.Letters.Resolve(0); err != nil {
		t.Errorf("letters should be bound: %v", err)
	}
	if s.Golden.Score() != 116 {
		t.Errorf("golden score = %d, expected 116", s.Golden.Score())
	}
	if !strings.Contains(buf.String(), "session started") {
		t.Errorf("expected session start log, got:\n%s", buf.String())
	}

	s.Input.RecordClick(core.Pos(1, 0))
	s.Driver.Advance(0)
	if len(eng.calls[0].clicks) != 1 {
		t.Error("session input should feed the driver")
	}

	s.Stop()
	if !eng.closed {
		t.Error("Session.Stop() should close the engine")
	}
}
