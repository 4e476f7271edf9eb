// Package classic is the reference engine: a word-finding puzzle played on
// a letter grid. Letters drop in triplets on a clock; the player moves
// letters through empty cells to line up words of five to eight letters,
// which are then removed and scored.
package classic

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/engine"
	"github.com/vovakirdan/golden/internal/registry"
)

// ID is the registry identifier of the engine.
const ID = "classic"

func init() {
	registry.Register(ID, "Golden (French)", func(cfg core.RuntimeConfig) (engine.Engine, error) {
		return New(cfg)
	})
}

// Game is one running puzzle.
type Game struct {
	table *Table
	dict  *Dictionary
	rng   *rand.Rand
	board *board

	clockMaxMs  int64
	remainingMs int64

	golden      []core.LetterCode
	goldenScore int

	triplets []core.Triplet
	next     int

	score    int
	found    []core.FoundWord
	finished bool

	selected *core.Position
	target   *core.Position
}

// New creates a game on the French table and dictionary.
func New(cfg core.RuntimeConfig) (*Game, error) {
	return NewWith(cfg, French, FrenchDictionary)
}

// NewWith creates a game with a custom table and dictionary.
func NewWith(cfg core.RuntimeConfig, table *Table, dict *Dictionary) (*Game, error) {
	if cfg.ClockMs <= 0 {
		return nil, fmt.Errorf("classic: clock must be positive, got %d", cfg.ClockMs)
	}
	if cfg.GridWidth <= 0 || cfg.GridHeight <= 0 || cfg.GridWidth*cfg.GridHeight <= initialLetters {
		return nil, fmt.Errorf("classic: grid %dx%d cannot hold %d initial letters", cfg.GridWidth, cfg.GridHeight, initialLetters)
	}

	rng := newRand(cfg.Seed)
	initial, triplets := table.pool(rng)

	golden, err := dict.RandomGolden(rng)
	if err != nil {
		return nil, err
	}
	goldenScore, err := ScoreWord(table, golden, golden)
	if err != nil {
		return nil, err
	}

	b := newBoard(cfg.GridWidth, cfg.GridHeight)
	for _, code := range initial {
		b.placeRandom(code, rng)
	}

	return &Game{
		table:       table,
		dict:        dict,
		rng:         rng,
		board:       b,
		clockMaxMs:  cfg.ClockMs,
		remainingMs: cfg.ClockMs,
		golden:      golden,
		goldenScore: goldenScore,
		triplets:    triplets,
	}, nil
}

// newRand seeds ChaCha8 with the seed's little-endian bytes.
func newRand(seed int64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	return rand.New(rand.NewChaCha8(key))
}

// Step advances the game by deltaMs and applies the clicks in order.
func (g *Game) Step(deltaMs int64, clicks []core.Position, hover *core.Position) (core.Snapshot, error) {
	if g.finished {
		return g.snapshot(), nil
	}
	for _, c := range clicks {
		if !g.board.inside(c) {
			return core.Snapshot{}, fmt.Errorf("classic: click %v outside %dx%d grid", c, g.board.width, g.board.height)
		}
	}

	if deltaMs > 0 {
		g.remainingMs = max(g.remainingMs-deltaMs, 0)
	}
	if g.remainingMs == 0 {
		if err := g.dropTriplet(); err != nil {
			return core.Snapshot{}, err
		}
		if g.finished {
			return g.snapshot(), nil
		}
	}

	for _, c := range clicks {
		if err := g.click(c); err != nil {
			return core.Snapshot{}, err
		}
		if g.finished {
			return g.snapshot(), nil
		}
	}

	if g.selected == nil {
		g.target = nil
	} else if hover != nil {
		h := *hover
		g.target = &h
	}

	return g.snapshot(), nil
}

func (g *Game) click(p core.Position) error {
	if g.selected == nil {
		if !g.board.isEmpty(p) {
			sel := p
			g.selected = &sel
		}
		return nil
	}

	from := *g.selected
	if p == from {
		g.selected = nil
		return nil
	}
	if !g.board.connected(p, from) {
		return nil
	}

	g.board.swap(p, from)
	g.selected = nil
	g.target = nil
	if err := g.removeWords(); err != nil {
		return err
	}
	return g.dropTriplet()
}

// dropTriplet places the next triplet one letter at a time, removing words
// after each letter, and resets the clock. The game ends when the board
// is full or no triplet is left.
func (g *Game) dropTriplet() error {
	if g.next >= len(g.triplets) {
		g.finished = true
		return nil
	}
	t := g.triplets[g.next]
	g.next++

	for _, code := range t {
		if _, ok := g.board.placeRandom(code, g.rng); !ok {
			g.finished = true
			return nil
		}
		if err := g.removeWords(); err != nil {
			return err
		}
	}

	g.remainingMs = g.clockMaxMs
	return nil
}

func (g *Game) snapshot() core.Snapshot {
	var (
		path    []core.Position
		allowed map[core.Position]bool
	)
	if g.selected != nil {
		from := *g.selected
		allowed = g.board.allowed(from)
		path = []core.Position{from}
		if g.target != nil {
			if p, ok := g.board.path(from, *g.target); ok {
				path = p
			}
		}
	}

	onPath := make(map[core.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	positions := g.board.positions()
	cells := make([]core.Cell, 0, len(positions))
	for _, p := range positions {
		status := core.PathNone
		switch {
		case path == nil:
		case onPath[p]:
			status = core.PathPath
		case allowed[p]:
			status = core.PathWalkable
		default:
			status = core.PathBlocked
		}

		// Preview the move by showing the path ends exchanged.
		pos := p
		if len(path) > 1 {
			start, end := path[0], path[len(path)-1]
			switch p {
			case start:
				pos = end
			case end:
				pos = start
			}
		}

		cells = append(cells, core.Cell{Position: pos, Letter: g.board.at(p), Pathing: status})
	}

	return core.Snapshot{
		ClockRemainingMs: g.remainingMs,
		Cells:            cells,
		FoundWords:       append([]core.FoundWord(nil), g.found...),
		TripletIndex:     g.next,
		Finished:         g.finished,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// ClockMaxMs returns the clock duration between triplet drops.
func (g *Game) ClockMaxMs() int64 { return g.clockMaxMs }

// Triplets returns the full triplet sequence.
func (g *Game) Triplets() []core.Triplet {
	return append([]core.Triplet(nil), g.triplets...)
}

// GoldenWord returns the golden word and its score.
func (g *Game) GoldenWord() ([]core.LetterCode, int) {
	return append([]core.LetterCode(nil), g.golden...), g.goldenScore
}

// GridSize returns the grid dimensions.
func (g *Game) GridSize() (width, height int) {
	return g.board.width, g.board.height
}

// Letters returns the letters table.
func (g *Game) Letters() engine.LettersTable { return g.table }

// Selected returns the selected cell, if any.
func (g *Game) Selected() (core.Position, bool) {
	if g.selected == nil {
		return core.Position{}, false
	}
	return *g.selected, true
}

// Finished reports whether the game is over.
func (g *Game) Finished() bool { return g.finished }

var _ engine.Engine = (*Game)(nil)
