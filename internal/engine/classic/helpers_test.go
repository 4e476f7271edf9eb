package classic

import (
	"testing"

	"github.com/vovakirdan/golden/internal/core"
)

// testGame builds a game from rows of letters, '.' being an empty cell.
func testGame(t *testing.T, triplets []core.Triplet, rows ...string) *Game {
	t.Helper()

	golden, err := French.Parse("ARGENT")
	if err != nil {
		t.Fatalf("parse golden: %v", err)
	}

	g := &Game{
		table:       French,
		dict:        FrenchDictionary,
		rng:         newRand(1),
		board:       newBoard(len(rows[0]), len(rows)),
		clockMaxMs:  1000,
		remainingMs: 1000,
		golden:      golden,
		goldenScore: 134,
		triplets:    triplets,
	}
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				continue
			}
			g.board.set(core.Pos(x, y), code(t, r))
		}
	}
	return g
}

func code(t *testing.T, r rune) core.LetterCode {
	t.Helper()
	c, ok := French.Code(r)
	if !ok {
		t.Fatalf("unknown letter %q", r)
	}
	return c
}

func triplet(t *testing.T, s string) core.Triplet {
	t.Helper()
	var tr core.Triplet
	for i, r := range s {
		tr[i] = code(t, r)
	}
	return tr
}

func letterCount(g *Game) int {
	n := 0
	for _, c := range g.board.cells {
		if !core.IsEmptyCell(c) {
			n++
		}
	}
	return n
}

// cellAt finds the snapshot cell reported at p.
func cellAt(t *testing.T, snap core.Snapshot, p core.Position) core.Cell {
	t.Helper()
	for _, c := range snap.Cells {
		if c.Position == p {
			return c
		}
	}
	t.Fatalf("no cell at %v", p)
	return core.Cell{}
}
