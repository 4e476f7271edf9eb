package classic

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/golden/internal/core"
)

func turns(path []core.Position) int {
	n := 0
	for i := 2; i < len(path); i++ {
		horizontal1 := path[i-1].Y == path[i-2].Y
		horizontal2 := path[i].Y == path[i-1].Y
		if horizontal1 != horizontal2 {
			n++
		}
	}
	return n
}

func TestAllowed(t *testing.T) {
	g := testGame(t, nil,
		"A.Z",
		"ZZ.",
		"...",
	)

	got := g.board.allowed(core.Pos(0, 0))
	want := map[core.Position]bool{
		core.Pos(0, 0): true,
		core.Pos(1, 0): true,
		core.Pos(2, 0): true,
		core.Pos(0, 1): true,
		core.Pos(1, 1): true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("allowed() mismatch (-want +got):\n%s", diff)
	}
}

func TestConnected(t *testing.T) {
	g := testGame(t, nil,
		"AZ..",
		"Z...",
		"....",
	)

	tests := []struct {
		name     string
		from, to core.Position
		want     bool
	}{
		{"same cell", core.Pos(0, 0), core.Pos(0, 0), true},
		{"adjacent letter", core.Pos(0, 0), core.Pos(1, 0), true},
		{"walled in", core.Pos(0, 0), core.Pos(3, 2), false},
		{"through empties", core.Pos(1, 0), core.Pos(3, 2), true},
		{"letter to letter", core.Pos(1, 0), core.Pos(0, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.board.connected(tt.from, tt.to); got != tt.want {
				t.Errorf("connected(%v, %v) = %v, expected %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestPathFewestStepsThenTurns(t *testing.T) {
	g := testGame(t, nil,
		"A...",
		"....",
		"....",
		"....",
	)

	path, ok := g.board.path(core.Pos(0, 0), core.Pos(3, 3))
	if !ok {
		t.Fatal("path() should find a path")
	}
	if len(path) != 7 {
		t.Errorf("path has %d cells, expected 7: %v", len(path), path)
	}
	if path[0] != core.Pos(0, 0) || path[len(path)-1] != core.Pos(3, 3) {
		t.Errorf("path endpoints = %v, %v", path[0], path[len(path)-1])
	}
	if n := turns(path); n != 1 {
		t.Errorf("path has %d turns, expected 1: %v", n, path)
	}
}

func TestPathAroundLetters(t *testing.T) {
	g := testGame(t, nil,
		"A.Z.",
		"..Z.",
		"....",
	)

	path, ok := g.board.path(core.Pos(0, 0), core.Pos(3, 0))
	if !ok {
		t.Fatal("path() should go around the wall")
	}
	for _, p := range path[1 : len(path)-1] {
		if !g.board.isEmpty(p) {
			t.Errorf("path crosses letter at %v", p)
		}
	}
	if len(path) != 8 {
		t.Errorf("path has %d cells, expected 8: %v", len(path), path)
	}
}

func TestPathToLetter(t *testing.T) {
	g := testGame(t, nil,
		"A..B",
	)
	path, ok := g.board.path(core.Pos(0, 0), core.Pos(3, 0))
	if !ok {
		t.Fatal("path() should reach a letter target")
	}
	want := []core.Position{core.Pos(0, 0), core.Pos(1, 0), core.Pos(2, 0), core.Pos(3, 0)}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestPathUnreachable(t *testing.T) {
	g := testGame(t, nil,
		"AZ.",
		"Z..",
	)

	if _, ok := g.board.path(core.Pos(0, 0), core.Pos(2, 1)); ok {
		t.Error("path() should fail when walled in")
	}
	if _, ok := g.board.path(core.Pos(0, 0), core.Pos(9, 9)); ok {
		t.Error("path() should fail outside the grid")
	}
	if p, ok := g.board.path(core.Pos(0, 0), core.Pos(0, 0)); !ok || len(p) != 1 {
		t.Errorf("path() to itself = %v, %v", p, ok)
	}
}

func TestPlaceRandomFull(t *testing.T) {
	g := testGame(t, nil, "ZZ", "Z.")

	p, ok := g.board.placeRandom(code(t, 'Q'), g.rng)
	if !ok || p != core.Pos(1, 1) {
		t.Fatalf("placeRandom() = %v, %v; expected the last empty cell", p, ok)
	}
	if _, ok := g.board.placeRandom(code(t, 'Q'), g.rng); ok {
		t.Error("placeRandom() should fail on a full board")
	}
}
