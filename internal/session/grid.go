package session

import (
	"maps"

	"github.com/vovakirdan/golden/internal/core"
)

// Grid addresses cell records by x then y.
type Grid map[int]map[int]core.Cell

// At returns the cell at p.
func (g Grid) At(p core.Position) (core.Cell, bool) {
	col, ok := g[p.X]
	if !ok {
		return core.Cell{}, false
	}
	c, ok := col[p.Y]
	return c, ok
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int {
	n := 0
	for _, col := range g {
		n += len(col)
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for x, col := range g {
		out[x] = maps.Clone(col)
	}
	return out
}

// BuildGrid rebuilds the grid from a flat list of cell records. When two
// records share a position the later one wins; the shared positions are
// returned so the caller can report them.
func BuildGrid(cells []core.Cell) (Grid, []core.Position) {
	grid := make(Grid)
	var dups []core.Position

	for _, c := range cells {
		col, ok := grid[c.Position.X]
		if !ok {
			col = make(map[int]core.Cell)
			grid[c.Position.X] = col
		}
		if _, exists := col[c.Position.Y]; exists {
			dups = append(dups, c.Position)
		}
		col[c.Position.Y] = c
	}

	return grid, dups
}
