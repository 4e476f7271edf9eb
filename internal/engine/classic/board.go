package classic

import (
	"container/heap"
	"math/rand/v2"

	"github.com/vovakirdan/golden/internal/core"
)

// Directions in scan order: north, east, south, west.
var directions = [4]core.Position{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// board is the letter grid, stored column-major.
type board struct {
	width, height int
	cells         []core.LetterCode
}

func newBoard(width, height int) *board {
	cells := make([]core.LetterCode, width*height)
	for i := range cells {
		cells[i] = core.EmptyLetter
	}
	return &board{width: width, height: height, cells: cells}
}

func (b *board) inside(p core.Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.width && p.Y < b.height
}

func (b *board) index(p core.Position) int {
	return p.X*b.height + p.Y
}

func (b *board) at(p core.Position) core.LetterCode {
	return b.cells[b.index(p)]
}

func (b *board) set(p core.Position, code core.LetterCode) {
	b.cells[b.index(p)] = code
}

func (b *board) isEmpty(p core.Position) bool {
	return core.IsEmptyCell(b.at(p))
}

// positions lists every position in column-major order.
func (b *board) positions() []core.Position {
	out := make([]core.Position, 0, len(b.cells))
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			out = append(out, core.Pos(x, y))
		}
	}
	return out
}

func (b *board) emptyPositions() []core.Position {
	var out []core.Position
	for _, p := range b.positions() {
		if b.isEmpty(p) {
			out = append(out, p)
		}
	}
	return out
}

// placeRandom puts code in a random empty cell. It reports false when the
// board is full.
func (b *board) placeRandom(code core.LetterCode, rng *rand.Rand) (core.Position, bool) {
	empty := b.emptyPositions()
	if len(empty) == 0 {
		return core.Position{}, false
	}
	p := empty[rng.IntN(len(empty))]
	b.set(p, code)
	return p, true
}

func step(p, dir core.Position) core.Position {
	return core.Pos(p.X+dir.X, p.Y+dir.Y)
}

// allowed returns the cells a letter at from can move to: from itself,
// every empty cell connected to it through empty cells, and the letters
// bordering that region.
func (b *board) allowed(from core.Position) map[core.Position]bool {
	seen := map[core.Position]bool{from: true}
	stack := []core.Position{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range directions {
			next := step(cur, d)
			if !b.inside(next) || seen[next] {
				continue
			}
			seen[next] = true
			if b.isEmpty(next) {
				stack = append(stack, next)
			}
		}
	}
	return seen
}

// connected reports whether to can be reached from from by walking
// through empty cells. The endpoints may hold letters.
func (b *board) connected(from, to core.Position) bool {
	if from == to {
		return true
	}
	return b.allowed(from)[to]
}

// swap exchanges two cells.
func (b *board) swap(p, q core.Position) {
	i, j := b.index(p), b.index(q)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// path returns the most direct path from from to to: the fewest steps,
// then the fewest turns. Intermediate cells must be empty. Reports false
// when to cannot be reached.
func (b *board) path(from, to core.Position) ([]core.Position, bool) {
	if !b.inside(from) || !b.inside(to) {
		return nil, false
	}
	if from == to {
		return []core.Position{from}, true
	}

	type key struct {
		pos core.Position
		dir int
	}
	best := make(map[key]cost)
	prev := make(map[key]key)

	pq := &pathQueue{}
	for d, dir := range directions {
		next := step(from, dir)
		if !b.inside(next) {
			continue
		}
		k := key{next, d}
		best[k] = cost{steps: 1}
		prev[k] = key{from, -1}
		heap.Push(pq, pathItem{pos: next, dir: d, cost: cost{steps: 1}})
	}

	for pq.Len() > 0 {
		it := heap.Pop(pq).(pathItem)
		k := key{it.pos, it.dir}
		if c, ok := best[k]; ok && c.less(it.cost) {
			continue
		}
		if it.pos == to {
			var out []core.Position
			for cur := k; cur.dir != -1; cur = prev[cur] {
				out = append(out, cur.pos)
			}
			out = append(out, from)
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
			return out, true
		}
		if !b.isEmpty(it.pos) {
			continue
		}
		for d, dir := range directions {
			next := step(it.pos, dir)
			if !b.inside(next) || next == from {
				continue
			}
			c := cost{steps: it.cost.steps + 1, turns: it.cost.turns}
			if d != it.dir {
				c.turns++
			}
			nk := key{next, d}
			if old, ok := best[nk]; ok && !c.less(old) {
				continue
			}
			best[nk] = c
			prev[nk] = k
			heap.Push(pq, pathItem{pos: next, dir: d, cost: c})
		}
	}
	return nil, false
}

type cost struct {
	steps, turns int
}

func (c cost) less(o cost) bool {
	if c.steps != o.steps {
		return c.steps < o.steps
	}
	return c.turns < o.turns
}

type pathItem struct {
	pos  core.Position
	dir  int
	cost cost
	seq  int
}

// pathQueue orders items by cost, then by insertion.
type pathQueue struct {
	items []pathItem
	next  int
}

func (q *pathQueue) Len() int { return len(q.items) }

func (q *pathQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.cost != b.cost {
		return a.cost.less(b.cost)
	}
	return a.seq < b.seq
}

func (q *pathQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *pathQueue) Push(x any) {
	it := x.(pathItem)
	it.seq = q.next
	q.next++
	q.items = append(q.items, it)
}

func (q *pathQueue) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it
}
