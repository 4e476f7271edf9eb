package classic

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/golden/internal/core"
)

// multipliers by word length.
var multipliers = map[int]int{5: 1, 6: 2, 7: 3, 8: 4}

const goldenBonus = 100

// ScoreWord scores a word: the sum of its letter scores times the length
// multiplier, plus a bonus when it is the golden word.
func ScoreWord(table *Table, codes, golden []core.LetterCode) (int, error) {
	mult, ok := multipliers[len(codes)]
	if !ok {
		return 0, fmt.Errorf("classic: no multiplier for word length %d", len(codes))
	}

	sum := 0
	for _, c := range codes {
		s, ok := table.TryGetScore(c)
		if !ok {
			return 0, fmt.Errorf("classic: unknown letter code %d", c)
		}
		sum += s
	}

	score := sum * mult
	if slices.Equal(codes, golden) {
		score += goldenBonus
	}
	return score, nil
}

// match is a word read on the board.
type match struct {
	letters   []core.LetterCode
	positions []core.Position
	score     int
}

// findMatches reads words from every letter in every direction. Only the
// longest dictionary word per start and direction is kept. Matches are
// ordered by score, highest first, and a match sharing a cell with a
// better one is dropped.
func (g *Game) findMatches() ([]match, error) {
	var all []match
	for _, start := range g.board.positions() {
		if g.board.isEmpty(start) {
			continue
		}
		for _, dir := range directions {
			m, ok, err := g.longestFrom(start, dir)
			if err != nil {
				return nil, err
			}
			if ok {
				all = append(all, m)
			}
		}
	}

	slices.SortStableFunc(all, func(a, b match) int {
		return b.score - a.score
	})

	used := make(map[core.Position]bool)
	var kept []match
	for _, m := range all {
		if slices.ContainsFunc(m.positions, func(p core.Position) bool { return used[p] }) {
			continue
		}
		for _, p := range m.positions {
			used[p] = true
		}
		kept = append(kept, m)
	}
	return kept, nil
}

func (g *Game) longestFrom(start, dir core.Position) (match, bool, error) {
	positions := []core.Position{start}
	letters := []core.LetterCode{g.board.at(start)}
	for p := step(start, dir); len(positions) < maxWordLen && g.board.inside(p) && !g.board.isEmpty(p); p = step(p, dir) {
		positions = append(positions, p)
		letters = append(letters, g.board.at(p))
	}

	for n := len(letters); n >= minWordLen; n-- {
		if !g.dict.Contains(letters[:n]) {
			continue
		}
		score, err := ScoreWord(g.table, letters[:n], g.golden)
		if err != nil {
			return match{}, false, err
		}
		return match{
			letters:   slices.Clone(letters[:n]),
			positions: slices.Clone(positions[:n]),
			score:     score,
		}, true, nil
	}
	return match{}, false, nil
}

// removeWords clears every matched word from the board, records it and
// adds its score. A selected letter that was part of a word is
// unselected.
func (g *Game) removeWords() error {
	matches, err := g.findMatches()
	if err != nil {
		return err
	}

	for _, m := range matches {
		for _, p := range m.positions {
			g.board.set(p, core.EmptyLetter)
			if g.selected != nil && *g.selected == p {
				g.selected = nil
			}
		}
		g.found = append(g.found, core.FoundWord{Letters: m.letters, Score: m.score})
		g.score += m.score
	}
	return nil
}
