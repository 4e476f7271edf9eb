package classic

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/engine"
)

const (
	initialLetters = 8
	tripletCount   = 64
	poolSize       = initialLetters + tripletCount*3
)

// LetterConfig describes one letter of a table: its character, how many
// copies go into the pool and its score.
type LetterConfig struct {
	Char        rune
	Repartition int
	Score       int
}

// Table maps letter codes to characters and scores. A code is the index
// of the letter in the table.
type Table struct {
	letters []LetterConfig
	byChar  map[rune]core.LetterCode
}

// NewTable builds a table. The repartitions must add up to the pool size.
func NewTable(letters []LetterConfig) (*Table, error) {
	if len(letters) >= int(core.EmptyLetter) {
		return nil, fmt.Errorf("classic: %d letters exceed the code range", len(letters))
	}

	sum := 0
	byChar := make(map[rune]core.LetterCode, len(letters))
	for i, lc := range letters {
		sum += lc.Repartition
		byChar[lc.Char] = core.LetterCode(i)
	}
	if sum != poolSize {
		return nil, fmt.Errorf("classic: letters table holds %d letters, expected %d", sum, poolSize)
	}

	return &Table{letters: letters, byChar: byChar}, nil
}

// TryGetChar returns the character of code.
func (t *Table) TryGetChar(code core.LetterCode) (string, bool) {
	if int(code) >= len(t.letters) {
		return "", false
	}
	return string(t.letters[code].Char), true
}

// TryGetScore returns the score of code.
func (t *Table) TryGetScore(code core.LetterCode) (int, bool) {
	if int(code) >= len(t.letters) {
		return 0, false
	}
	return t.letters[code].Score, true
}

// Code returns the code of a character.
func (t *Table) Code(r rune) (core.LetterCode, bool) {
	c, ok := t.byChar[r]
	return c, ok
}

// Len returns the number of distinct letters.
func (t *Table) Len() int {
	return len(t.letters)
}

// Parse converts a word into letter codes.
func (t *Table) Parse(word string) ([]core.LetterCode, error) {
	codes := make([]core.LetterCode, 0, len(word))
	for _, r := range word {
		c, ok := t.Code(r)
		if !ok {
			return nil, fmt.Errorf("classic: unknown letter %q", r)
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// pool shuffles every letter of the table and splits the result into the
// initial grid letters and the triplet sequence.
func (t *Table) pool(rng *rand.Rand) (initial []core.LetterCode, triplets []core.Triplet) {
	all := make([]core.LetterCode, 0, poolSize)
	for i, lc := range t.letters {
		for n := 0; n < lc.Repartition; n++ {
			all = append(all, core.LetterCode(i))
		}
	}
	rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	initial = all[:initialLetters]
	rest := all[initialLetters:]
	triplets = make([]core.Triplet, 0, tripletCount)
	for i := 0; i+3 <= len(rest) && len(triplets) < tripletCount; i += 3 {
		triplets = append(triplets, core.Triplet{rest[i], rest[i+1], rest[i+2]})
	}
	return initial, triplets
}

var _ engine.LettersTable = (*Table)(nil)

// French is the French letters table.
var French = mustTable([]LetterConfig{
	{'A', 23, 1},
	{'B', 4, 7},
	{'C', 7, 5},
	{'D', 5, 6},
	{'E', 30, 1},
	{'F', 3, 8},
	{'G', 4, 7},
	{'H', 3, 8},
	{'I', 16, 2},
	{'J', 1, 9},
	{'K', 1, 9},
	{'L', 9, 4},
	{'M', 5, 6},
	{'N', 10, 3},
	{'O', 11, 3},
	{'P', 5, 6},
	{'Q', 1, 9},
	{'R', 15, 2},
	{'S', 17, 2},
	{'T', 13, 3},
	{'U', 9, 4},
	{'V', 3, 8},
	{'W', 1, 9},
	{'X', 1, 9},
	{'Y', 1, 9},
	{'Z', 2, 9},
})

func mustTable(letters []LetterConfig) *Table {
	t, err := NewTable(letters)
	if err != nil {
		panic(err)
	}
	return t
}
