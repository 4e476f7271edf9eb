package session

import "github.com/vovakirdan/golden/internal/core"

// GoldenWord answers membership questions about the session's golden
// word. It never changes after construction.
type GoldenWord struct {
	codes []core.LetterCode
	set   map[core.LetterCode]struct{}
	score int
}

// NewGoldenWord builds the membership set from the golden word letters.
func NewGoldenWord(codes []core.LetterCode, score int) *GoldenWord {
	g := &GoldenWord{
		codes: append([]core.LetterCode(nil), codes...),
		set:   make(map[core.LetterCode]struct{}, len(codes)),
		score: score,
	}
	for _, c := range codes {
		g.set[c] = struct{}{}
	}
	return g
}

// Contains reports whether code is one of the golden word letters.
func (g *GoldenWord) Contains(code core.LetterCode) bool {
	_, ok := g.set[code]
	return ok
}

// Codes returns a copy of the golden word letters in order.
func (g *GoldenWord) Codes() []core.LetterCode {
	return append([]core.LetterCode(nil), g.codes...)
}

// Score returns the score awarded for the golden word.
func (g *GoldenWord) Score() int {
	return g.score
}
