package session

import (
	"fmt"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/engine"
)

// Letter is a resolved display letter. It is derived on demand and never
// stored by the engine.
type Letter struct {
	Code  core.LetterCode
	Char  string
	Score int
}

// LetterService translates letter codes into display letters using the
// table bound at session start.
type LetterService struct {
	table engine.LettersTable
}

// NewLetterService creates an unbound service. Bind must be called before
// Resolve or ResolveWord.
func NewLetterService() *LetterService {
	return &LetterService{}
}

// Bind attaches the letters table.
func (s *LetterService) Bind(table engine.LettersTable) {
	s.table = table
}

// IsEmpty reports whether code is the "no letter" sentinel. It does not
// need a bound table.
func (s *LetterService) IsEmpty(code core.LetterCode) bool {
	return core.IsEmptyCell(code)
}

// Resolve returns the letter for code. The boolean is false for the empty
// sentinel, which is not an error.
func (s *LetterService) Resolve(code core.LetterCode) (Letter, bool, error) {
	if s.table == nil {
		return Letter{}, false, ErrUninitialized
	}
	if s.IsEmpty(code) {
		return Letter{}, false, nil
	}

	char, ok := s.table.TryGetChar(code)
	if !ok {
		return Letter{}, false, fmt.Errorf("%w: no character for code %d", ErrLookup, code)
	}
	score, ok := s.table.TryGetScore(code)
	if !ok {
		return Letter{}, false, fmt.Errorf("%w: no score for code %d", ErrLookup, code)
	}

	return Letter{Code: code, Char: char, Score: score}, true, nil
}

// ResolveWord resolves every code of a word. A word cannot contain an
// empty cell, so the sentinel is a lookup failure here.
func (s *LetterService) ResolveWord(codes []core.LetterCode) ([]Letter, error) {
	letters := make([]Letter, 0, len(codes))
	for i, code := range codes {
		l, ok, err := s.Resolve(code)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: empty letter at index %d of word", ErrLookup, i)
		}
		letters = append(letters, l)
	}
	return letters, nil
}
