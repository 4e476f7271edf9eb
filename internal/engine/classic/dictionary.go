package classic

import (
	_ "embed"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/golden/internal/core"
)

const (
	minWordLen = 5
	maxWordLen = 8
	goldenLen  = 6
)

//go:embed words_fr.txt
var embeddedFrench string

// Dictionary is a set of playable words stored as letter codes.
type Dictionary struct {
	words  map[string]struct{}
	golden [][]core.LetterCode
}

// NewDictionary parses one word per line. Blank lines, words outside the
// 5 to 8 letter range and words with letters missing from table are
// skipped.
func NewDictionary(content string, table *Table) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{})}
	for _, line := range strings.Split(content, "\n") {
		w := strings.TrimSpace(strings.ToUpper(line))
		if len(w) < minWordLen || len(w) > maxWordLen {
			continue
		}
		codes, err := table.Parse(w)
		if err != nil {
			continue
		}
		key := wordKey(codes)
		if _, dup := d.words[key]; dup {
			continue
		}
		d.words[key] = struct{}{}
		if len(codes) == goldenLen {
			d.golden = append(d.golden, codes)
		}
	}
	return d
}

// Contains reports whether codes form a known word.
func (d *Dictionary) Contains(codes []core.LetterCode) bool {
	_, ok := d.words[wordKey(codes)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// RandomGolden picks a six-letter word.
func (d *Dictionary) RandomGolden(rng *rand.Rand) ([]core.LetterCode, error) {
	if len(d.golden) == 0 {
		return nil, errors.New("classic: dictionary has no six-letter word")
	}
	w := d.golden[rng.IntN(len(d.golden))]
	return append([]core.LetterCode(nil), w...), nil
}

func wordKey(codes []core.LetterCode) string {
	b := make([]byte, len(codes))
	for i, c := range codes {
		b[i] = byte(c)
	}
	return string(b)
}

// FrenchDictionary is built from the embedded French word list.
var FrenchDictionary = NewDictionary(embeddedFrench, French)
