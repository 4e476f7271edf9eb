package core

// LetterCode is the engine's integer encoding of a letter.
type LetterCode uint8

// EmptyLetter is the sentinel code of a cell that holds no letter.
const EmptyLetter LetterCode = 255

// IsEmptyCell reports whether code is the "no letter" sentinel.
func IsEmptyCell(code LetterCode) bool {
	return code == EmptyLetter
}

// Triplet is a group of three letters dropped together onto the grid.
type Triplet [3]LetterCode
