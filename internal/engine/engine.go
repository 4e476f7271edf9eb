// Package engine defines the contract between the synchronization layer
// and a simulation engine. The engine owns game truth (grid contents,
// pathing, scoring, word validation); callers only drive it and read it.
package engine

import "github.com/vovakirdan/golden/internal/core"

// Engine is the interface every simulation engine must implement.
type Engine interface {
	// Step advances the simulation by deltaMs milliseconds, applying the
	// clicks in order and the last hovered cell (nil when none).
	Step(deltaMs int64, clicks []core.Position, hover *core.Position) (core.Snapshot, error)

	// Score returns the current session score.
	Score() int

	// ClockMaxMs returns the full clock duration. Fixed for the session.
	ClockMaxMs() int64

	// Triplets returns the triplet sequence fixed at session start.
	Triplets() []core.Triplet

	// GoldenWord returns the golden word letters and its score.
	GoldenWord() ([]core.LetterCode, int)

	// GridSize returns the grid dimensions in cells.
	GridSize() (width, height int)

	// Letters returns the table used to resolve letter codes.
	Letters() LettersTable
}

// LettersTable resolves letter codes to display characters and scores.
type LettersTable interface {
	TryGetChar(code core.LetterCode) (string, bool)
	TryGetScore(code core.LetterCode) (int, bool)
}
