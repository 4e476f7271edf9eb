package core

// PathingStatus describes how a cell relates to the current move preview.
type PathingStatus uint8

const (
	PathNone     PathingStatus = iota // No letter is selected
	PathPath                          // Cell lies on the previewed path
	PathWalkable                      // Selected letter can reach this cell
	PathBlocked                       // Selected letter cannot reach this cell
)

// String returns a human-readable name for the status.
func (s PathingStatus) String() string {
	switch s {
	case PathNone:
		return "None"
	case PathPath:
		return "Path"
	case PathWalkable:
		return "Walkable"
	case PathBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// Cell is one grid record produced by the engine.
type Cell struct {
	Position Position
	Letter   LetterCode
	Pathing  PathingStatus
}

// FoundWord is a word the engine removed from the grid, with its score.
type FoundWord struct {
	Letters []LetterCode
	Score   int
}

// Snapshot is the complete state handed back by the engine after one step.
type Snapshot struct {
	ClockRemainingMs int64
	Cells            []Cell
	FoundWords       []FoundWord
	TripletIndex     int
	Finished         bool
}
