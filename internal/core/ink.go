package core

// Ink is the display role of a screen cell. The host maps each role to
// its own style, so the board drawing stays terminal-agnostic.
type Ink uint8

const (
	InkPlain Ink = iota
	InkTitle
	InkText
	InkMuted
	InkLetter
	InkGolden
	InkPath
	InkWalkable
	InkCursor
	InkClockHigh
	InkClockMid
	InkClockLow
	InkError
)

// ClockInk picks the clock bar ink for the remaining fraction.
func ClockInk(fraction float64) Ink {
	switch {
	case fraction < 0.25:
		return InkClockLow
	case fraction < 0.5:
		return InkClockMid
	}
	return InkClockHigh
}
