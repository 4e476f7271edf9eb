package core

// RuntimeConfig contains the session parameters supplied once by the host
// when the engine is constructed.
type RuntimeConfig struct {
	ClockMs    int64 // Time in milliseconds before the next triplet drops
	GridWidth  int   // Grid width in cells
	GridHeight int   // Grid height in cells
	TickRate   int   // Frames per second requested from the host scheduler
	Seed       int64 // RNG seed for deterministic sessions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ClockMs:    30000,
		GridWidth:  8,
		GridHeight: 8,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
	}
}
