package config

import "math"

// DifficultyManager derives the session clock from a difficulty level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.Level = clampF(cfg.Level, 0.0, 1.0)
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the level changes the clock.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.ClockReduction > 0
}

// Level returns the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.cfg.Level
}

// ClockMs returns the clock duration for the configured level. The clock
// shrinks from base towards base * (1 - clockReduction) and never drops
// below MinClockMs.
func (d *DifficultyManager) ClockMs(base int64) int64 {
	if !d.IsEnabled() {
		return base
	}
	result := int64(float64(base) * (1.0 - d.cfg.Level*d.cfg.ClockReduction))
	if result < d.cfg.MinClockMs {
		result = d.cfg.MinClockMs
	}
	if result > base {
		result = base
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
