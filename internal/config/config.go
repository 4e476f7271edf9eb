// Package config provides YAML-based session configuration loading,
// environment overrides and difficulty presets.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/golden/internal/core"
)

// GoldenConfig contains all configuration for a session and its host.
type GoldenConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Frame      FrameConfig      `yaml:"frame"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Log        LogConfig        `yaml:"log"`
}

// SessionConfig defines the engine parameters of one session.
type SessionConfig struct {
	ClockMs    int64  `yaml:"clock_ms"`
	GridWidth  int    `yaml:"grid_width"`
	GridHeight int    `yaml:"grid_height"`
	Seed       int64  `yaml:"seed"` // 0 = random based on time
	Engine     string `yaml:"engine"`
}

// FrameConfig defines how often the host produces frames.
type FrameConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// DifficultyConfig shortens the clock between triplet drops.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Level          float64 `yaml:"level"`           // 0.0 = easy, 1.0 = hard
	ClockReduction float64 `yaml:"clock_reduction"` // Share of the clock removed at level 1.0
	MinClockMs     int64   `yaml:"min_clock_ms"`
}

// LogConfig defines the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty = default location for the command
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate rejects values no session can run with.
func (c GoldenConfig) Validate() error {
	s := c.Session
	if s.ClockMs <= 0 {
		return fmt.Errorf("config: session.clock_ms must be positive, got %d", s.ClockMs)
	}
	if s.GridWidth <= 0 || s.GridHeight <= 0 {
		return fmt.Errorf("config: grid %dx%d must have positive dimensions", s.GridWidth, s.GridHeight)
	}
	if s.GridWidth > 64 || s.GridHeight > 64 {
		return fmt.Errorf("config: grid %dx%d exceeds 64x64", s.GridWidth, s.GridHeight)
	}
	if s.Engine == "" {
		return fmt.Errorf("config: session.engine is required")
	}
	if c.Frame.TickRate <= 0 || c.Frame.TickRate > 240 {
		return fmt.Errorf("config: frame.tick_rate must be in 1..240, got %d", c.Frame.TickRate)
	}
	if d := c.Difficulty; d.Level < 0 || d.Level > 1 || d.ClockReduction < 0 || d.ClockReduction >= 1 {
		return fmt.Errorf("config: difficulty level %.2f / reduction %.2f out of range", d.Level, d.ClockReduction)
	}

	level := strings.ToLower(c.Log.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("config: unknown log level %q", c.Log.Level)
}

// RuntimeConfig converts the configuration into engine parameters, with
// the difficulty applied to the clock.
func (c GoldenConfig) RuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ClockMs:    NewDifficultyManager(c.Difficulty).ClockMs(c.Session.ClockMs),
		GridWidth:  c.Session.GridWidth,
		GridHeight: c.Session.GridHeight,
		TickRate:   c.Frame.TickRate,
		Seed:       c.Session.Seed,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is accepted and
// leaves the configuration untouched.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", name)
	}
}

// LevelForPreset returns the difficulty level for a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
