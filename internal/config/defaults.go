package config

import (
	_ "embed"
)

//go:embed defaults/golden.yaml
var defaultGoldenYAML []byte

// DefaultGoldenConfig returns the default configuration.
func DefaultGoldenConfig() GoldenConfig {
	return GoldenConfig{
		Session: SessionConfig{
			ClockMs:    30000,
			GridWidth:  8,
			GridHeight: 8,
			Seed:       0,
			Engine:     "classic",
		},
		Frame: FrameConfig{
			TickRate: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			Level:          0.3,
			ClockReduction: 0.5,
			MinClockMs:     5000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGoldenYAML
}
