package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the loaded configuration.
const (
	EnvClockMs    = "GOLDEN_CLOCK_MS"
	EnvGridWidth  = "GOLDEN_GRID_WIDTH"
	EnvGridHeight = "GOLDEN_GRID_HEIGHT"
	EnvSeed       = "GOLDEN_SEED"
	EnvEngine     = "GOLDEN_ENGINE"
	EnvTickRate   = "GOLDEN_TICK_RATE"
	EnvLogLevel   = "GOLDEN_LOG_LEVEL"
	EnvLogFile    = "GOLDEN_LOG_FILE"
)

// LoadEnvFile loads variables from a dotenv file without overriding the
// ones already set. With an empty path, ./.env is loaded when present.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with the GOLDEN_* variables that are set.
func ApplyEnv(cfg *GoldenConfig) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{EnvGridWidth, &cfg.Session.GridWidth},
		{EnvGridHeight, &cfg.Session.GridHeight},
		{EnvTickRate, &cfg.Frame.TickRate},
	}
	for _, v := range ints {
		if err := envInt(v.name, v.dst); err != nil {
			return err
		}
	}

	if err := envInt64(EnvClockMs, &cfg.Session.ClockMs); err != nil {
		return err
	}
	if err := envInt64(EnvSeed, &cfg.Session.Seed); err != nil {
		return err
	}

	if s, ok := os.LookupEnv(EnvEngine); ok && s != "" {
		cfg.Session.Engine = s
	}
	if s, ok := os.LookupEnv(EnvLogLevel); ok && s != "" {
		cfg.Log.Level = s
	}
	if s, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.Log.File = s
	}
	return nil
}

func envInt(name string, dst *int) error {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", name, s, err)
	}
	*dst = n
	return nil
}

func envInt64(name string, dst *int64) error {
	s, ok := os.LookupEnv(name)
	if !ok || s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("config: %s=%q: %w", name, s, err)
	}
	*dst = n
	return nil
}
