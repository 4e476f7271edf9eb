// golden is a terminal word puzzle: letters drop on a clock, and the
// player slides them through empty cells to spell words.
//
// Usage:
//
//	golden play              - Play in the terminal
//	golden headless          - Drive a session without a terminal
//	golden list              - List available engines
//	golden letters           - Show the letters table of an engine
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--env-file <path>    - Dotenv file with GOLDEN_* overrides (default: ./.env)
//	--difficulty <name>  - easy, normal, hard, fixed
//	--fps <rate>         - Frame rate
//	--seed <value>       - RNG seed for reproducible games (0 = random)
//	--engine <id>        - Engine to play
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden/internal/config"
	_ "github.com/vovakirdan/golden/internal/engine/classic" // Register engines
	"github.com/vovakirdan/golden/internal/registry"
	"github.com/vovakirdan/golden/internal/session"
)

var (
	// Global flags
	flagConfig     string
	flagEnvFile    string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagEngine     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "golden",
	Short: "Golden - a word puzzle in your terminal",
	Long: `Golden drops letters on a grid three at a time. Move letters through
empty cells to line up words of five to eight letters; words are removed
and scored, and the golden word is worth a bonus.

Available commands:
  play      - Play in the terminal
  headless  - Run a session on synthetic frames
  list      - Show available engines
  letters   - Show the letters table

Examples:
  golden play
  golden play --difficulty hard
  golden play --seed 42 --fps 30
  golden headless --frames 3000 --bot --seed 7`,
	SilenceUsage: true,
}

func init() {
	addGlobalFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lettersCmd)
}

func addGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagEnvFile, "env-file", "", "Dotenv file with GOLDEN_* overrides (default: ./.env if present)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagEngine, "engine", "", "Engine ID (see 'golden list')")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig resolves the configuration. Later sources win: config file,
// difficulty preset, GOLDEN_* environment, explicit flags.
func loadConfig(cmd *cobra.Command) (config.GoldenConfig, error) {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return config.GoldenConfig{}, err
	}

	cfg, err := config.LoadGolden(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Frame.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Session.Seed = flagSeed
	}
	if flags.Changed("engine") {
		cfg.Session.Engine = flagEngine
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	// Use time-based seed if not specified
	if cfg.Session.Seed == 0 {
		cfg.Session.Seed = time.Now().UnixNano()
	}

	return cfg, cfg.Validate()
}

// newLogger builds the logger for cfg writing to w.
func newLogger(cfg config.GoldenConfig, w io.Writer) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "golden",
		Level:           level,
	})
}

// newSession creates the configured engine and wraps it in a session.
func newSession(cfg config.GoldenConfig, logger *log.Logger) (*session.Session, error) {
	eng, err := registry.Create(cfg.Session.Engine, cfg.RuntimeConfig())
	if err != nil {
		return nil, err
	}
	logger.Debug("engine created",
		"engine", cfg.Session.Engine,
		"seed", cfg.Session.Seed,
		"clock_ms", eng.ClockMaxMs(),
	)
	return session.New(eng, logger), nil
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
