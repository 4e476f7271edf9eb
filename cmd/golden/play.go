package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/golden/internal/config"
	"github.com/vovakirdan/golden/internal/platform/tui"
)

const logFileName = "golden.log"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Golden in the terminal",
	Long: `Starts an interactive game.

Click a letter (or move the cursor and press space) to select it, then
click an empty cell it can reach to move it there. The path preview shows
the route the letter will take.`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fail("stdout is not a terminal; use 'golden headless' instead")
	}
	needW, needH := tui.MinSize(cfg.Session.GridWidth, cfg.Session.GridHeight)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < needW || h < needH) {
		fail("terminal is %dx%d, need at least %dx%d", w, h, needW, needH)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := openLogFile(cfg.Log.File)
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	sess, err := newSession(cfg, newLogger(cfg, logFile))
	if err != nil {
		logFile.Close()
		fail("%v", err)
	}

	// tui.Run stops the session on every return path.
	if err := tui.Run(sess, cfg.Frame.TickRate); err != nil {
		sess.Stop()
		logFile.Close()
		fail("%v", err)
	}
}

// openLogFile opens path for appending, defaulting to ~/.golden/golden.log.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		dir := config.HomeDir()
		if dir == "" {
			dir = os.TempDir()
		}
		path = filepath.Join(dir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
