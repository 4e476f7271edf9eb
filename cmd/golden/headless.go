package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/golden/internal/core"
	"github.com/vovakirdan/golden/internal/session"
)

var (
	flagFrames   int
	flagBot      bool
	flagInterval int
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run a session on synthetic frames",
	Long: `Drives a session without a terminal. Frames are generated back to back
with synthetic timestamps, so a full game runs in well under a second.

With --bot, random clicks are fed into the input buffer between frames.
Logs go to stderr; a summary is printed to stdout when the run ends.`,
	Run: runHeadless,
}

func init() {
	f := headlessCmd.Flags()
	f.IntVar(&flagFrames, "frames", 3600, "Number of frames to run")
	f.BoolVar(&flagBot, "bot", false, "Click random cells between frames")
	f.IntVar(&flagInterval, "interval", 0, "Milliseconds between frames (default: 1000/fps)")
}

func runHeadless(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if flagFrames <= 0 {
		fail("--frames must be positive, got %d", flagFrames)
	}

	interval := flagInterval
	if interval <= 0 {
		interval = 1000 / cfg.Frame.TickRate
	}

	sess, err := newSession(cfg, newLogger(cfg, os.Stderr))
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var b *bot
	if flagBot {
		b = newBot(cfg.Session.Seed, cfg.Session.GridWidth, cfg.Session.GridHeight)
	}

	err = driveHeadless(ctx, sess, b, flagFrames, time.Duration(interval)*time.Millisecond)
	if err != nil {
		fail("%v", err)
	}
	printSummary(sess)
}

// driveHeadless runs n synthetic frames through the session's driver and
// stops the session before returning. An interrupt is not an error.
func driveHeadless(ctx context.Context, sess *session.Session, b *bot, n int, interval time.Duration) error {
	defer sess.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make(chan time.Time)
	go produceFrames(ctx, frames, sess.Input, b, n, interval)

	err := sess.Driver.Run(ctx, frames)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// produceFrames sends n synthetic frame timestamps and closes frames.
// When b is set, it records the bot's input before each frame.
func produceFrames(ctx context.Context, frames chan<- time.Time, input *session.InputBuffer, b *bot, n int, interval time.Duration) {
	defer close(frames)

	now := time.Now()
	for i := 0; i < n; i++ {
		if b != nil {
			b.act(input)
		}
		select {
		case <-ctx.Done():
			return
		case frames <- now.Add(time.Duration(i) * interval):
		}
	}
}

// bot plays by clicking random cells. It hovers where it is about to
// click, the way a mouse would.
type bot struct {
	rng           *rand.Rand
	width, height int
}

func newBot(seed int64, width, height int) *bot {
	return &bot{
		rng:    rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15)),
		width:  width,
		height: height,
	}
}

// act clicks about once every ten frames.
func (b *bot) act(input *session.InputBuffer) {
	if b.rng.IntN(10) != 0 {
		return
	}
	p := core.Pos(b.rng.IntN(b.width), b.rng.IntN(b.height))
	input.RecordHover(p)
	input.RecordClick(p)
}

func printSummary(sess *session.Session) {
	state := sess.State()
	words := state.FoundWords()

	fmt.Printf("Frames:   %d\n", sess.Driver.Frames())
	fmt.Printf("Score:    %d\n", state.Score())
	fmt.Printf("Triplets: %d/%d\n", state.Triplets().Index(), len(state.Triplets().All()))
	fmt.Printf("Finished: %t\n", state.Finished())

	if letters, err := sess.Letters.ResolveWord(sess.Golden.Codes()); err == nil {
		golden := session.ResolvedWord{Letters: letters, Score: sess.Golden.Score()}
		fmt.Printf("Golden:   %s (%d)\n", golden.Text(), golden.Score)
	}

	fmt.Printf("Words:    %d\n", len(words))
	for _, w := range words {
		fmt.Printf("  %-8s %4d\n", w.Text(), w.Score)
	}
}
