package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/roomba-cleanup/internal/core"
	"github.com/vovakirdan/roomba-cleanup/internal/platform/tui"
	"github.com/vovakirdan/roomba-cleanup/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move
  R            - Restart (after the game ends)
  Q/Esc/Ctrl+C - Quit

The game takes over the terminal, so logs are discarded unless --log-file
is given.

Examples:
  roomba play
  roomba play --seed 42
  roomba play --spawn-chance 0.5 --spawn-interval 800
  roomba play --log-level debug --log-file roomba.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	logger, closeLog, err := playLogger()
	exitOnError(err)
	defer closeLog()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed

	// The run log only feeds the tally under the board and dies with the process
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
	} else {
		defer store.Close()
	}

	if err := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Player:  os.Getenv("USER"),
		Logger:  logger,
	}); err != nil {
		exitOnError(fmt.Errorf("running game: %w", err))
	}
}

// playLogger logs to --log-file when set and discards otherwise,
// since the game owns the terminal.
func playLogger() (*log.Logger, func(), error) {
	level, err := logLevel()
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = io.Discard
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "roomba",
		Level:           level,
	})
	return logger, closeFn, nil
}
