package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
	"github.com/vovakirdan/roomba-cleanup/internal/core"
	"github.com/vovakirdan/roomba-cleanup/internal/roomba"
)

// tickToken in a replay script runs one hazard spawn tick.
const tickToken = "tick"

var (
	flagScript string
	flagPNG    string
)

var errUnknownToken = errors.New("unknown script token")

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run a scripted game and print the board",
	Long: `Play a game without a terminal UI. The script is a comma separated list
of key tokens (up, down, left, right, w, a, s, d, r) and "tick" for one
hazard spawn tick. The same seed and script always give the same board.

Examples:
  roomba replay --seed 7 --script "d,d,tick,w"
  roomba replay --seed 7 --script "left,left,tick,tick" --png board.png`,
	Args: cobra.NoArgs,
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagScript, "script", "", "Comma separated key tokens and ticks")
	replayCmd.Flags().StringVar(&flagPNG, "png", "", "Also write the final board as a PNG image")
}

func runReplay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	script, err := parseScript(flagScript)
	exitOnError(err)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := replay(cfg, seed, script)
	exitOnError(err)

	snap := session.Snapshot()
	fmt.Println(boardText(snap))
	fmt.Println(snap.Status)
	fmt.Printf("Seed: %d | Moves: %d\n", seed, snap.Moves)

	if flagPNG != "" {
		exitOnError(writePNG(flagPNG, cfg, snap))
		fmt.Printf("Board written to %s\n", flagPNG)
	}
}

// parseScript splits a script into tokens, rejecting anything the game
// would silently ignore.
func parseScript(script string) ([]string, error) {
	var tokens []string
	for _, raw := range strings.Split(script, ",") {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			continue
		}
		if !strings.EqualFold(tok, tickToken) && roomba.MapKey(tok) == core.ActionNone {
			return nil, fmt.Errorf("%w: %q", errUnknownToken, tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// replay runs the script against a fresh session.
func replay(cfg config.Config, seed int64, script []string) (*roomba.Session, error) {
	session, err := roomba.NewSession(cfg, seed, nil)
	if err != nil {
		return nil, err
	}

	for _, tok := range script {
		if strings.EqualFold(tok, tickToken) {
			session.SpawnTick()
			continue
		}
		session.HandleKey(tok)
	}
	return session, nil
}

// boardText renders the board as plain text, trailing spaces trimmed.
func boardText(snap roomba.Snapshot) string {
	w, h := roomba.BoardSize(snap.Width, snap.Height)
	// Leave room for the end-of-game box on very small boards
	screen := core.NewScreen(max(w, 24), max(h, 5))
	roomba.Render(screen, snap)

	lines := make([]string, 0, screen.Height())
	for y := range screen.Height() {
		lines = append(lines, strings.TrimRight(screen.Row(y), " "))
	}
	return strings.Join(lines, "\n")
}

// writePNG saves the board image to path.
func writePNG(path string, cfg config.Config, snap roomba.Snapshot) error {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, roomba.RenderImage(snap, palette, cfg.Grid.CellSize)); err != nil {
		return fmt.Errorf("cannot encode PNG: %w", err)
	}
	return f.Close()
}
