// roomba is a terminal game: steer a cleaning robot around a grid, collect
// every piece of trash and stay off the poop that keeps appearing.
//
// Usage:
//
//	roomba                 - Play in this terminal (same as "roomba play")
//	roomba play            - Play in this terminal
//	roomba serve           - Start SSH server for remote play
//	roomba replay          - Run a scripted game headless and print the board
//	roomba config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>        - Game config YAML
//	--seed <value>         - RNG seed for a reproducible board (0 = time based)
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string

	// Config overrides
	flagWidth         int
	flagHeight        int
	flagTrash         int
	flagSpawnChance   float64
	flagSpawnInterval int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roomba",
	Short: "Roomba Cleanup - clean the floor, dodge the poop",
	Long: `Roomba Cleanup is a terminal grid game. Drive the robot over every
piece of trash to win. Poop drops onto free tiles at random; run into it,
or let it land on you, and the game is over.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  replay   - Run a scripted game and print the result
  config   - Print the effective configuration

Examples:
  roomba
  roomba play --seed 7
  roomba play --width 10 --height 10 --trash 12
  roomba serve --ssh :2222
  roomba replay --seed 7 --script "d,d,tick,w" --png board.png`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Grid width override")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Grid height override")
	rootCmd.PersistentFlags().IntVar(&flagTrash, "trash", 0, "Starting trash override")
	rootCmd.PersistentFlags().Float64Var(&flagSpawnChance, "spawn-chance", -1, "Hazard spawn chance override (0..1)")
	rootCmd.PersistentFlags().IntVar(&flagSpawnInterval, "spawn-interval", 0, "Hazard spawn interval override in milliseconds")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	return config.Overrides{
		Width:           flagWidth,
		Height:          flagHeight,
		StartingTrash:   flagTrash,
		SpawnChance:     flagSpawnChance,
		SpawnIntervalMS: flagSpawnInterval,
	}.Apply(cfg)
}

// logLevel parses --log-level.
func logLevel() (log.Level, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	return level, nil
}

// exitOnError prints err the way every command reports failures and exits.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
