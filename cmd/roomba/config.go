package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba-cleanup/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config file and
any override flags are applied. The output is valid input for --config.

Examples:
  roomba config > my-roomba.yaml
  roomba config --config ./my-roomba.yaml --trash 30`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		data, err := config.Marshal(cfg)
		exitOnError(err)

		_, err = os.Stdout.Write(data)
		exitOnError(err)
	},
}
