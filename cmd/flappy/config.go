package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The first file found is used:
  --config <path>
  ~/.flappy/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flappy config > ~/.flappy/configs/flappy.yaml
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(loadGameConfig())
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
