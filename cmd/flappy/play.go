package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/W/Click  - Flap (also starts the game)
  Enter             - Start
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Every finished game is saved as a replay.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file ~/.flappy/flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game := loadGameConfig()
	logger, closer := newLogger(true)
	defer closer.Close()

	width, height := terminalSize()

	// Open replay storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var player audio.Player = audio.Silent{}
	if game.Audio.Enabled {
		player = audio.NewBell(os.Stdout)
	}

	runErr := tui.Run(tui.Options{
		Game: game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Audio:  player,
		Player: playerName(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
