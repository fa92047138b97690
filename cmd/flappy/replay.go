package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded session",
	Long: `Re-simulate a recorded session and check that it reproduces the
recorded score. With --watch the session is played back in the terminal.

Replays are only reproducible with the configuration they were recorded
with; pass the same --config if you recorded with a custom one.

Examples:
  flappy replay 7
  flappy replay 7 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the session back in the terminal")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid replay id %q", args[0])
	}

	game := loadGameConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	defer store.Close()

	if flagWatch {
		watchReplay(store, game, id)
		return
	}

	rp, err := store.Replay(id)
	if err != nil {
		fail("%v", err)
	}

	res, err := replay.Verify(game, rp)
	if err != nil {
		fail("replay #%d: %v", id, err)
	}
	fmt.Printf("Replay #%d by %s verified: score %d in %d ticks (%s)\n",
		rp.ID, rp.Player, res.Score, res.Ticks, res.State)
}

// watchReplay plays a stored session back in the terminal.
func watchReplay(store *storage.Store, game config.FlappyConfig, id int64) {
	rp, err := store.Replay(id)
	if err != nil {
		fail("%v", err)
	}

	logger, closer := newLogger(true)
	defer closer.Close()

	width, height := terminalSize()
	err = tui.Run(tui.Options{
		Game: game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger:   logger,
		Player:   rp.Player,
		Playback: replay.NewPlayback(game, rp, flappy.WithLogger(logger)),
	})
	if err != nil {
		fail("watching replay: %v", err)
	}
}
