package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagReplaysLimit int
	flagReplaysPlain bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded sessions",
	Long: `List recorded sessions, newest first.

In a terminal this opens an interactive browser: Enter watches the
highlighted replay, V re-simulates it and reports whether it verifies.
With --plain (or when stdout is not a terminal) a plain list is printed.

Examples:
  flappy replays
  flappy replays --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplaysLimit, "limit", 20, "Number of replays to list in plain mode")
	replaysCmd.Flags().BoolVar(&flagReplaysPlain, "plain", false, "Print a plain list instead of the browser")
}

func runReplays(_ *cobra.Command, _ []string) {
	game := loadGameConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening replay database: %v", err)
	}
	defer store.Close()

	if flagReplaysPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printReplays(store)
		return
	}

	width, height := terminalSize()
	id, err := tui.RunBrowser(store, game, width, height)
	if err != nil {
		fail("%v", err)
	}
	if id != 0 {
		watchReplay(store, game, id)
	}
}

func printReplays(store *storage.Store) {
	list, err := store.ListReplays(flagReplaysLimit)
	if err != nil {
		fail("%v", err)
	}

	if len(list) == 0 {
		fmt.Println("No replays recorded yet.")
		return
	}

	fmt.Printf("%-6s %-16s %6s %8s  %s\n", "ID", "PLAYER", "SCORE", "TICKS", "RECORDED")
	for _, r := range list {
		fmt.Printf("%-6d %-16s %6d %8d  %s\n",
			r.ID, r.Player, r.Score, r.Ticks, r.RecordedAt.Local().Format("2006-01-02 15:04"))
	}
}
