// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy serve             - Start SSH server for remote play
//	flappy replays           - Browse recorded sessions
//	flappy replay <id>       - Re-simulate (or --watch) a recorded session
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set replay database path (default: ~/.flappy/replays.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through scrolling pipes in your terminal",
	Long: `Flappy is a terminal take on the classic one-button game: flap to stay
airborne and pass through the gaps between pipes.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  replays  - Browse recorded sessions
  replay   - Re-simulate a recorded session
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy serve --ssh :2222
  flappy replays
  flappy replay 7 --watch`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error the way every command reports them and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadGameConfig loads the game tuning or exits.
func loadGameConfig() config.FlappyConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// newLogger builds the logger from the global flags. When the TUI owns the
// terminal and no log file is given, logs are discarded.
func newLogger(tuiOwnsTerminal bool) (*log.Logger, io.Closer) {
	opts := logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Prefix: "flappy",
	}
	if tuiOwnsTerminal && flagLogFile == "" {
		opts.Writer = io.Discard
	}
	logger, closer, err := logging.New(opts)
	if err != nil {
		fail("%v", err)
	}
	return logger, closer
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// playerName names the local player for replays.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
