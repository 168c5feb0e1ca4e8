package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window drawn at the configured pixel size
(screen.width x screen.height, 1000x1000 by default).

Controls are the same as in the terminal: arrows/WASD to move, R to restart
after a loss, Q or Esc to quit.

Examples:
  dodge window
  dodge window --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(os.Stderr, "dodge")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	game, err := newGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := window.Run(game, runtimeConfig(cfg.Screen.Width, cfg.Screen.Height), logger); err != nil {
		logger.Error("window stopped", "err", err)
		closer.Close()
		os.Exit(1)
	}
}
