package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge/internal/games/dodge"
	"github.com/vovakirdan/dodge/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL - Move one cell
  R                - Restart (after game over)
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Start from score 0 at the first level
  normal - Start from score 200
  hard   - Start from score 450

Logs are discarded unless --log-file is given, since the game owns the screen.

Examples:
  dodge play
  dodge play --difficulty normal
  dodge play --config ./my-dodge.yaml
  dodge play --log-file dodge.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}
	if needW, needH := dodge.BoardSize(cfg.Grid.Size); width < needW || height < needH+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board looks best at %dx%d or larger\n",
			width, height, needW, needH+1)
	}

	logger, closer, err := newLogger(io.Discard, "dodge")
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

	if err := tui.Run(game, runtimeConfig(width, height), logger); err != nil {
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
