// dodge is an asteroid dodging game for the terminal, a desktop window or SSH.
//
// Usage:
//
//	dodge play      - Play in the terminal
//	dodge window    - Play in a desktop window
//	dodge serve     - Start SSH server for remote play
//	dodge levels    - Show the difficulty table
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom dodge.yaml
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - keep your ship clear of falling asteroids",
	Long: `Dodge is an arcade game: asteroids fall in waves down a square grid and
you move one cell at a time to stay out of their way. Every asteroid that
leaves the board is a point; waves get faster and denser as the score grows.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  levels   - Show the difficulty table

Examples:
  dodge play
  dodge play --difficulty hard
  dodge window --seed 42
  dodge serve --ssh :2222
  dodge levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom dodge config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}

// loadConfig loads dodge.yaml and applies the --difficulty preset.
func loadConfig() (config.DodgeConfig, error) {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplyDodgePreset(&cfg, preset)
	}
	return cfg, cfg.Validate()
}

// runtimeConfig returns the host settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger creates a logger writing to w, or to --log-file when set.
// The returned closer releases the log file.
func newLogger(w io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// newGame creates a dodge game logging through logger.
func newGame(cfg config.DodgeConfig, logger *log.Logger) (*dodge.Game, error) {
	return dodge.New(cfg, dodge.WithLogger(logger))
}
