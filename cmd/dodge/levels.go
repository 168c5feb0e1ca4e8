package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/games/dodge/sim"
	"github.com/vovakirdan/dodge/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty table",
	Long: `Shows every difficulty level with the scores it covers, the asteroid speed
range, the share of columns sampled per wave and the asteroid color.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	fmt.Println(tui.LevelsTable(sim.DefaultTable()))
	fmt.Println()

	fmt.Println("Difficulty presets:")
	for _, p := range config.Presets {
		fmt.Printf("  %-7s starts at score %d\n", p, config.StartScoreForPreset(p))
	}
	fmt.Println()
	fmt.Println("Run 'dodge play --difficulty <preset>' to play.")
}
