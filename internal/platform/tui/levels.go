package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge/sim"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// ScoreRange formats the scores governed by bracket i of t.
func ScoreRange(t sim.Table, i int) string {
	b := t.Brackets()
	if i < 0 || i >= len(b) {
		return ""
	}
	from := 0
	if i > 0 {
		from = b[i-1].Until
	}
	if b[i].Until == sim.Unbounded {
		return fmt.Sprintf("%d+", from)
	}
	return fmt.Sprintf("%d-%d", from, b[i].Until-1)
}

// LevelsTable renders the difficulty table, one row per bracket.
// The color column is drawn in the level's own color.
func LevelsTable(t sim.Table) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Style(core.ColorGray)).
		Headers("LEVEL", "SCORE", "SPEED (cells/s)", "FILL", "COLOR").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, b := range t.Brackets() {
		tbl.Row(
			b.Level.Name,
			ScoreRange(t, i),
			b.Level.Speed.String(),
			b.Level.FillRatio.String(),
			Style(b.Level.Color).Render(b.Level.Color.String()),
		)
	}
	return tbl.Render()
}
