package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorIndigo:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Style returns the lipgloss style of a palette color.
func Style(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
