// Package tui provides the Bubble Tea host for the dodge game.
// It runs the tick loop, maps keys to actions and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickRate is used when the configured rate is not positive.
const DefaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
