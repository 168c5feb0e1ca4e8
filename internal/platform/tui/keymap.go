package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge/internal/core"
)

// KeyMap holds the key bindings of the game screen.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns arrows, WASD and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Restart, k.Quit}
}

// FullHelp returns the bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Restart, k.Quit},
	}
}

// ActionFor translates a key message to a game action.
// Unbound keys return core.ActionNone.
func (k KeyMap) ActionFor(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
