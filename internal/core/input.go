package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts map keyboard events to actions; the simulation only sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionRestart        // R key - start a new session after a loss
	ActionQuit           // Q, Ctrl+C - exit
)

// Directions lists the movement actions in the order they are applied each tick.
var Directions = [...]Action{ActionLeft, ActionRight, ActionUp, ActionDown}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the one-cell grid offset for a movement action.
// Non-movement actions return (0, 0).
func (a Action) Delta() Vec {
	switch a {
	case ActionLeft:
		return Vec{X: -1}
	case ActionRight:
		return Vec{X: 1}
	case ActionUp:
		return Vec{Y: -1}
	case ActionDown:
		return Vec{Y: 1}
	default:
		return Vec{}
	}
}

// InputFrame is the snapshot of actions pressed during one simulation tick.
// The simulation reads it once per tick and never polls mid-tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
