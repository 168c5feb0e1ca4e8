package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal hosts) or pixels (window host)
	ScreenH  int   // Screen height in characters or pixels
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Index of the difficulty level governing the last wave
	GameOver bool // Whether the session is lost
}

// StepResult is returned by Game.Step() after each simulation tick.
// Err is set only for fatal configuration errors; the host must stop and report it.
type StepResult struct {
	State GameState
	Err   error
}
