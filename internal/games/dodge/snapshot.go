package dodge

import (
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge/sim"
)

// Snapshot is the read-only view of a session that hosts draw from.
type Snapshot struct {
	Score      int
	Level      int
	LevelName  string
	LevelColor core.Color
	Lost       bool
	Waves      int
	Grid       sim.Grid
	Player     sim.Player
	Asteroids  []sim.Asteroid
}

// Snapshot returns the current session state. The asteroid slice is a copy.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{}
	}
	s := g.session
	snap := Snapshot{
		Score:     s.Score(),
		Level:     s.Level(),
		Lost:      s.Lost(),
		Waves:     s.Waves(),
		Grid:      s.Grid(),
		Player:    s.Player(),
		Asteroids: s.Asteroids(),
	}
	if b := g.table.Brackets(); snap.Level >= 0 && snap.Level < len(b) {
		snap.LevelName = b[snap.Level].Level.Name
		snap.LevelColor = b[snap.Level].Level.Color
	}
	return snap
}
