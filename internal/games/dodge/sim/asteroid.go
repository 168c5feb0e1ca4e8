package sim

import "github.com/vovakirdan/dodge/internal/core"

// Asteroid is a falling point in logical grid coordinates.
type Asteroid struct {
	Pos   core.Vec   // May lie between cells while moving
	Vel   core.Vec   // Cells per second
	Color core.Color // Color of the level that spawned it
}

// Update advances the asteroid by dt seconds. Culling is the caller's job.
func (a *Asteroid) Update(dt float64) {
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))
}

// InSpawnRow reports whether the asteroid is still in the topmost grid row.
func (a Asteroid) InSpawnRow() bool {
	return a.Pos.Y < 1
}
