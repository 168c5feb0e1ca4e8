// Package sim holds the pure simulation of the dodge game: the grid coordinate
// space, falling asteroids, wave generation, difficulty selection and the
// per-tick session loop. It has no UI dependencies.
package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/dodge/internal/core"
)

// ErrOutOfBounds is returned when a logical point lies outside the grid.
var ErrOutOfBounds = errors.New("sim: point out of grid bounds")

// cellCenter offsets a logical cell to the middle of its pixel tile.
var cellCenter = core.V(0.5, 0.5)

// Grid maps a square logical grid of cells onto a screen surface.
// It is an immutable value; copy it freely.
type Grid struct {
	screen core.Vec
	size   int
}

// NewGrid creates a grid of size×size cells spread over a screen of the given
// dimensions. Both dimensions and the cell count must be positive.
func NewGrid(screenW, screenH float64, size int) (Grid, error) {
	if size <= 0 {
		return Grid{}, fmt.Errorf("sim: grid size must be positive, got %d", size)
	}
	if screenW <= 0 || screenH <= 0 {
		return Grid{}, fmt.Errorf("sim: screen size must be positive, got %gx%g", screenW, screenH)
	}
	return Grid{screen: core.V(screenW, screenH), size: size}, nil
}

// Size returns the number of cells per side.
func (g Grid) Size() int {
	return g.size
}

// Screen returns the screen dimensions the grid is mapped onto.
func (g Grid) Screen() core.Vec {
	return g.screen
}

// TileSize returns the screen dimensions of one cell.
func (g Grid) TileSize() core.Vec {
	n := float64(g.size)
	return core.V(g.screen.X/n, g.screen.Y/n)
}

// WithScreen returns a copy of the grid mapped onto a different screen.
// Hosts use it to project the same logical grid onto their own surface.
func (g Grid) WithScreen(screenW, screenH float64) Grid {
	g.screen = core.V(screenW, screenH)
	return g
}

// IsIn reports whether p lies inside the grid; each axis is half-open [0, size).
func (g Grid) IsIn(p core.Vec) bool {
	n := float64(g.size)
	return p.X >= 0 && p.X < n && p.Y >= 0 && p.Y < n
}

// TranslateToScreen returns the screen position of the center of p's tile.
func (g Grid) TranslateToScreen(p core.Vec) (core.Vec, error) {
	if !g.IsIn(p) {
		return core.Vec{}, fmt.Errorf("%w: %v on %d×%d grid", ErrOutOfBounds, p, g.size, g.size)
	}
	return g.TileSize().Times(p.Add(cellCenter)), nil
}

// Collide reports whether two logical points are close enough to touch:
// their screen distance is below half the tile diagonal. A point that cannot
// be projected is compared as its raw logical value.
func (g Grid) Collide(a, b core.Vec) bool {
	pa, err := g.TranslateToScreen(a)
	if err != nil {
		pa = a
	}
	pb, err := g.TranslateToScreen(b)
	if err != nil {
		pb = b
	}
	return pa.Distance(pb) < g.TileSize().Len()/2
}
