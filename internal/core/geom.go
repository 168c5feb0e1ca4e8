// Package core provides fundamental types and utilities shared by the game
// simulation and its hosts. It contains no external dependencies (especially
// no Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Vec is a 2D vector of float64 components.
// It is used both for logical grid coordinates and for pixel coordinates.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Times returns the component-wise product of two vectors.
func (v Vec) Times(o Vec) Vec {
	return Vec{X: v.X * o.X, Y: v.Y * o.Y}
}

// Len returns the Euclidean length of the vector.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between two points.
func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Len()
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
