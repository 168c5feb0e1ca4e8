package sim

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/dodge/internal/core"
)

// Range is a closed interval [Min, Max] sampled uniformly.
type Range struct {
	Min float64
	Max float64
}

// R is a convenience constructor for Range.
func R(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

// Uniform draws a value from the range. A degenerate range returns Min.
func (r Range) Uniform(rng *rand.Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// String returns a string representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}

// Level is a difficulty profile: it governs the speed and density of one wave.
type Level struct {
	Name      string
	Color     core.Color
	Speed     Range // Cells per second, one draw per wave
	FillRatio Range // Fraction of the grid width to sample as spawn columns
}

// Validate checks that the ranges are ordered and the fill ratio is in (0, 1].
func (l Level) Validate() error {
	if l.Speed.Min > l.Speed.Max {
		return fmt.Errorf("level %s: inverted speed range %v", l.Name, l.Speed)
	}
	if l.Speed.Min < 0 {
		return fmt.Errorf("level %s: negative speed %v", l.Name, l.Speed)
	}
	if l.FillRatio.Min > l.FillRatio.Max {
		return fmt.Errorf("level %s: inverted fill ratio range %v", l.Name, l.FillRatio)
	}
	if l.FillRatio.Min <= 0 || l.FillRatio.Max > 1 {
		return fmt.Errorf("level %s: fill ratio %v must lie in (0, 1]", l.Name, l.FillRatio)
	}
	return nil
}

// GenerateWave produces the asteroids of one wave on the spawn row.
//
// Columns are sampled with replacement, sorted, and then thinned so that every
// surviving column is more than one cell away from its sorted neighbours. The
// wave is therefore never larger than the sample count.
func (l Level) GenerateWave(rng *rand.Rand, g Grid) []Asteroid {
	size := g.Size()
	count := int(math.Floor(l.FillRatio.Uniform(rng) * float64(size)))
	speed := l.Speed.Uniform(rng)

	columns := make([]int, 0, count)
	for i := 0; i < count && size > 0; i++ {
		columns = append(columns, rng.Intn(size))
	}
	sort.Ints(columns)

	spread := spreadColumns(columns)
	wave := make([]Asteroid, 0, len(spread))
	for _, col := range spread {
		wave = append(wave, Asteroid{
			Pos:   core.V(float64(col), 0),
			Vel:   core.V(0, speed),
			Color: l.Color,
		})
	}
	return wave
}

// spreadColumns keeps the sorted columns whose distance to both neighbours is
// greater than one. A missing neighbour at either end passes its side.
// The input is not modified.
func spreadColumns(sorted []int) []int {
	kept := make([]int, 0, len(sorted))
	for i, col := range sorted {
		if i > 0 && core.Abs(col-sorted[i-1]) <= 1 {
			continue
		}
		if i < len(sorted)-1 && core.Abs(col-sorted[i+1]) <= 1 {
			continue
		}
		kept = append(kept, col)
	}
	return kept
}

// DefaultLevels returns the six built-in difficulty profiles, easiest first.
func DefaultLevels() []Level {
	return []Level{
		{Name: "L0", Color: core.ColorWhite, Speed: R(1.5, 1.5005), FillRatio: R(0.2, 0.25)},
		{Name: "L1", Color: core.ColorRed, Speed: R(1.8, 2.0), FillRatio: R(0.25, 0.27)},
		{Name: "L2", Color: core.ColorIndigo, Speed: R(2.0, 2.2), FillRatio: R(0.35, 0.4)},
		{Name: "L3", Color: core.ColorOrange, Speed: R(2.0, 2.1), FillRatio: R(0.44, 0.48)},
		{Name: "L4", Color: core.ColorGreen, Speed: R(2.5, 3.5), FillRatio: R(0.3, 0.35)},
		{Name: "L5", Color: core.ColorBlue, Speed: R(3.0, 3.8), FillRatio: R(0.50, 0.71)},
	}
}
