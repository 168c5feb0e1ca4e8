package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDifficultyScore means a score matched no bracket of the difficulty
// table. It signals a broken table, not a recoverable runtime condition.
var ErrInvalidDifficultyScore = errors.New("sim: score matches no difficulty bracket")

// Unbounded marks the open-ended last bracket of a table.
const Unbounded = math.MaxInt

// Bracket assigns a level to every score strictly below Until.
type Bracket struct {
	Until int
	Level Level
}

// Table is an ordered, immutable difficulty table evaluated lowest bracket first.
type Table struct {
	brackets []Bracket
}

// NewTable builds a table from brackets ordered by increasing Until.
// The last bracket must be Unbounded so that every score has a level.
func NewTable(brackets ...Bracket) (Table, error) {
	if len(brackets) == 0 {
		return Table{}, errors.New("sim: difficulty table is empty")
	}
	for i, b := range brackets {
		if err := b.Level.Validate(); err != nil {
			return Table{}, fmt.Errorf("sim: bracket %d: %w", i, err)
		}
		if i > 0 && b.Until <= brackets[i-1].Until {
			return Table{}, fmt.Errorf("sim: bracket %d: threshold %d not above %d", i, b.Until, brackets[i-1].Until)
		}
	}
	if last := brackets[len(brackets)-1]; last.Until != Unbounded {
		return Table{}, fmt.Errorf("sim: last bracket must be unbounded, ends at %d", last.Until)
	}

	owned := make([]Bracket, len(brackets))
	copy(owned, brackets)
	return Table{brackets: owned}, nil
}

// DefaultTable returns the built-in score thresholds 100, 200, 350, 450, 550
// over DefaultLevels.
func DefaultTable() Table {
	levels := DefaultLevels()
	return Table{brackets: []Bracket{
		{Until: 100, Level: levels[0]},
		{Until: 200, Level: levels[1]},
		{Until: 350, Level: levels[2]},
		{Until: 450, Level: levels[3]},
		{Until: 550, Level: levels[4]},
		{Until: Unbounded, Level: levels[5]},
	}}
}

// Index returns the position of the bracket governing score.
func (t Table) Index(score int) (int, error) {
	for i, b := range t.brackets {
		if score < b.Until || b.Until == Unbounded {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %d", ErrInvalidDifficultyScore, score)
}

// Select returns the level governing the next wave for score.
func (t Table) Select(score int) (Level, error) {
	i, err := t.Index(score)
	if err != nil {
		return Level{}, err
	}
	return t.brackets[i].Level, nil
}

// Brackets returns a copy of the table's brackets.
func (t Table) Brackets() []Bracket {
	out := make([]Bracket, len(t.brackets))
	copy(out, t.brackets)
	return out
}

// Len returns the number of brackets.
func (t Table) Len() int {
	return len(t.brackets)
}
