package sim

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/dodge/internal/core"
)

// Status is the session state machine: Running -> Lost, one way.
type Status int

const (
	StatusRunning Status = iota
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Player is the entity controlled by the user.
type Player struct {
	Pos   core.Vec
	Color core.Color
}

// Config holds everything fixed for the lifetime of a session.
type Config struct {
	Grid        Grid
	Table       Table
	StartScore  int
	PlayerColor core.Color
}

// Session is the state of one game from start until the player is hit.
// It is not safe for concurrent use; the host owns it between updates.
type Session struct {
	grid      Grid
	table     Table
	rng       *rand.Rand
	clock     core.Clock
	lastTick  time.Time
	score     int
	asteroids []Asteroid
	player    Player
	status    Status
	level     int // Bracket index of the most recent wave
	waves     int // Waves spawned so far
}

// NewSession validates cfg and places the player at its start cell,
// horizontally centered on the bottom row.
func NewSession(cfg Config, rng *rand.Rand, clock core.Clock) (*Session, error) {
	if cfg.Grid.Size() <= 0 {
		return nil, errors.New("sim: session needs a grid with a positive size")
	}
	if cfg.Table.Len() == 0 {
		return nil, errors.New("sim: session needs a difficulty table")
	}
	if rng == nil || clock == nil {
		return nil, errors.New("sim: session needs a random source and a clock")
	}
	level, err := cfg.Table.Index(cfg.StartScore)
	if err != nil {
		return nil, fmt.Errorf("sim: start score: %w", err)
	}

	n := float64(cfg.Grid.Size())
	return &Session{
		grid:     cfg.Grid,
		table:    cfg.Table,
		rng:      rng,
		clock:    clock,
		lastTick: clock.Now(),
		score:    cfg.StartScore,
		player: Player{
			Pos:   core.V(math.Floor(n/2), n-1),
			Color: cfg.PlayerColor,
		},
		status: StatusRunning,
		level:  level,
	}, nil
}

// Update runs one tick: advance time, move asteroids, cull and score,
// replenish the wave, apply input, then check for a hit.
// It does nothing once the session is lost. A non-nil error is fatal.
func (s *Session) Update(in core.InputFrame) error {
	if s.status == StatusLost {
		return nil
	}

	s.advance(s.elapsed())
	s.cull()
	if err := s.replenish(); err != nil {
		return err
	}
	s.movePlayer(in)
	s.checkCollision()
	return nil
}

// elapsed returns the seconds since the previous tick at microsecond resolution.
func (s *Session) elapsed() float64 {
	now := s.clock.Now()
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	return float64(dt.Microseconds()) * 1e-6
}

func (s *Session) advance(dt float64) {
	for i := range s.asteroids {
		s.asteroids[i].Update(dt)
	}
}

// cull drops asteroids that left the grid, one point each.
func (s *Session) cull() {
	kept := make([]Asteroid, 0, len(s.asteroids))
	for _, a := range s.asteroids {
		if s.grid.IsIn(a.Pos) {
			kept = append(kept, a)
			continue
		}
		s.score++
	}
	s.asteroids = kept
}

// replenish spawns a new wave once the spawn row is empty.
func (s *Session) replenish() error {
	for _, a := range s.asteroids {
		if a.InSpawnRow() {
			return nil
		}
	}

	index, err := s.table.Index(s.score)
	if err != nil {
		return fmt.Errorf("sim: selecting wave level: %w", err)
	}
	level := s.table.brackets[index].Level
	s.asteroids = append(s.asteroids, level.GenerateWave(s.rng, s.grid)...)
	s.level = index
	s.waves++
	return nil
}

// movePlayer applies each pressed direction; moves leaving the grid are dropped.
func (s *Session) movePlayer(in core.InputFrame) {
	for _, a := range core.Directions {
		if !in.Has(a) {
			continue
		}
		candidate := s.player.Pos.Add(a.Delta())
		if s.grid.IsIn(candidate) {
			s.player.Pos = candidate
		}
	}
}

func (s *Session) checkCollision() {
	for _, a := range s.asteroids {
		if s.grid.Collide(a.Pos, s.player.Pos) {
			s.status = StatusLost
			return
		}
	}
}

// Score returns the number of asteroids survived plus the start score.
func (s *Session) Score() int {
	return s.score
}

// Status returns the session state.
func (s *Session) Status() Status {
	return s.status
}

// Lost reports whether the player has been hit.
func (s *Session) Lost() bool {
	return s.status == StatusLost
}

// Player returns the player entity.
func (s *Session) Player() Player {
	return s.player
}

// Asteroids returns a copy of the live asteroids.
func (s *Session) Asteroids() []Asteroid {
	out := make([]Asteroid, len(s.asteroids))
	copy(out, s.asteroids)
	return out
}

// Grid returns the session grid.
func (s *Session) Grid() Grid {
	return s.grid
}

// Level returns the bracket index of the most recent wave
// (or of the start score before the first wave).
func (s *Session) Level() int {
	return s.level
}

// Waves returns how many waves have been spawned.
func (s *Session) Waves() int {
	return s.waves
}
