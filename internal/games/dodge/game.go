// Package dodge implements the asteroid dodge game.
// Asteroids fall in waves down a square grid; the player moves one cell at a
// time and scores a point for every asteroid that leaves the board. Waves get
// faster and denser as the score crosses the thresholds of the level table.
package dodge

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge/sim"
)

// Fallback glyphs when the configuration leaves them empty.
const (
	PlayerChar   = 'A'
	AsteroidChar = 'O'
)

// PlayerColor is the player's palette color when the configuration sets none.
const PlayerColor = core.ColorYellow

// Option configures a Game.
type Option func(*Game)

// WithClock sets the clock driving the simulation. Tests use core.ManualClock.
func WithClock(c core.Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// WithLogger sets the logger for wave, level and game over events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithTable replaces the built-in difficulty table.
func WithTable(t sim.Table) Option {
	return func(g *Game) {
		g.table = t
	}
}

// Game adapts a sim.Session to the host loop: Reset, Step, Render.
type Game struct {
	cfg     config.DodgeConfig
	table   sim.Table
	clock   core.Clock
	logger  *log.Logger
	runtime core.RuntimeConfig
	session *sim.Session

	playerGlyph   rune
	asteroidGlyph rune

	lastWaves int
	lastLevel int
	lost      bool
}

// New creates a dodge game from a validated configuration.
// Call Reset before the first Step.
func New(cfg config.DodgeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:           cfg,
		table:         sim.DefaultTable(),
		clock:         core.SystemClock{},
		playerGlyph:   cfg.Player.Rune(PlayerChar),
		asteroidGlyph: cfg.Asteroid.Rune(AsteroidChar),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroid Dodge"
}

// Reset starts a new session seeded from rt.Seed.
func (g *Game) Reset(rt core.RuntimeConfig) error {
	grid, err := sim.NewGrid(float64(g.cfg.Screen.Width), float64(g.cfg.Screen.Height), g.cfg.Grid.Size)
	if err != nil {
		return fmt.Errorf("dodge: %w", err)
	}
	session, err := sim.NewSession(sim.Config{
		Grid:        grid,
		Table:       g.table,
		StartScore:  g.cfg.StartScore(),
		PlayerColor: g.cfg.Player.PaletteColor(PlayerColor),
	}, rand.New(rand.NewSource(rt.Seed)), g.clock)
	if err != nil {
		return fmt.Errorf("dodge: %w", err)
	}

	g.runtime = rt
	g.session = session
	g.lastWaves = 0
	g.lastLevel = session.Level()
	g.lost = false

	g.logger.Debug("session started", "seed", rt.Seed, "grid", grid.Size(), "score", session.Score())
	return nil
}

// Step advances the game by one tick.
// A non-nil StepResult.Err is fatal; the host must stop.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{Err: fmt.Errorf("dodge: Step called before Reset")}
	}

	if err := g.session.Update(in); err != nil {
		g.logger.Error("session failed", "score", g.session.Score(), "err", err)
		return core.StepResult{State: g.State(), Err: err}
	}
	g.observe()

	return core.StepResult{State: g.State()}
}

// observe logs what changed during the last update.
func (g *Game) observe() {
	s := g.session
	if waves := s.Waves(); waves != g.lastWaves {
		g.lastWaves = waves
		g.logger.Debug("wave spawned", "wave", waves, "level", s.Level(), "asteroids", len(s.Asteroids()))
	}
	if level := s.Level(); level != g.lastLevel {
		g.lastLevel = level
		g.logger.Info("level up", "level", level, "score", s.Score())
	}
	if s.Lost() && !g.lost {
		g.lost = true
		g.logger.Info("game over", "score", s.Score(), "level", s.Level(), "waves", s.Waves())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.Lost(),
	}
}
