package sim

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dodge/internal/core"
)

var sessionEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, startScore int) (*Session, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(sessionEpoch)
	s, err := NewSession(Config{
		Grid:        mustGrid(t, 1000, 1000, 30),
		Table:       DefaultTable(),
		StartScore:  startScore,
		PlayerColor: core.ColorYellow,
	}, rand.New(rand.NewSource(42)), clock)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s, clock
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewSessionPlacesPlayer(t *testing.T) {
	s, _ := newTestSession(t, 0)

	if p := s.Player().Pos; p != core.V(15, 29) {
		t.Errorf("player starts at %v, expected (15,29)", p)
	}
	if s.Status() != StatusRunning || s.Lost() {
		t.Error("new session should be running")
	}
	if s.Score() != 0 || len(s.Asteroids()) != 0 {
		t.Error("new session should have no score and no asteroids")
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	g := mustGrid(t, 100, 100, 10)
	rng := rand.New(rand.NewSource(1))
	clock := core.NewManualClock(sessionEpoch)

	tests := []struct {
		name  string
		cfg   Config
		rng   *rand.Rand
		clock core.Clock
	}{
		{"no grid", Config{Table: DefaultTable()}, rng, clock},
		{"no table", Config{Grid: g}, rng, clock},
		{"no rng", Config{Grid: g, Table: DefaultTable()}, nil, clock},
		{"no clock", Config{Grid: g, Table: DefaultTable()}, rng, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewSession(tc.cfg, tc.rng, tc.clock); err == nil {
				t.Error("NewSession should fail")
			}
		})
	}
}

func TestFirstUpdateSpawnsWave(t *testing.T) {
	s, _ := newTestSession(t, 0)

	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Waves() != 1 {
		t.Errorf("Waves() = %d after first update, expected 1", s.Waves())
	}
	if s.Level() != 0 {
		t.Errorf("Level() = %d at score 0, expected 0", s.Level())
	}
	for _, a := range s.Asteroids() {
		if !a.InSpawnRow() || a.Color != core.ColorWhite {
			t.Errorf("unexpected first-wave asteroid %+v", a)
		}
	}
}

func TestStartScoreSelectsLevel(t *testing.T) {
	s, _ := newTestSession(t, 550)
	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Level() != 5 {
		t.Errorf("Level() = %d at score 550, expected 5", s.Level())
	}
	for _, a := range s.Asteroids() {
		if a.Color != core.ColorBlue {
			t.Errorf("asteroid color %v, expected blue", a.Color)
		}
	}
}

func TestCullScoresOncePerAsteroid(t *testing.T) {
	s, _ := newTestSession(t, 0)
	s.asteroids = []Asteroid{
		{Pos: core.V(15, 31), Vel: core.V(0, 2)},
		{Pos: core.V(3, 30), Vel: core.V(0, 2)},
		{Pos: core.V(4, 12), Vel: core.V(0, 2)},
	}

	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Score() != 2 {
		t.Errorf("Score() = %d, expected 2", s.Score())
	}
	for _, a := range s.Asteroids() {
		if !s.Grid().IsIn(a.Pos) {
			t.Errorf("asteroid %v outside the grid survived the cull", a.Pos)
		}
	}

	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Score() != 2 {
		t.Errorf("Score() = %d after second update, expected 2", s.Score())
	}
}

func TestReplenishWaitsForEmptySpawnRow(t *testing.T) {
	s, clock := newTestSession(t, 0)
	s.asteroids = []Asteroid{{Pos: core.V(3, 0.5), Vel: core.V(0, 1)}}

	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Waves() != 0 || len(s.Asteroids()) != 1 {
		t.Fatalf("no wave expected while the spawn row is occupied, got %d waves", s.Waves())
	}

	clock.Advance(500 * time.Millisecond)
	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if s.Waves() != 1 {
		t.Errorf("Waves() = %d once the spawn row cleared, expected 1", s.Waves())
	}
}

func TestUpdateIntegratesElapsedTime(t *testing.T) {
	s, clock := newTestSession(t, 0)
	s.asteroids = []Asteroid{{Pos: core.V(5, 10), Vel: core.V(0, 2)}}

	clock.Advance(500 * time.Millisecond)
	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if got := s.Asteroids()[0].Pos; got != core.V(5, 11) {
		t.Errorf("after 500ms at 2 cells/s asteroid at %v, expected (5,11)", got)
	}
}

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Vec
		actions  []core.Action
		expected core.Vec
	}{
		{"left", core.V(15, 29), []core.Action{core.ActionLeft}, core.V(14, 29)},
		{"up", core.V(15, 29), []core.Action{core.ActionUp}, core.V(15, 28)},
		{"down off the bottom is rejected", core.V(15, 29), []core.Action{core.ActionDown}, core.V(15, 29)},
		{"left off the edge is rejected", core.V(0, 29), []core.Action{core.ActionLeft}, core.V(0, 29)},
		{"right off the edge is rejected", core.V(29, 20), []core.Action{core.ActionRight}, core.V(29, 20)},
		{"up off the top is rejected", core.V(7, 0), []core.Action{core.ActionUp}, core.V(7, 0)},
		{"diagonal", core.V(15, 20), []core.Action{core.ActionRight, core.ActionUp}, core.V(16, 19)},
		{"opposites cancel", core.V(15, 20), []core.Action{core.ActionLeft, core.ActionRight}, core.V(15, 20)},
		{"corner keeps the legal axis", core.V(29, 29), []core.Action{core.ActionRight, core.ActionUp}, core.V(29, 28)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSession(t, 0)
			s.player.Pos = tc.start
			// Keep the spawn row busy and far away so no wave lands on the player.
			s.asteroids = []Asteroid{{Pos: core.V(1, 0), Vel: core.V(0, 1)}}

			if err := s.Update(press(tc.actions...)); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if got := s.Player().Pos; got != tc.expected {
				t.Errorf("player at %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollisionEndsSession(t *testing.T) {
	s, clock := newTestSession(t, 0)
	s.asteroids = []Asteroid{
		{Pos: core.V(15, 28.6), Vel: core.V(0, 0)},
		{Pos: core.V(2, 0), Vel: core.V(0, 0)},
	}

	if err := s.Update(press()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !s.Lost() || s.Status() != StatusLost {
		t.Fatal("asteroid on the player's cell should end the session")
	}

	before := s.Asteroids()
	score := s.Score()
	clock.Advance(time.Second)
	if err := s.Update(press(core.ActionLeft)); err != nil {
		t.Fatalf("Update after loss failed: %v", err)
	}
	if s.Score() != score || s.Player().Pos != core.V(15, 29) {
		t.Error("a lost session must not change")
	}
	if after := s.Asteroids(); after[0] != before[0] {
		t.Error("asteroids moved after the session was lost")
	}
}

func TestBrokenTableIsFatal(t *testing.T) {
	s, _ := newTestSession(t, 0)
	s.table = Table{}

	err := s.Update(press())
	if !errors.Is(err, ErrInvalidDifficultyScore) {
		t.Errorf("Update error = %v, expected ErrInvalidDifficultyScore", err)
	}
}
