package dodge

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge/sim"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, cfg config.DodgeConfig, opts ...Option) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(testEpoch)
	g, err := New(cfg, append([]Option{WithClock(clock)}, opts...)...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 42}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g, clock
}

// doomedTable spawns one asteroid per column on a one-cell grid, right on the player.
func doomedTable(t *testing.T) sim.Table {
	t.Helper()
	table, err := sim.NewTable(sim.Bracket{
		Until: sim.Unbounded,
		Level: sim.Level{Name: "X", Color: core.ColorRed, Speed: sim.R(1, 1), FillRatio: sim.R(1, 1)},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

func oneCellConfig() config.DodgeConfig {
	cfg := config.DefaultDodgeConfig()
	cfg.Grid.Size = 1
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Grid.Size = 0
	if _, err := New(cfg); err == nil {
		t.Error("New should reject a zero grid")
	}
}

func TestStepBeforeReset(t *testing.T) {
	g, err := New(config.DefaultDodgeConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if res := g.Step(core.NewInputFrame()); res.Err == nil {
		t.Error("Step before Reset should report an error")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 40 {
		case 5:
			inputs[i].Set(core.ActionLeft)
		case 25:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g, clock := newTestGame(t, config.DefaultDodgeConfig())
		for _, in := range inputs {
			clock.Advance(16 * time.Millisecond)
			res := g.Step(in)
			if res.Err != nil {
				t.Fatalf("Step failed: %v", res.Err)
			}
			if res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1, s2)
	}
	if s1.Waves == 0 {
		t.Error("expected at least one wave to spawn")
	}
}

func TestPresetStartsAtLevel(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	config.ApplyDodgePreset(&cfg, config.DifficultyHard)
	g, _ := newTestGame(t, cfg)

	state := g.State()
	if state.Score != 450 || state.Level != 4 {
		t.Errorf("hard preset state = %+v, expected score 450 at level 4", state)
	}
	if snap := g.Snapshot(); snap.LevelName != "L4" || snap.LevelColor != core.ColorGreen {
		t.Errorf("snapshot level = %s/%v, expected L4/GREEN", snap.LevelName, snap.LevelColor)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	var buf bytes.Buffer
	g, _ := newTestGame(t, oneCellConfig(), WithTable(doomedTable(t)), WithLogger(log.New(&buf)))

	res := g.Step(core.NewInputFrame())
	if res.Err != nil {
		t.Fatalf("Step failed: %v", res.Err)
	}
	if !res.State.GameOver {
		t.Fatal("asteroid spawned on the player should end the game")
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("expected a game over log line, got %q", buf.String())
	}

	if err := g.Reset(core.RuntimeConfig{Seed: 7}); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if state := g.State(); state.GameOver || state.Score != 0 {
		t.Errorf("state after restart = %+v, expected a fresh session", state)
	}
}

func TestRenderBoard(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	screen := core.NewScreen(80, 40)
	g.Render(screen)

	// 62x32 board centered on 80x40.
	ox, oy := 9, 4
	if screen.Get(ox, oy) != '┌' || screen.Get(ox+61, oy+31) != '┘' {
		t.Errorf("board frame not at (%d,%d):\n%s", ox, oy, screen.String())
	}
	if !strings.Contains(screen.Row(oy), "DODGE") || !strings.Contains(screen.Row(oy), "L0") {
		t.Errorf("top border = %q, expected title and level", screen.Row(oy))
	}
	if row := screen.Row(oy + 31); !strings.Contains(row, "Score: 0") {
		t.Errorf("bottom border = %q, expected score label", row)
	}

	// Player at (15,29): tile x 30, inner row 29.
	cell := screen.GetCell(ox+1+30, oy+1+29)
	if cell.Rune != 'A' || cell.Color != PlayerColor {
		t.Errorf("player cell = %+v, expected yellow 'A'", cell)
	}
}

func TestRenderAsteroids(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 40)
	g.Render(screen)

	asteroids := g.Snapshot().Asteroids
	if len(asteroids) == 0 {
		t.Skip("seed produced an empty first wave")
	}
	for _, a := range asteroids {
		cell := screen.GetCell(9+1+2*int(a.Pos.X), 4+1)
		if cell.Rune != 'O' || cell.Color != core.ColorWhite {
			t.Errorf("asteroid at %v drawn as %+v", a.Pos, cell)
		}
	}
}

func TestConfiguredPlayerColor(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Player.Color = "blue"
	g, _ := newTestGame(t, cfg)

	if c := g.Snapshot().Player.Color; c != core.ColorBlue {
		t.Errorf("player color = %v, expected BLUE", c)
	}
}

func TestRenderLostMessageInsideBox(t *testing.T) {
	g, _ := newTestGame(t, oneCellConfig(), WithTable(doomedTable(t)))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(81, 40)
	g.Render(screen)

	subtitle := fmt.Sprintf("Score: %d  |  R restart  |  Q quit", g.State().Score)
	boxW := len(subtitle) + 4
	boxX := (81 - boxW) / 2
	boxY := (40 - 5) / 2

	if c := screen.GetCell(boxX, boxY); c.Rune != '┌' {
		t.Errorf("box corner = %q, expected '┌'", c.Rune)
	}
	row := lineAt(screen, boxY+3)
	if !strings.Contains(row, "│ "+subtitle+" │") {
		t.Errorf("subtitle not centered in the box: %q", row)
	}
}

func lineAt(s *core.Screen, y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width(); x++ {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestRenderLost(t *testing.T) {
	g, _ := newTestGame(t, oneCellConfig(), WithTable(doomedTable(t)))
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 40)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU LOST") {
		t.Errorf("lost game should show YOU LOST:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	screen := core.NewScreen(30, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "TERMINAL TOO SMALL") {
		t.Errorf("expected a size warning:\n%s", screen.String())
	}
}

func TestRenderNarrowTiles(t *testing.T) {
	g, _ := newTestGame(t, config.DefaultDodgeConfig())
	screen := core.NewScreen(40, 34)
	g.Render(screen)

	// 32x32 board with one-character tiles.
	ox, oy := 4, 1
	if screen.Get(ox, oy) != '┌' {
		t.Fatalf("narrow board frame missing:\n%s", screen.String())
	}
	if screen.Get(ox+1+15, oy+1+29) != 'A' {
		t.Errorf("player not drawn on a one-character tile:\n%s", screen.String())
	}
}
