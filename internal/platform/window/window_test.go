package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
)

func keys(pressed ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range pressed {
			if p == k {
				return true
			}
		}
		return false
	}
}

func newTestHost(t *testing.T) *Host {
	t.Helper()
	clock := core.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	game, err := dodge.New(config.DefaultDodgeConfig(), dodge.WithClock(clock))
	if err != nil {
		t.Fatalf("dodge.New failed: %v", err)
	}
	host, err := NewHost(game, core.RuntimeConfig{ScreenW: 1000, ScreenH: 1000, TickRate: 60, Seed: 7}, nil)
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}
	return host
}

func TestFrameFrom(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		expected []core.Action
	}{
		{"nothing", nil, nil},
		{"arrow", []ebiten.Key{ebiten.KeyArrowLeft}, []core.Action{core.ActionLeft}},
		{"wasd", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, []core.Action{core.ActionUp, core.ActionRight}},
		{"vim", []ebiten.Key{ebiten.KeyJ}, []core.Action{core.ActionDown}},
		{"restart", []ebiten.Key{ebiten.KeyR}, []core.Action{core.ActionRestart}},
		{"escape quits", []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}},
	}

	all := []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown,
		core.ActionRestart, core.ActionQuit,
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := frameFrom(keys(tc.pressed...))
			want := map[core.Action]bool{}
			for _, a := range tc.expected {
				want[a] = true
			}
			for _, a := range all {
				if in.Has(a) != want[a] {
					t.Errorf("Has(%v) = %v, expected %v", a, in.Has(a), want[a])
				}
			}
		})
	}
}

func TestHostMovesPlayer(t *testing.T) {
	h := newTestHost(t)
	h.pressed = keys(ebiten.KeyArrowLeft)

	if err := h.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p := h.game.Snapshot().Player.Pos; p != core.V(14, 29) {
		t.Errorf("player at %v, expected (14,29)", p)
	}
}

func TestHostQuit(t *testing.T) {
	h := newTestHost(t)
	h.pressed = keys(ebiten.KeyQ)

	if err := h.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update error = %v, expected ebiten.Termination", err)
	}
}

func TestHostRestartIgnoredWhileRunning(t *testing.T) {
	h := newTestHost(t)
	h.pressed = keys(ebiten.KeyR)

	if err := h.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if snap := h.game.Snapshot(); snap.Waves != 1 {
		t.Errorf("restart while running should step the game, got %d waves", snap.Waves)
	}
}

func TestHostLayout(t *testing.T) {
	h := newTestHost(t)
	w, hgt := h.Layout(640, 480)
	if w != 1000 || hgt != 1000 {
		t.Errorf("Layout() = %dx%d, expected 1000x1000", w, hgt)
	}
}

func TestPaletteCoversColors(t *testing.T) {
	colors := []core.Color{
		core.ColorWhite, core.ColorRed, core.ColorIndigo, core.ColorOrange,
		core.ColorGreen, core.ColorBlue, core.ColorYellow, core.ColorGray,
	}
	for _, c := range colors {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette has no entry for %v", c)
		}
	}
	if RGBA(core.Color(255)) != palette[core.ColorDefault] {
		t.Error("unknown colors should fall back to the default")
	}
}
