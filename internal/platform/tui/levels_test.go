package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dodge/internal/games/dodge/sim"
)

func TestScoreRange(t *testing.T) {
	table := sim.DefaultTable()
	expected := []string{"0-99", "100-199", "200-349", "350-449", "450-549", "550+"}
	for i, want := range expected {
		if got := ScoreRange(table, i); got != want {
			t.Errorf("ScoreRange(%d) = %q, expected %q", i, got, want)
		}
	}
	if ScoreRange(table, len(expected)) != "" {
		t.Error("out of range bracket should format as empty")
	}
}

func TestLevelsTable(t *testing.T) {
	out := LevelsTable(sim.DefaultTable())
	for _, want := range []string{"LEVEL", "L0", "L5", "550+", "1.8-2", "0.5-0.71", "INDIGO"} {
		if !strings.Contains(out, want) {
			t.Errorf("levels table missing %q:\n%s", want, out)
		}
	}
}
