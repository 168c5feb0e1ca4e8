package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets, easiest first.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name case-insensitively.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// StartScoreForPreset returns the score a session starts from. Harder presets
// skip the first brackets of the level table.
func StartScoreForPreset(preset DifficultyPreset) int {
	if p, err := ParsePreset(string(preset)); err == nil {
		preset = p
	}
	switch preset {
	case DifficultyNormal:
		return 200
	case DifficultyHard:
		return 450
	default:
		return 0
	}
}
