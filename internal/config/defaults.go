package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Screen: ScreenConfig{
			Width:  1000,
			Height: 1000,
		},
		Grid: GridConfig{
			Size: 30,
		},
		Session: SessionConfig{
			StartScore: 0,
		},
		Player: PlayerConfig{
			GlyphConfig: GlyphConfig{Glyph: "A"},
			Color:       "yellow",
		},
		Asteroid:   GlyphConfig{Glyph: "O"},
		Difficulty: DifficultyConfig{Preset: DifficultyEasy},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
