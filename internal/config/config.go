// Package config provides YAML-based configuration loading and difficulty
// presets for the dodge game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/dodge/internal/core"
)

// DodgeConfig contains all configuration for the dodge game.
type DodgeConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Grid       GridConfig       `yaml:"grid"`
	Session    SessionConfig    `yaml:"session"`
	Player     PlayerConfig     `yaml:"player"`
	Asteroid   GlyphConfig      `yaml:"asteroid"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the pixel surface the grid is projected onto.
// Collision distances are measured in these pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the logical board.
type GridConfig struct {
	Size int `yaml:"size"` // Cells per side
}

// SessionConfig defines per-session parameters.
type SessionConfig struct {
	StartScore int `yaml:"start_score"`
}

// GlyphConfig defines how an entity is drawn on terminal hosts.
type GlyphConfig struct {
	Glyph string `yaml:"glyph"`
}

// PlayerConfig adds a palette color to the player's glyph.
type PlayerConfig struct {
	GlyphConfig `yaml:",inline"`

	Color string `yaml:"color"` // Palette name: white, red, indigo, orange, green, blue, yellow, gray
}

// PaletteColor returns the configured color, or fallback if none is set.
func (p PlayerConfig) PaletteColor(fallback core.Color) core.Color {
	if c, ok := core.ParseColor(p.Color); ok {
		return c
	}
	return fallback
}

// Rune returns the first rune of the glyph, or fallback if it is empty.
func (g GlyphConfig) Rune(fallback rune) rune {
	r, _ := utf8.DecodeRuneInString(g.Glyph)
	if r == utf8.RuneError {
		return fallback
	}
	return r
}

// DifficultyConfig selects the starting point inside the fixed level table.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate reports the first malformed value in the configuration.
func (c DodgeConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Grid.Size <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %d", c.Grid.Size)
	}
	if c.Session.StartScore < 0 {
		return fmt.Errorf("config: start score must not be negative, got %d", c.Session.StartScore)
	}
	if utf8.RuneCountInString(c.Player.Glyph) > 1 || utf8.RuneCountInString(c.Asteroid.Glyph) > 1 {
		return errors.New("config: glyphs must be a single character")
	}
	if c.Player.Color != "" {
		if _, ok := core.ParseColor(c.Player.Color); !ok {
			return fmt.Errorf("config: unknown player color %q", c.Player.Color)
		}
	}
	if c.Difficulty.Preset != "" {
		if _, err := ParsePreset(string(c.Difficulty.Preset)); err != nil {
			return err
		}
	}
	return nil
}
