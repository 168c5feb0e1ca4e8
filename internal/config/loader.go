package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "dodge.yaml"

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
//
// Files are decoded over the defaults, so a file may set only the keys it changes.
// A custom path must exist and be valid; the other locations are skipped when
// unreadable or malformed.
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDodge(data)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseDodge(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseDodge(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseDodge(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DodgeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return DodgeConfig{}, err
	}
	if cfg.Difficulty.Preset != "" {
		cfg.Difficulty.Preset, _ = ParsePreset(string(cfg.Difficulty.Preset))
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDodgePreset switches the config to a difficulty preset. The preset's
// start score replaces any explicit session.start_score.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	cfg.Session.StartScore = 0
}

// StartScore returns the score a new session starts from: the explicit
// session.start_score when set, otherwise the preset's.
func (c DodgeConfig) StartScore() int {
	if c.Session.StartScore > 0 {
		return c.Session.StartScore
	}
	return StartScoreForPreset(c.Difficulty.Preset)
}
