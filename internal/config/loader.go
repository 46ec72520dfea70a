package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userDir is the per-user directory, under home, holding configs/.
const userDir = ".lcd-invaders"

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.lcd-invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "invaders.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &embedded); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable, malformed or invalid
// files are skipped so the next location in the search order is used.
func tryLoad(path string) (InvadersConfig, bool) {
	cfg := DefaultInvadersConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, "configs", filename)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// The normal preset keeps the loaded values.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Enemy.FireWait = 8
		cfg.Formation.SpeedMultiplier = 1.1
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Enemy.FireWait = 3
		cfg.Formation.Velocity = 0.75
		cfg.Formation.SpeedMultiplier = 1.3
	case DifficultyFixed:
		cfg.Formation.SpeedMultiplier = 1.0
	}
}
