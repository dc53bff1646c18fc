package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMuncher loads the game configuration.
// Search order: customPath -> ~/.muncher/configs/muncher.yaml ->
// ./configs/muncher.yaml -> embedded default.
func LoadMuncher(customPath string) (MuncherConfig, error) {
	var cfg MuncherConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("muncher.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/muncher.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMuncherYAML, &cfg); err != nil {
		return DefaultMuncherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".muncher", "configs", filename)
}

// ApplyMuncherPreset modifies the config based on a difficulty preset.
// Easy slows the ghosts down, makes them wander more, and grants extra
// lives; hard does the opposite. Normal leaves the config untouched.
func ApplyMuncherPreset(cfg *MuncherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.GhostSpeed = 92.0
		cfg.Rules.ChaseDeviation = 0.30
		cfg.Rules.Lives = 5
	case DifficultyHard:
		cfg.Physics.GhostSpeed = 108.0
		cfg.Rules.ChaseDeviation = 0.08
		cfg.Rules.Lives = 2
	}
}
