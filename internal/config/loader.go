package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacket loads the racket configuration.
// Search order: customPath -> ~/.racketball/configs/racket.yaml -> ./configs/racket.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadRacket(customPath string) (RacketConfig, error) {
	cfg := DefaultRacketConfig()

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
	if userCfgPath := userConfigPath("racket.yaml"); userCfgPath != "" {
		if loaded, ok := decodeFile(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := decodeFile(filepath.Join("configs", "racket.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultRacketConfig()
	if err := yaml.Unmarshal(defaultRacketYAML, &embedded); err != nil {
		return DefaultRacketConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// decodeFile reads a config file over the defaults. Missing or unparsable
// files report false so the search can continue.
func decodeFile(path string) (RacketConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RacketConfig{}, false
	}
	cfg := DefaultRacketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacketConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racketball", "configs", filename)
}

// ApplyRacketPreset modifies the config based on a difficulty preset.
func ApplyRacketPreset(cfg *RacketConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Arena.RacketWidth = 110
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Arena.RacketWidth = 60
	}
}
