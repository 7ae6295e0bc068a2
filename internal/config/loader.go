package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Game ids with a YAML configuration.
const (
	GamePlatformer = "platformer"
	GamePong       = "pong"
	GameBreakout   = "breakout"
)

// load resolves configuration for gameID.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files are decoded over the hardcoded defaults, so a partial file only
// overrides the keys it names.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

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

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = defaults()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = defaults()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
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

// UserConfigPath returns where a user's config for gameID lives, or empty
// if home is unavailable.
func UserConfigPath(gameID string) string {
	return userConfigPath(gameID + ".yaml")
}

// Check parses the config file at path as gameID's configuration.
func Check(gameID, path string) error {
	var err error
	switch gameID {
	case GamePlatformer:
		_, err = LoadPlatformer(path)
	case GamePong:
		_, err = LoadPong(path)
	case GameBreakout:
		_, err = LoadBreakout(path)
	default:
		err = fmt.Errorf("no configuration for game %q", gameID)
	}
	return err
}

// LoadPlatformer loads platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load(GamePlatformer, customPath, defaultPlatformerYAML, DefaultPlatformerConfig)
}

// LoadPong loads Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	return load(GamePong, customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load(GameBreakout, customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
}

// DefaultYAML returns the embedded default configuration for gameID.
func DefaultYAML(gameID string) ([]byte, error) {
	switch gameID {
	case GamePlatformer:
		return defaultPlatformerYAML, nil
	case GamePong:
		return defaultPongYAML, nil
	case GameBreakout:
		return defaultBreakoutYAML, nil
	default:
		return nil, fmt.Errorf("no configuration for game %q", gameID)
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// The platformer has no progression, so presets only change lives and enemy speed.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemy.Speed = 35
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemy.Speed = 80
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyDifficultyPreset(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.CPU.MaxSkill = 0.7
	case DifficultyHard:
		cfg.CPU.MinSkill = 0.75
		cfg.CPU.MaxSkill = 0.95
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	applyDifficultyPreset(&cfg.Difficulty, preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 140
		cfg.Ball.Speed = 250
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 70
		cfg.Ball.Speed = 400
	}
}

func applyDifficultyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
