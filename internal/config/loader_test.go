package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Run("platformer", func(t *testing.T) {
		var cfg PlatformerConfig
		if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
			t.Fatalf("embedded yaml: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
			t.Errorf("embedded platformer.yaml drifted from DefaultPlatformerConfig:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
		}
	})
	t.Run("pong", func(t *testing.T) {
		var cfg PongConfig
		if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
			t.Fatalf("embedded yaml: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
			t.Errorf("embedded pong.yaml drifted from DefaultPongConfig")
		}
	})
	t.Run("breakout", func(t *testing.T) {
		var cfg BreakoutConfig
		if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
			t.Fatalf("embedded yaml: %v", err)
		}
		if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
			t.Errorf("embedded breakout.yaml drifted from DefaultBreakoutConfig")
		}
	})
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 1000\n  max_dt: 0.05\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer: %v", err)
	}
	if cfg.Physics.Gravity != 1000 || cfg.Physics.MaxDT != 0.05 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Speed != 200 {
		t.Errorf("player speed = %v, expected default 200", cfg.Player.Speed)
	}
	if len(cfg.Stage.Platforms) == 0 {
		t.Error("stage layout should fall back to the default stage")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(path); err == nil {
		t.Error("malformed custom config should be an error")
	}
}

func TestDefaultYAML(t *testing.T) {
	for _, id := range []string{GamePlatformer, GamePong, GameBreakout} {
		data, err := DefaultYAML(id)
		if err != nil || len(data) == 0 {
			t.Errorf("DefaultYAML(%q) = %d bytes, %v", id, len(data), err)
		}
	}
	if _, err := DefaultYAML("snake"); err == nil {
		t.Error("DefaultYAML of unknown game should fail")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(good, defaultPongYAML, 0o644); err != nil {
		t.Fatal(err)
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [1"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		gameID  string
		path    string
		wantErr bool
	}{
		{"valid file", GamePong, good, false},
		{"malformed file", GamePlatformer, bad, true},
		{"missing file", GameBreakout, filepath.Join(dir, "none.yaml"), true},
		{"unknown game", "snake", good, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := Check(tc.gameID, tc.path); (err != nil) != tc.wantErr {
				t.Errorf("Check = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPresets(t *testing.T) {
	t.Run("platformer hard", func(t *testing.T) {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, DifficultyHard)
		if cfg.Gameplay.Lives != 2 || cfg.Enemy.Speed != 80 {
			t.Errorf("lives=%d enemy speed=%v", cfg.Gameplay.Lives, cfg.Enemy.Speed)
		}
	})
	t.Run("pong fixed disables progression", func(t *testing.T) {
		cfg := DefaultPongConfig()
		ApplyPongPreset(&cfg, DifficultyFixed)
		if cfg.Difficulty.Enabled {
			t.Error("fixed preset should disable difficulty")
		}
	})
	t.Run("breakout normal", func(t *testing.T) {
		cfg := DefaultBreakoutConfig()
		ApplyBreakoutPreset(&cfg, DifficultyNormal)
		if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.3 {
			t.Errorf("difficulty = %+v", cfg.Difficulty)
		}
		if cfg.Gameplay.Lives != 3 {
			t.Errorf("normal preset should keep default lives, got %d", cfg.Gameplay.Lives)
		}
	})
	t.Run("empty preset is a no-op", func(t *testing.T) {
		cfg := DefaultBreakoutConfig()
		ApplyBreakoutPreset(&cfg, "")
		if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
			t.Error("empty preset should not change the config")
		}
	})
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
	}{
		{"easy", DifficultyEasy},
		{"hard", DifficultyHard},
		{"fixed", DifficultyFixed},
		{"", ""},
		{"nightmare", ""},
	}
	for _, tc := range tests {
		if got := ParsePreset(tc.in); got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
