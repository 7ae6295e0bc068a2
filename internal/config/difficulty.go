package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// elapsed is in whole seconds and only matters for "time" progression.
func (d *DifficultyManager) Level(score int, elapsed int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(elapsed) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales baseSpeed from 1x up to (1 + speed_multiplier)x at max level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, elapsed int) float64 {
	level := d.Level(score, elapsed)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Lerp interpolates between lo and hi by the current level.
func (d *DifficultyManager) Lerp(lo, hi float64, score int, elapsed int) float64 {
	return lo + (hi-lo)*d.Level(score, elapsed)
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
