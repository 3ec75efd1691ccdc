package config

import "github.com/vovakirdan/spiralfill/internal/core"

// DifficultyManager derives the spawn cadence from score or elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level in [0, 1].
func (d *DifficultyManager) Level(score int, ticks int) float64 {
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
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnInterval returns the delay between spawns in milliseconds. The base
// interval shrinks as the level rises but never drops below minMS.
func (d *DifficultyManager) SpawnInterval(baseMS, minMS int, score int, ticks int) int {
	level := d.Level(score, ticks)
	interval := int(float64(baseMS) / (1.0 + level*d.cfg.Scaling.SpeedMultiplier))
	if interval < minMS {
		interval = minMS
	}
	return max(interval, 1)
}
