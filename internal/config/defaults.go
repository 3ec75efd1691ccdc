package config

import (
	_ "embed"
)

//go:embed defaults/spiralfill.yaml
var defaultSpiralYAML []byte

// Size limits applied when a config leaves them out.
const (
	DefaultMinSize = 2
	DefaultMaxSize = 250
)

// DefaultSpiralConfig returns the built-in configuration.
func DefaultSpiralConfig() SpiralConfig {
	return SpiralConfig{
		Grid: GridConfig{
			Width:       9,
			Height:      9,
			BlockChance: 0.25,
		},
		Palette: []string{"blue", "red", "green"},
		Spawn: SpawnConfig{
			IntervalMS:    120,
			MinIntervalMS: 40,
		},
		Limits: LimitsConfig{
			MinSize: DefaultMinSize,
			MaxSize: DefaultMaxSize,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}
