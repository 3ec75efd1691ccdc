// Package config loads and validates the SpiralFill board configuration
// from YAML, and scales the spawn cadence with difficulty.
package config

// SpiralConfig is the full game configuration.
type SpiralConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Palette    []string         `yaml:"palette"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Limits     LimitsConfig     `yaml:"limits"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig describes the board.
type GridConfig struct {
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	BlockChance float64   `yaml:"block_chance"`
	Blocked     []CellRef `yaml:"blocked"` // fixed layout; replaces random blocking when set
}

// CellRef names a board cell in config files.
type CellRef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpawnConfig controls how fast items appear while spawning.
type SpawnConfig struct {
	IntervalMS    int `yaml:"interval_ms"`
	MinIntervalMS int `yaml:"min_interval_ms"`
}

// LimitsConfig bounds the accepted board size.
type LimitsConfig struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// DifficultyConfig defines how the spawn cadence speeds up.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which the level reaches 1.0
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // spawn rate gain at max difficulty
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the starting difficulty level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// BlockChanceForPreset returns the share of blocked cells for a preset.
// The second result is false when the preset keeps the configured value.
func BlockChanceForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 0.10, true
	case DifficultyNormal:
		return 0.25, true
	case DifficultyHard:
		return 0.40, true
	default:
		return 0, false
	}
}
