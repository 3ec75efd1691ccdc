package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/spiralfill/internal/engine"
)

// Load reads the configuration, validates it and clamps the board size.
// Search order: customPath -> ~/.spiralfill/config.yaml ->
// ./configs/spiralfill.yaml -> embedded default.
// JSON files are accepted too, since JSON is valid YAML.
func Load(customPath string) (SpiralConfig, error) {
	cfg, err := read(customPath)
	if err != nil {
		return cfg, err
	}
	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	Normalize(&cfg)
	return cfg, nil
}

func read(customPath string) (SpiralConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SpiralConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SpiralConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "spiralfill.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSpiralYAML)
	if err != nil {
		return DefaultSpiralConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so omitted keys keep
// their default values.
func Parse(data []byte) (SpiralConfig, error) {
	cfg := DefaultSpiralConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path of a file in the user config directory,
// or empty if the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spiralfill", filename)
}

// Validate checks cfg and returns an *engine.ConfigError for the first
// problem found. Zero size limits are filled with the defaults.
func Validate(cfg *SpiralConfig) error {
	if cfg.Limits.MinSize <= 0 {
		cfg.Limits.MinSize = DefaultMinSize
	}
	if cfg.Limits.MaxSize <= 0 {
		cfg.Limits.MaxSize = DefaultMaxSize
	}
	if cfg.Limits.MinSize < DefaultMinSize {
		return &engine.ConfigError{Field: "limits.min_size", Reason: fmt.Sprintf("must be at least %d", DefaultMinSize)}
	}
	if cfg.Limits.MaxSize < cfg.Limits.MinSize {
		return &engine.ConfigError{Field: "limits.max_size", Reason: "must not be below min_size"}
	}

	g := cfg.Grid
	if g.Width != g.Height {
		return &engine.ConfigError{Field: "grid", Reason: fmt.Sprintf("width (%d) must equal height (%d)", g.Width, g.Height)}
	}
	if g.Width < cfg.Limits.MinSize {
		return &engine.ConfigError{Field: "grid.width", Reason: fmt.Sprintf("must be at least %d, got %d", cfg.Limits.MinSize, g.Width)}
	}
	if g.BlockChance < 0 || g.BlockChance > 1 {
		return &engine.ConfigError{Field: "grid.block_chance", Reason: fmt.Sprintf("must be within [0,1], got %v", g.BlockChance)}
	}
	if _, err := cfg.Colors(); err != nil {
		return err
	}
	if cfg.Spawn.IntervalMS <= 0 {
		return &engine.ConfigError{Field: "spawn.interval_ms", Reason: "must be positive"}
	}
	if cfg.Spawn.MinIntervalMS < 0 || cfg.Spawn.MinIntervalMS > cfg.Spawn.IntervalMS {
		return &engine.ConfigError{Field: "spawn.min_interval_ms", Reason: "must be within [0, interval_ms]"}
	}
	switch cfg.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return &engine.ConfigError{Field: "difficulty.progression.type", Reason: fmt.Sprintf("unknown type %q", cfg.Difficulty.Progression.Type)}
	}
	return nil
}

// Normalize clamps the board size into the configured limits.
func Normalize(cfg *SpiralConfig) {
	w := clampInt(cfg.Grid.Width, cfg.Limits.MinSize, cfg.Limits.MaxSize)
	h := clampInt(cfg.Grid.Height, cfg.Limits.MinSize, cfg.Limits.MaxSize)
	if w != cfg.Grid.Width || h != cfg.Grid.Height {
		cfg.Grid.Width, cfg.Grid.Height = w, h
		cfg.fitBlocked()
	}
}

// SetSize overrides both board dimensions. Fixed blocked cells that no
// longer fit, or that would cover the new center, are dropped.
func (c *SpiralConfig) SetSize(n int) {
	c.Grid.Width = n
	c.Grid.Height = n
	c.fitBlocked()
}

func (c *SpiralConfig) fitBlocked() {
	if len(c.Grid.Blocked) == 0 {
		return
	}
	w, h := c.Grid.Width, c.Grid.Height
	center := engine.CenterOf(w, h)
	kept := c.Grid.Blocked[:0:0]
	for _, ref := range c.Grid.Blocked {
		if ref.X < 0 || ref.X >= w || ref.Y < 0 || ref.Y >= h {
			continue
		}
		if engine.C(ref.X, ref.Y) == center {
			continue
		}
		kept = append(kept, ref)
	}
	if len(kept) == 0 {
		// The layout stays fixed: an empty one must not fall back to random blocking.
		c.Grid.BlockChance = 0
	}
	c.Grid.Blocked = kept
}

// Colors resolves the palette names.
func (c SpiralConfig) Colors() ([]engine.Color, error) {
	if len(c.Palette) == 0 {
		return nil, &engine.ConfigError{Field: "palette", Reason: "must contain at least one color"}
	}
	out := make([]engine.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		color, err := engine.ParseColor(name)
		if err != nil {
			return nil, &engine.ConfigError{Field: "palette", Reason: err.Error()}
		}
		out = append(out, color)
	}
	return out, nil
}

// BlockedCells converts the fixed layout to engine coordinates.
func (c SpiralConfig) BlockedCells() []engine.Coord {
	if len(c.Grid.Blocked) == 0 {
		return nil
	}
	out := make([]engine.Coord, len(c.Grid.Blocked))
	for i, ref := range c.Grid.Blocked {
		out[i] = engine.C(ref.X, ref.Y)
	}
	return out
}

// ApplyPreset modifies cfg for a difficulty preset.
func ApplyPreset(cfg *SpiralConfig, preset DifficultyPreset) {
	if chance, ok := BlockChanceForPreset(preset); ok {
		cfg.Grid.BlockChance = chance
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// ParsePreset validates a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
