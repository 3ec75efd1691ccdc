package spiralfill

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spiralfill/internal/config"
)

// Package-level settings applied on the next Reset. The CLI sets them from
// flags before the platform creates the game.
var (
	configPath   string
	preset       config.DifficultyPreset
	sizeOverride int
	logger       = log.New(io.Discard)
)

// SetConfigPath sets an explicit config file. Empty uses the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects a difficulty preset. Empty keeps the config values.
func SetDifficulty(p config.DifficultyPreset) {
	preset = p
}

// SetBoardSize overrides the configured board size. 0 keeps the config.
func SetBoardSize(n int) {
	sizeOverride = n
}

// GetBoardSize returns the current board size override.
func GetBoardSize() int {
	return sizeOverride
}

// SetLogger routes game debug logs. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// loadConfig resolves the effective configuration for a new board.
// Non-zero arguments take precedence over the package settings.
func loadConfig(v Variant, p config.DifficultyPreset, size int) (config.SpiralConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.DefaultSpiralConfig(), err
	}
	if p == "" {
		p = preset
	}
	if p != "" {
		config.ApplyPreset(&cfg, p)
	}
	if size <= 0 {
		size = sizeOverride
	}
	if size > 0 {
		cfg.SetSize(size)
		config.Normalize(&cfg)
	}
	if v == VariantOpen {
		cfg.Grid.BlockChance = 0
		cfg.Grid.Blocked = nil
	}
	return cfg, nil
}
