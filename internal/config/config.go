// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris game and its autopilot.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid")

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Gravity    TetrisGravity    `yaml:"gravity"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisGravity defines how fast stones fall.
type TetrisGravity struct {
	IntervalTicks    int `yaml:"interval_ticks"`     // Ticks per row at the starting level
	MinIntervalTicks int `yaml:"min_interval_ticks"` // Fastest allowed fall
}

// TetrisScoring defines points awarded per landing.
type TetrisScoring struct {
	LineScores []int `yaml:"line_scores"` // Indexed by rows cleared
}

// AutopilotConfig controls the placement engine.
type AutopilotConfig struct {
	Enabled  bool           `yaml:"enabled"`
	HardDrop bool           `yaml:"hard_drop"` // Drop as soon as the stone is placed
	Weights  []WeightConfig `yaml:"weights"`   // Ordered heuristic table
}

// WeightConfig is one heuristic feature and its coefficient.
type WeightConfig struct {
	Feature string  `yaml:"feature"`
	Weight  float64 `yaml:"weight"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to fall speed at max difficulty
}

// Validate checks the settings the game cannot run without.
func (c TetrisConfig) Validate() error {
	if c.Gravity.IntervalTicks <= 0 {
		return fmt.Errorf("%w: gravity.interval_ticks must be positive", ErrInvalidConfig)
	}
	if c.Gravity.MinIntervalTicks <= 0 || c.Gravity.MinIntervalTicks > c.Gravity.IntervalTicks {
		return fmt.Errorf("%w: gravity.min_interval_ticks must be in [1, interval_ticks]", ErrInvalidConfig)
	}
	if len(c.Scoring.LineScores) < 2 {
		return fmt.Errorf("%w: scoring.line_scores needs at least 2 entries", ErrInvalidConfig)
	}
	names := lo.Map(c.Autopilot.Weights, func(w WeightConfig, _ int) string { return strings.ToLower(strings.TrimSpace(w.Feature)) })
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return fmt.Errorf("%w: autopilot.weights repeats %v", ErrInvalidConfig, dups)
	}
	return nil
}

// LineScore returns the points for clearing n rows in one landing.
func (c TetrisConfig) LineScore(n int) int {
	if n < 0 || n >= len(c.Scoring.LineScores) {
		return 0
	}
	return c.Scoring.LineScores[n]
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
