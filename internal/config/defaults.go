package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: TetrisGravity{
			IntervalTicks:    30,
			MinIntervalTicks: 3,
		},
		Scoring: TetrisScoring{
			LineScores: []int{0, 40, 100, 300, 1200},
		},
		Autopilot: AutopilotConfig{
			Enabled:  false,
			HardDrop: false,
			Weights: []WeightConfig{
				{Feature: "complete_lines", Weight: 3.0},
				{Feature: "holes", Weight: -7.5},
				{Feature: "blockades", Weight: -3.5},
				{Feature: "bumpiness", Weight: -1.8},
				{Feature: "max_height", Weight: -1.0},
				{Feature: "avg_height", Weight: -4.5},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}
