package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	tests := []struct {
		name  string
		score int
		want  float64
	}{
		{"start", 0, 0.0},
		{"halfway", 2500, 0.5},
		{"max", 5000, 1.0},
		{"past max", 9000, 1.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(tc.score, 0); got != tc.want {
				t.Errorf("Level(%d) = %v, want %v", tc.score, got, tc.want)
			}
		})
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultTetrisConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.4
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true for a disabled config")
	}
	if got := d.Level(5000, 0); got != 0.4 {
		t.Errorf("Level() = %v, want 0.4", got)
	}
}

func TestFallInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	tests := []struct {
		name     string
		base     int
		min      int
		score    int
		expected int
	}{
		{"start speed", 30, 3, 0, 30},
		{"max speed", 30, 3, 5000, 6},
		{"clamped to min", 30, 10, 5000, 10},
		{"never zero", 1, 0, 5000, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := d.FallInterval(tc.base, tc.min, tc.score, 0)
			if got != tc.expected {
				t.Errorf("FallInterval() = %d, expected %d", got, tc.expected)
			}
		})
	}
}
