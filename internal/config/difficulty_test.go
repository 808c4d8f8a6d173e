package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(20, 1000, 1000); got != 20 {
		t.Errorf("Speed() = %v, expected base 20", got)
	}
	if got := d.GapSize(8, 1000, 1000); got != 8 {
		t.Errorf("GapSize() = %v, expected base 8", got)
	}
	if got := d.SpawnInterval(2, 1000, 1000); got != 2 {
		t.Errorf("SpawnInterval() = %v, expected base 2", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultFlappyConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "score", MaxAt: 10}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		level float64
	}{
		{0, 0},
		{5, 0.5},
		{10, 1},
		{50, 1},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.level) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
	}

	if got := d.Speed(20, 10, 0); got != 40 {
		t.Errorf("Speed at max = %v, expected 40", got)
	}
	if got := d.GapSize(8, 10, 0); got != 5 {
		t.Errorf("GapSize at max = %v, expected 5", got)
	}
	if got := d.SpawnInterval(2, 10, 0); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("SpawnInterval at max = %v, expected 1.2", got)
	}
}

func TestDifficultyFloors(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1},
		Scaling:     ScalingConfig{GapReduction: 100, IntervalReduction: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.GapSize(8, 0, 5); got != minGapSize {
		t.Errorf("GapSize() = %d, expected floor %d", got, minGapSize)
	}
	if got := d.SpawnInterval(2, 0, 5); got != minSpawnInterval {
		t.Errorf("SpawnInterval() = %v, expected floor %v", got, minSpawnInterval)
	}
}
