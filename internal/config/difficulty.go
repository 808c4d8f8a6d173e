package config

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Lower bounds that keep a session playable at max difficulty.
const (
	minGapSize       = 4
	minSpawnInterval = 0.5
)

// DifficultyManager calculates dynamic obstacle parameters based on score/time.
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

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// With progression disabled the level is 0 and every parameter stays at its base value.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
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
	}
	progress = core.ClampF(progress, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the obstacle speed for the current difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize returns the gap size for the current difficulty level.
func (d *DifficultyManager) GapSize(baseGap int, score int, ticks int) int {
	level := d.Level(score, ticks)
	result := baseGap - int(level*float64(d.cfg.Scaling.GapReduction))
	if result < minGapSize && baseGap >= minGapSize {
		result = minGapSize
	}
	return result
}

// SpawnInterval returns the seconds between spawns for the current difficulty level.
func (d *DifficultyManager) SpawnInterval(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	result := base - level*d.cfg.Scaling.IntervalReduction
	if result < minSpawnInterval && base >= minSpawnInterval {
		result = minSpawnInterval
	}
	return result
}
