package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      45.0,
			FlapImpulse:  -14.0,
			MaxFallSpeed: 25.0,
		},
		Obstacles: FlappyObstacles{
			Speed:         20.0,
			SpawnInterval: 2.0,
			SpawnOffset:   0,
			DespawnX:      -10,
			Width:         5,
			GapSize:       8,
			TopMargin:     3,
			BottomMargin:  3,
		},
		Player: FlappyPlayer{
			X:      10,
			Width:  2,
			Height: 2,
		},
		Background: FlappyBackground{
			Speed: 4.0,
			Width: 24,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				GapReduction:      3,
				IntervalReduction: 0.8,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
