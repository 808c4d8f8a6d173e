// Package config provides file-based game configuration loading and
// difficulty management for the flappy arcade.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration cannot drive a session.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all configuration for the game.
// World units are terminal cells; time is in seconds.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics" toml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles" toml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player" toml:"player"`
	Background FlappyBackground `yaml:"background" toml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FlappyPhysics defines the agent's motion parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`               // Downward acceleration once playing, cells/s^2
	FlapImpulse  float64 `yaml:"flap_impulse" toml:"flap_impulse"`     // Vertical velocity set by a flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed" toml:"max_fall_speed"` // Terminal velocity, cells/s
}

// FlappyObstacles defines obstacle spawning and movement.
type FlappyObstacles struct {
	Speed         float64 `yaml:"speed" toml:"speed"`                   // Leftward speed, cells/s
	SpawnInterval float64 `yaml:"spawn_interval" toml:"spawn_interval"` // Seconds between spawns
	SpawnOffset   float64 `yaml:"spawn_offset" toml:"spawn_offset"`     // Spawn point past the right edge
	DespawnX      float64 `yaml:"despawn_x" toml:"despawn_x"`           // Obstacles left of this are removed
	Width         int     `yaml:"width" toml:"width"`
	GapSize       int     `yaml:"gap_size" toml:"gap_size"`
	TopMargin     int     `yaml:"top_margin" toml:"top_margin"`
	BottomMargin  int     `yaml:"bottom_margin" toml:"bottom_margin"`
}

// FlappyPlayer defines the agent's hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x" toml:"x"`
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// FlappyBackground defines the scrolling backdrop.
type FlappyBackground struct {
	Speed float64 `yaml:"speed" toml:"speed"` // Scroll speed, cells/s
	Width int     `yaml:"width" toml:"width"` // Wrap width of the repeating pattern
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`     // Added to speed factor at max difficulty
	GapReduction      int     `yaml:"gap_reduction" toml:"gap_reduction"`           // Gap size reduction at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction" toml:"interval_reduction"` // Spawn interval reduction (seconds) at max difficulty
}

// Validate reports the first value that would make a session unplayable.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: physics.gravity must be >= 0, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.FlapImpulse >= 0:
		return fmt.Errorf("%w: physics.flap_impulse must be negative (upward), got %v", ErrInvalidConfig, c.Physics.FlapImpulse)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("%w: physics.max_fall_speed must be > 0, got %v", ErrInvalidConfig, c.Physics.MaxFallSpeed)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacles.speed must be > 0, got %v", ErrInvalidConfig, c.Obstacles.Speed)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: obstacles.spawn_interval must be > 0, got %v", ErrInvalidConfig, c.Obstacles.SpawnInterval)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacles.width must be > 0, got %d", ErrInvalidConfig, c.Obstacles.Width)
	case c.Obstacles.GapSize <= c.Player.Height:
		return fmt.Errorf("%w: obstacles.gap_size (%d) must exceed player.height (%d)", ErrInvalidConfig, c.Obstacles.GapSize, c.Player.Height)
	case c.Obstacles.TopMargin < 0 || c.Obstacles.BottomMargin < 0:
		return fmt.Errorf("%w: obstacle margins must be >= 0", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player hitbox must be positive, got %dx%d", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	case c.Background.Width <= 0:
		return fmt.Errorf("%w: background.width must be > 0, got %d", ErrInvalidConfig, c.Background.Width)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. The empty string keeps the
// config's own difficulty block.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalidConfig, s)
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

// ApplyPreset modifies the config based on a difficulty preset.
// Presets turn progression on; "fixed" turns it off.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}
}
