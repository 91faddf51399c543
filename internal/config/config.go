// Package config provides YAML-based configuration loading and difficulty
// presets for the racketball game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/racketball/internal/arena"
)

// ErrInvalid is returned when a configuration cannot produce a playable game.
var ErrInvalid = errors.New("config: invalid configuration")

// RacketConfig contains all configuration for the racket game.
type RacketConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
	Launch   LaunchConfig   `yaml:"launch"`
}

// ArenaConfig defines the playing field in world units.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
	RacketWidth   float64 `yaml:"racket_width"`
	RacketHeight  float64 `yaml:"racket_height"`
	RacketOffset  float64 `yaml:"racket_offset"` // Racket center distance from the bottom edge
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Lift   float64 `yaml:"lift"` // Resting height above the racket center
}

// GameplayConfig defines round rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// InputConfig defines how motion samples and keys move the racket.
type InputConfig struct {
	GyroGain  float64 `yaml:"gyro_gain"`  // Multiplier applied to gyro deltas
	KeyStep   float64 `yaml:"key_step"`   // Racket travel per left/right key press
	QueueSize int     `yaml:"queue_size"` // Pending samples kept between ticks
}

// LaunchConfig defines the serve.
type LaunchConfig struct {
	Force       float64 `yaml:"force"`         // Launch speed in units per frame
	KeyTargetDX float64 `yaml:"key_target_dx"` // Keyboard aim offset from the ball
	KeyTargetY  float64 `yaml:"key_target_y"`  // Keyboard aim height
}

// Geometry converts the arena and ball sections into arena geometry.
func (c RacketConfig) Geometry() arena.Geometry {
	return arena.Geometry{
		Width:         c.Arena.Width,
		Height:        c.Arena.Height,
		WallThickness: c.Arena.WallThickness,
		RacketWidth:   c.Arena.RacketWidth,
		RacketHeight:  c.Arena.RacketHeight,
		RacketOffset:  c.Arena.RacketOffset,
		BallRadius:    c.Ball.Radius,
		BallLift:      c.Ball.Lift,
	}
}

// Validate reports configurations that cannot be played.
func (c RacketConfig) Validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("%w: gameplay.lives must be at least 1, got %d", ErrInvalid, c.Gameplay.Lives)
	}
	if c.Launch.Force <= 0 {
		return fmt.Errorf("%w: launch.force must be positive, got %v", ErrInvalid, c.Launch.Force)
	}
	if c.Input.QueueSize <= 0 {
		return fmt.Errorf("%w: input.queue_size must be positive, got %d", ErrInvalid, c.Input.QueueSize)
	}
	if c.Input.KeyStep <= 0 {
		return fmt.Errorf("%w: input.key_step must be positive, got %v", ErrInvalid, c.Input.KeyStep)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI value to a preset. An empty string selects no
// preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
