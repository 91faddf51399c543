package config

import (
	_ "embed"
)

//go:embed defaults/racket.yaml
var defaultRacketYAML []byte

// DefaultRacketConfig returns the default racket configuration.
func DefaultRacketConfig() RacketConfig {
	return RacketConfig{
		Arena: ArenaConfig{
			Width:         360,
			Height:        640,
			WallThickness: 10,
			RacketWidth:   80,
			RacketHeight:  12,
			RacketOffset:  60,
		},
		Ball: BallConfig{
			Radius: 6,
			Lift:   20,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			GyroGain:  1,
			KeyStep:   12,
			QueueSize: 256,
		},
		Launch: LaunchConfig{
			Force:       10,
			KeyTargetDX: 90,
			KeyTargetY:  0,
		},
	}
}

// GetDefaultYAML returns the embedded default configuration file.
func GetDefaultYAML() []byte {
	return defaultRacketYAML
}
