package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration.
// Must stay in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: World{
			Width:        288,
			Height:       512,
			GroundHeight: 112,
		},
		Bird: Bird{
			Width:  34,
			Height: 24,
		},
		Physics: Physics{
			Gravity:      0.4,
			JumpStrength: -8.5,
			MaxFallSpeed: 6,
		},
		Pipes: Pipes{
			Width:         52,
			Gap:           140,
			Speed:         1.8,
			SpawnInterval: 1500 * time.Millisecond,
			MinHeight:     50,
		},
		Backdrop: Backdrop{
			Parallax: 0.05,
			Clouds:   3,
		},
		Audio: Audio{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
