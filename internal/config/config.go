// Package config provides YAML-based configuration loading for the game.
// The values form the tuning surface of the simulation: world geometry,
// physics constants and obstacle parameters.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) by Validate for unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	World    World    `yaml:"world"`
	Bird     Bird     `yaml:"bird"`
	Physics  Physics  `yaml:"physics"`
	Pipes    Pipes    `yaml:"pipes"`
	Backdrop Backdrop `yaml:"backdrop"`
	Audio    Audio    `yaml:"audio"`
}

// World defines the logical play area in world units.
type World struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// Bird defines the hitbox of the controlled body.
type Bird struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Physics defines the per-tick integration constants.
// Values are per tick, not per second: they assume a ~60 Hz host.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// Pipes defines obstacle geometry and the spawn policy.
type Pipes struct {
	Width         float64       `yaml:"width"`
	Gap           float64       `yaml:"gap"`
	Speed         float64       `yaml:"speed"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	MinHeight     float64       `yaml:"min_height"`
}

// Backdrop defines renderer-only decoration. It has no effect on the simulation.
type Backdrop struct {
	Parallax float64 `yaml:"parallax"` // Cloud speed as a fraction of pipe speed
	Clouds   int     `yaml:"clouds"`
}

// Audio selects whether cue playback is enabled.
type Audio struct {
	Enabled bool `yaml:"enabled"`
}

// GroundY returns the y-coordinate of the top of the ground.
func (c FlappyConfig) GroundY() float64 {
	return c.World.Height - c.World.GroundHeight
}

// MinGapTop returns the smallest allowed gap top.
func (c FlappyConfig) MinGapTop() float64 {
	return c.Pipes.MinHeight
}

// MaxGapTop returns the largest allowed gap top: the gap plus a minimum-height
// bottom pipe must still fit above the ground.
func (c FlappyConfig) MaxGapTop() float64 {
	return c.GroundY() - c.Pipes.Gap - c.Pipes.MinHeight
}

// BirdStartX returns the fixed horizontal position of the body.
func (c FlappyConfig) BirdStartX() float64 {
	return c.World.Width / 4
}

// BirdStartY returns the vertical start position (body centred in the world).
func (c FlappyConfig) BirdStartY() float64 {
	return c.World.Height/2 - c.Bird.Height/2
}

// Validate checks that the configuration describes a playable world.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.ground_height", c.World.GroundHeight},
		{"bird.width", c.Bird.Width},
		{"bird.height", c.Bird.Height},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"pipes.width", c.Pipes.Width},
		{"pipes.gap", c.Pipes.Gap},
		{"pipes.speed", c.Pipes.Speed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Physics.JumpStrength >= 0 {
		return fmt.Errorf("%w: physics.jump_strength must be negative (upwards), got %v", ErrInvalidConfig, c.Physics.JumpStrength)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("%w: physics.gravity must not be negative, got %v", ErrInvalidConfig, c.Physics.Gravity)
	}
	if c.Pipes.SpawnInterval <= 0 {
		return fmt.Errorf("%w: pipes.spawn_interval must be positive, got %v", ErrInvalidConfig, c.Pipes.SpawnInterval)
	}
	if c.Pipes.MinHeight < 0 {
		return fmt.Errorf("%w: pipes.min_height must not be negative, got %v", ErrInvalidConfig, c.Pipes.MinHeight)
	}
	if c.MaxGapTop() < c.MinGapTop() {
		return fmt.Errorf("%w: gap of %v does not fit between ceiling and ground with min_height %v",
			ErrInvalidConfig, c.Pipes.Gap, c.Pipes.MinHeight)
	}
	if c.Backdrop.Parallax < 0 || c.Backdrop.Clouds < 0 {
		return fmt.Errorf("%w: backdrop values must not be negative", ErrInvalidConfig)
	}
	return nil
}
