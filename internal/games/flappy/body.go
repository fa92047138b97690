package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PlayerBody is the controlled body. X never changes during a session;
// the world scrolls past it instead.
type PlayerBody struct {
	X        float64
	Y        float64 // Top of the hitbox, grows downwards
	Velocity float64 // Vertical velocity per tick, negative = up
}

// NewPlayerBody places a body at rest at the start position.
func NewPlayerBody(cfg config.FlappyConfig) PlayerBody {
	return PlayerBody{
		X: cfg.BirdStartX(),
		Y: cfg.BirdStartY(),
	}
}

// Box returns the body's collision box.
func (b PlayerBody) Box(bird config.Bird) core.Box {
	return core.Box{X: b.X, Y: b.Y, W: bird.Width, H: bird.Height}
}

// Integrate advances the body by one tick.
//
// The step is per tick, not scaled by elapsed time: game speed follows the
// host's tick rate. Hosts are expected to tick at ~60 Hz.
func Integrate(b *PlayerBody, p config.Physics) {
	b.Velocity += p.Gravity
	b.Y += b.Velocity

	// Ceiling stop
	if b.Y < 0 {
		b.Y = 0
		b.Velocity = 0
	}

	// Terminal velocity
	if b.Velocity > p.MaxFallSpeed {
		b.Velocity = p.MaxFallSpeed
	}
}

// Flap replaces the vertical velocity with the jump impulse, whatever the body
// was doing before.
func Flap(b *PlayerBody, p config.Physics) {
	b.Velocity = p.JumpStrength
}
