package core

import "time"

// RuntimeConfig contains configuration passed to the game host at initialization.
// The simulation itself runs in world units; these values only describe the
// terminal it is drawn on and how often it is ticked.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the scheduling interval for the configured tick rate.
// Non-positive rates fall back to 60 ticks per second.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}
