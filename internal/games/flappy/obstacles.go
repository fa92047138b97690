package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RandSource supplies uniform values in [0, 1). *math/rand.Rand satisfies it;
// tests and replays inject scripted sources.
type RandSource interface {
	Float64() float64
}

// Obstacle is a pipe pair with a gap for the body to pass through.
type Obstacle struct {
	X      float64 // Left edge, decreasing every tick
	GapTop float64 // Y where the gap begins, fixed at creation
	Passed bool    // Set once the body has fully cleared the pipe
}

// GapBottom returns the y-coordinate where the bottom pipe begins.
func (o Obstacle) GapBottom(pipes config.Pipes) float64 {
	return o.GapTop + pipes.Gap
}

// TopBox returns the collision box of the upper pipe.
func (o Obstacle) TopBox(pipes config.Pipes) core.Box {
	return core.Box{X: o.X, Y: 0, W: pipes.Width, H: o.GapTop}
}

// BottomBox returns the collision box of the lower pipe, down to groundY.
func (o Obstacle) BottomBox(pipes config.Pipes, groundY float64) core.Box {
	top := o.GapBottom(pipes)
	return core.Box{X: o.X, Y: top, W: pipes.Width, H: groundY - top}
}

// ObstacleField holds the live obstacles in spawn order.
type ObstacleField struct {
	Obstacles []Obstacle
	LastSpawn time.Duration // Session-relative time of the last spawn
}

// MoveAndPrune scrolls every obstacle left by the pipe speed and drops the
// ones whose right edge has reached the left boundary. Returns the number pruned.
func MoveAndPrune(f *ObstacleField, pipes config.Pipes) int {
	for i := range f.Obstacles {
		f.Obstacles[i].X -= pipes.Speed
	}

	kept := f.Obstacles[:0]
	for _, o := range f.Obstacles {
		if o.X+pipes.Width > 0 {
			kept = append(kept, o)
		}
	}
	pruned := len(f.Obstacles) - len(kept)
	f.Obstacles = kept
	return pruned
}

// SpawnDue reports whether strictly more than the spawn interval has elapsed
// since the last spawn.
func SpawnDue(f ObstacleField, now time.Duration, pipes config.Pipes) bool {
	return now-f.LastSpawn > pipes.SpawnInterval
}

// GapTop draws a gap position uniformly from [MinGapTop, MaxGapTop].
func GapTop(cfg config.FlappyConfig, rng RandSource) float64 {
	lo, hi := cfg.MinGapTop(), cfg.MaxGapTop()
	return lo + rng.Float64()*(hi-lo)
}

// Spawn appends a new obstacle at the right edge of the world and restarts
// the spawn timer at now.
func Spawn(f *ObstacleField, now time.Duration, cfg config.FlappyConfig, rng RandSource) Obstacle {
	o := Obstacle{
		X:      cfg.World.Width,
		GapTop: GapTop(cfg, rng),
	}
	f.Obstacles = append(f.Obstacles, o)
	f.LastSpawn = now
	return o
}
