package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Session is everything that lives from game start to game over. It is
// created and discarded as a unit; nothing in it is ever partially reset.
type Session struct {
	Body  PlayerBody
	Field ObstacleField
	Score int
	Ticks uint64 // Active ticks simulated so far
}

// NewSession creates a fresh session: body at rest at the start position,
// no obstacles, zero score, spawn timer at 0.
func NewSession(cfg config.FlappyConfig) *Session {
	return &Session{
		Body: NewPlayerBody(cfg),
		Field: ObstacleField{
			Obstacles: make([]Obstacle, 0, 8),
		},
	}
}

// StepOutcome describes what happened during one active tick.
type StepOutcome struct {
	Spawned   bool
	Spawn     Obstacle
	Pruned    int
	Collision Collision
	Scored    int
}

// Advance runs one active tick over the session: integrate the body, move
// and prune obstacles, spawn if due, check collisions and, only if nothing
// was hit, update the score. now is session-relative.
func Advance(s *Session, now time.Duration, cfg config.FlappyConfig, rng RandSource) StepOutcome {
	var out StepOutcome
	s.Ticks++

	Integrate(&s.Body, cfg.Physics)

	out.Pruned = MoveAndPrune(&s.Field, cfg.Pipes)
	if SpawnDue(s.Field, now, cfg.Pipes) {
		out.Spawn = Spawn(&s.Field, now, cfg, rng)
		out.Spawned = true
	}

	out.Collision = ClassifyCollision(s.Body, s.Field, cfg)
	if out.Collision != CollisionNone {
		return out
	}

	out.Scored = UpdateScore(s.Body, &s.Field, cfg.Pipes.Width)
	s.Score += out.Scored
	return out
}
