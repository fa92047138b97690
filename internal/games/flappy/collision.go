package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Collision classifies what the body hit.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionTopPipe
	CollisionBottomPipe
)

// String returns the collision name used in logs.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionTopPipe:
		return "top_pipe"
	case CollisionBottomPipe:
		return "bottom_pipe"
	default:
		return "unknown"
	}
}

// ClassifyCollision returns the first violation found, ground first, then
// obstacles in spawn order. There is no tolerance: any overlap is fatal.
func ClassifyCollision(body PlayerBody, field ObstacleField, cfg config.FlappyConfig) Collision {
	bodyBox := body.Box(cfg.Bird)

	if bodyBox.Bottom() >= cfg.GroundY() {
		return CollisionGround
	}

	for _, o := range field.Obstacles {
		if !bodyBox.OverlapsX(o.TopBox(cfg.Pipes)) {
			continue
		}
		if bodyBox.Y < o.GapTop {
			return CollisionTopPipe
		}
		if bodyBox.Bottom() > o.GapBottom(cfg.Pipes) {
			return CollisionBottomPipe
		}
	}
	return CollisionNone
}

// DetectCollision reports whether the body touches the ground or any obstacle.
func DetectCollision(body PlayerBody, field ObstacleField, cfg config.FlappyConfig) bool {
	return ClassifyCollision(body, field, cfg) != CollisionNone
}
