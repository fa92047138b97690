package flappy

// BodyView is the renderable part of the body.
type BodyView struct {
	X, Y     float64
	W, H     float64
	Velocity float64
}

// ObstacleView is the renderable part of an obstacle.
type ObstacleView struct {
	X      float64
	GapTop float64
	Width  float64
	Gap    float64
	Passed bool
}

// WorldView describes the fixed world geometry.
type WorldView struct {
	Width   float64
	Height  float64
	GroundY float64
}

// Snapshot is the world state handed to the renderer after a tick.
// It never aliases machine state.
type Snapshot struct {
	State     State
	Tick      uint64
	Score     int
	Body      BodyView
	Obstacles []ObstacleView
	World     WorldView
}

// Snapshot returns the current state, frozen or not.
func (m *Machine) Snapshot() Snapshot {
	s := m.session
	snap := Snapshot{
		State: m.state,
		Tick:  s.Ticks,
		Score: s.Score,
		Body: BodyView{
			X:        s.Body.X,
			Y:        s.Body.Y,
			W:        m.cfg.Bird.Width,
			H:        m.cfg.Bird.Height,
			Velocity: s.Body.Velocity,
		},
		Obstacles: make([]ObstacleView, len(s.Field.Obstacles)),
		World: WorldView{
			Width:   m.cfg.World.Width,
			Height:  m.cfg.World.Height,
			GroundY: m.cfg.GroundY(),
		},
	}
	for i, o := range s.Field.Obstacles {
		snap.Obstacles[i] = ObstacleView{
			X:      o.X,
			GapTop: o.GapTop,
			Width:  m.cfg.Pipes.Width,
			Gap:    m.cfg.Pipes.Gap,
			Passed: o.Passed,
		}
	}
	return snap
}
