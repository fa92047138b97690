package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// cloud is a decorative background element in world units.
type cloud struct {
	X, Y   float64
	Radius float64
}

// Backdrop owns the scroll offsets of the decorative layers. It is renderer
// state: nothing in the simulation reads it, and it has its own random source
// so decoration never consumes draws meant for obstacle placement.
type Backdrop struct {
	cfg     config.FlappyConfig
	rng     *rand.Rand
	groundX float64
	clouds  []cloud
}

// NewBackdrop creates a backdrop with clouds spread across the upper sky.
func NewBackdrop(cfg config.FlappyConfig, seed int64) *Backdrop {
	b := &Backdrop{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	w, h := cfg.World.Width, cfg.World.Height
	for i := 0; i < cfg.Backdrop.Clouds; i++ {
		// Evenly spaced start, like the hand-placed clouds of the original art
		frac := (float64(i) + 0.5) / float64(cfg.Backdrop.Clouds)
		b.clouds = append(b.clouds, cloud{
			X:      w * frac,
			Y:      h * (0.05 + 0.05*float64(i%3)),
			Radius: 20 + 5*float64(i%3),
		})
	}
	return b
}

// Advance scrolls the layers by one frame: the ground moves with the pipes so
// they look attached, clouds move at the parallax fraction.
func (b *Backdrop) Advance() {
	w, h := b.cfg.World.Width, b.cfg.World.Height
	speed := b.cfg.Pipes.Speed

	b.groundX -= speed
	if b.groundX <= -w {
		b.groundX = 0
	}

	for i := range b.clouds {
		c := &b.clouds[i]
		c.X -= speed * b.cfg.Backdrop.Parallax
		if c.X+c.Radius*2 < 0 {
			c.X = w + b.rng.Float64()*w*0.5
			c.Y = b.rng.Float64() * h * 0.2
			c.Radius = 20 + b.rng.Float64()*15
		}
	}
}

// GroundOffset returns the ground scroll offset in (-width, 0].
func (b *Backdrop) GroundOffset() float64 {
	return b.groundX
}
