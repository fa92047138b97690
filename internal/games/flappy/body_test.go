package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewPlayerBody(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewPlayerBody(cfg)

	if b.X != 72 {
		t.Errorf("X = %v, expected 72", b.X)
	}
	if b.Y != 244 {
		t.Errorf("Y = %v, expected 244", b.Y)
	}
	if b.Velocity != 0 {
		t.Errorf("Velocity = %v, expected 0", b.Velocity)
	}
}

func TestIntegrateFirstTick(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewPlayerBody(cfg)

	Integrate(&b, cfg.Physics)

	if !approx(b.Velocity, 0.4) {
		t.Errorf("Velocity = %v, expected 0.4", b.Velocity)
	}
	if !approx(b.Y, 244.4) {
		t.Errorf("Y = %v, expected 244.4", b.Y)
	}
	if b.X != 72 {
		t.Errorf("X = %v, expected 72 (x never changes)", b.X)
	}
}

func TestFlapOverridesVelocity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	tests := []struct {
		name     string
		velocity float64
	}{
		{"falling", 3.0},
		{"terminal", 6.0},
		{"rising", -4.0},
		{"at rest", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := PlayerBody{X: 72, Y: 200, Velocity: tt.velocity}
			Flap(&b, cfg.Physics)
			if b.Velocity != -8.5 {
				t.Errorf("Velocity = %v, expected -8.5", b.Velocity)
			}
			if b.Y != 200 {
				t.Errorf("Y = %v, expected 200 (flap does not move)", b.Y)
			}
		})
	}
}

func TestIntegrateCeilingStop(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := PlayerBody{X: 72, Y: 2, Velocity: -8.5}

	Integrate(&b, cfg.Physics)

	if b.Y != 0 {
		t.Errorf("Y = %v, expected 0 at the ceiling", b.Y)
	}
	if b.Velocity != 0 {
		t.Errorf("Velocity = %v, expected 0 at the ceiling", b.Velocity)
	}
}

func TestIntegrateTerminalVelocity(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := PlayerBody{X: 72, Y: 100, Velocity: 5.9}

	Integrate(&b, cfg.Physics)

	if b.Velocity != 6 {
		t.Errorf("Velocity = %v, expected cap of 6", b.Velocity)
	}
	// Position moves by the uncapped velocity of this tick
	if !approx(b.Y, 106.3) {
		t.Errorf("Y = %v, expected 106.3", b.Y)
	}

	for i := 0; i < 50; i++ {
		Integrate(&b, cfg.Physics)
		if b.Velocity > cfg.Physics.MaxFallSpeed {
			t.Fatalf("tick %d: Velocity = %v exceeds %v", i, b.Velocity, cfg.Physics.MaxFallSpeed)
		}
		if b.Y < 0 {
			t.Fatalf("tick %d: Y = %v is above the ceiling", i, b.Y)
		}
	}
}
