package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestFitViewport(t *testing.T) {
	world := config.DefaultFlappyConfig().World

	tests := []struct {
		name       string
		w, h       int
		wantW      int
		wantH      int
		wantOffX   int
		wantOffY   int
	}{
		{"wide terminal", 80, 24, 27, 24, 26, 0},
		{"narrow terminal", 20, 24, 20, 18, 0, 3},
		{"exact fit", 27, 24, 27, 24, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := fitViewport(tt.w, tt.h, world)
			if v.w != tt.wantW || v.h != tt.wantH {
				t.Errorf("size = %dx%d, expected %dx%d", v.w, v.h, tt.wantW, tt.wantH)
			}
			if v.offX != tt.wantOffX || v.offY != tt.wantOffY {
				t.Errorf("offset = (%d,%d), expected (%d,%d)", v.offX, v.offY, tt.wantOffX, tt.wantOffY)
			}
		})
	}
}

func TestRenderIdleOverlay(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	m := NewMachine(cfg, fixedRand(0.5))
	r := NewRenderer(cfg, 1)
	screen := core.NewScreen(80, 24)

	r.Render(screen, m.Snapshot())

	if !strings.Contains(screen.String(), "FLAPPY") {
		t.Error("idle screen should show the start prompt")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	m := NewMachine(cfg, fixedRand(0.5))
	m.Input(core.ActionStart)
	runUntilGameOver(t, m)
	r := NewRenderer(cfg, 1)
	screen := core.NewScreen(80, 24)

	r.Render(screen, m.Snapshot())

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over screen should show the banner")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("game over screen should show the final score")
	}
}

func TestRenderBirdAndPipes(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	m := NewMachine(cfg, fixedRand(0.5))
	m.Input(core.ActionStart)
	m.Session().Field.Obstacles = []Obstacle{{X: 200, GapTop: 100}}
	r := NewRenderer(cfg, 1)
	screen := core.NewScreen(80, 24)

	r.Render(screen, m.Snapshot())

	// Viewport is 27x24 at column 26; the body at (72, 244) lands on (32, 11)
	if c := screen.GetCell(32, 11); c.Rune != BirdChar || c.Color != core.ColorBrightYellow {
		t.Errorf("cell (32,11) = %q/%v, expected bird", c.Rune, c.Color)
	}
	// Pipe at x 200 starts at column 26+18; top pipe fills rows above the gap
	if c := screen.GetCell(44, 1); c.Rune != PipeChar || c.Color != core.ColorGreen {
		t.Errorf("cell (44,1) = %q/%v, expected pipe", c.Rune, c.Color)
	}
	// Inside the gap
	if c := screen.GetCell(44, 6); c.Rune == PipeChar {
		t.Errorf("cell (44,6) = %q, expected open gap", c.Rune)
	}
	// Letterbox stays empty
	if c := screen.GetCell(5, 20); c.Rune != ' ' {
		t.Errorf("cell (5,20) = %q, expected blank margin", c.Rune)
	}
}

func TestBackdropAdvance(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	b := NewBackdrop(cfg, 7)

	if len(b.clouds) != cfg.Backdrop.Clouds {
		t.Fatalf("len(clouds) = %d, expected %d", len(b.clouds), cfg.Backdrop.Clouds)
	}

	for i := 0; i < 5000; i++ {
		b.Advance()
		off := b.GroundOffset()
		if off > 0 || off <= -cfg.World.Width {
			t.Fatalf("advance %d: GroundOffset() = %v, outside (-%v, 0]", i, off, cfg.World.Width)
		}
		for _, c := range b.clouds {
			if c.X+c.Radius*2 < 0 {
				t.Fatalf("advance %d: cloud left the sky at x=%v", i, c.X)
			}
		}
	}
}
