package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '█'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GrassChar     = '▔'
	GroundChar    = '░'
	CloudChar     = '▒'
)

// viewport maps world units onto screen cells. Terminal cells are roughly
// twice as tall as wide, so the world keeps its aspect ratio at 2 columns per row.
type viewport struct {
	offX, offY int
	w, h       int
	sx, sy     float64
}

func fitViewport(screenW, screenH int, world config.World) viewport {
	h := screenH
	w := int(math.Round(float64(h) * world.Width / world.Height * 2))
	if w > screenW {
		w = screenW
		h = min(screenH, int(math.Round(float64(w)*world.Height/world.Width/2)))
	}
	w = max(w, 1)
	h = max(h, 1)
	return viewport{
		offX: (screenW - w) / 2,
		offY: (screenH - h) / 2,
		w:    w,
		h:    h,
		sx:   float64(w) / world.Width,
		sy:   float64(h) / world.Height,
	}
}

func (v viewport) col(x float64) int {
	return v.offX + int(math.Floor(x*v.sx))
}

func (v viewport) row(y float64) int {
	return v.offY + int(math.Floor(y*v.sy))
}

// set draws inside the viewport only, so scrolled content never leaks into
// the letterbox margins.
func (v viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if x < v.offX || x >= v.offX+v.w || y < v.offY || y >= v.offY+v.h {
		return
	}
	dst.SetColor(x, y, r, c)
}

// Renderer draws snapshots onto a character screen.
type Renderer struct {
	cfg      config.FlappyConfig
	backdrop *Backdrop
}

// NewRenderer creates a renderer with its own backdrop.
func NewRenderer(cfg config.FlappyConfig, seed int64) *Renderer {
	return &Renderer{
		cfg:      cfg,
		backdrop: NewBackdrop(cfg, seed),
	}
}

// Advance scrolls the decorative layers. Call once per produced snapshot.
func (r *Renderer) Advance() {
	r.backdrop.Advance()
}

// Render draws the snapshot to the screen.
func (r *Renderer) Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	v := fitViewport(dst.Width(), dst.Height(), r.cfg.World)

	r.drawClouds(dst, v)
	for _, o := range snap.Obstacles {
		r.drawPipe(dst, v, o, snap.World.GroundY)
	}
	r.drawBird(dst, v, snap.Body)
	r.drawGround(dst, v, snap.World)

	if snap.State != StateIdle {
		scoreText := fmt.Sprintf(" %d ", snap.Score)
		dst.DrawTextColor(v.offX+(v.w-len(scoreText))/2, v.offY, scoreText, core.ColorBrightWhite)
	}

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst, "FLAPPY", "Space to flap  |  Enter to start")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func (r *Renderer) drawClouds(dst *core.Screen, v viewport) {
	for _, c := range r.backdrop.clouds {
		y := v.row(c.Y)
		for x := v.col(c.X - c.Radius); x <= v.col(c.X+c.Radius); x++ {
			v.set(dst, x, y, CloudChar, core.ColorWhite)
		}
		for x := v.col(c.X - c.Radius/2); x <= v.col(c.X+c.Radius/2); x++ {
			v.set(dst, x, y-1, CloudChar, core.ColorWhite)
		}
	}
}

// drawPipe renders a single pipe pair.
func (r *Renderer) drawPipe(dst *core.Screen, v viewport, o ObstacleView, groundY float64) {
	left := v.col(o.X)
	right := max(v.col(o.X+o.Width), left+1)
	gapTop := v.row(o.GapTop)
	gapBottom := v.row(o.GapTop + o.Gap)
	ground := v.row(groundY)

	for x := left; x < right; x++ {
		for y := v.offY; y < gapTop; y++ {
			v.set(dst, x, y, PipeChar, core.ColorGreen)
		}
		v.set(dst, x, gapTop-1, PipeCapTop, core.ColorBrightGreen)

		for y := gapBottom; y < ground; y++ {
			v.set(dst, x, y, PipeChar, core.ColorGreen)
		}
		v.set(dst, x, gapBottom, PipeCapBottom, core.ColorBrightGreen)
	}
}

func (r *Renderer) drawBird(dst *core.Screen, v viewport, b BodyView) {
	left := v.col(b.X)
	right := max(v.col(b.X+b.W), left+1)
	top := v.row(b.Y)
	bottom := max(v.row(b.Y+b.H), top+1)

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			v.set(dst, x, y, BirdChar, core.ColorBrightYellow)
		}
	}
	v.set(dst, right-1, top, BeakChar, core.ColorOrange)
}

func (r *Renderer) drawGround(dst *core.Screen, v viewport, w WorldView) {
	top := v.row(w.GroundY)
	shift := int(math.Floor(-r.backdrop.GroundOffset() * v.sx))

	for x := v.offX; x < v.offX+v.w; x++ {
		// Stripes make the scroll visible
		grass := GrassChar
		if (x-v.offX+shift)%4 == 0 {
			grass = '▁'
		}
		v.set(dst, x, top, grass, core.ColorGreen)
		for y := top + 1; y < v.offY+v.h; y++ {
			v.set(dst, x, y, GroundChar, core.ColorBrown)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
