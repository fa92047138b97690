package replay

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Recorder owns a machine and records every session it plays. All input
// that should be replayable must go through Tick; the only action a host
// applies directly is Restart, which is never recorded.
type Recorder struct {
	machine *flappy.Machine
	rng     flappy.RandSource
	player  string
	frames  []Frame
	draws   []float64
	now     func() time.Time
}

// NewRecorder creates a machine whose random source is rng, tapped so every
// draw is kept.
func NewRecorder(cfg config.FlappyConfig, rng flappy.RandSource, player string, opts ...flappy.Option) *Recorder {
	r := &Recorder{
		rng:    rng,
		player: player,
		now:    time.Now,
	}
	r.machine = flappy.NewMachine(cfg, r, opts...)
	return r
}

// Float64 draws from the wrapped source and records the value.
func (r *Recorder) Float64() float64 {
	v := r.rng.Float64()
	r.draws = append(r.draws, v)
	return v
}

// Machine returns the recorded machine.
func (r *Recorder) Machine() *flappy.Machine {
	return r.machine
}

// Tick forwards to the machine. When this tick ended the session, the
// finished replay is returned as well.
func (r *Recorder) Tick(now time.Duration, in core.InputFrame) (flappy.Snapshot, bool, *Replay) {
	before := r.machine.State()
	if before == flappy.StateIdle {
		r.frames = r.frames[:0]
		r.draws = r.draws[:0]
	}

	snap, ok := r.machine.Tick(now, in)

	after := r.machine.State()
	if after == flappy.StateIdle || before == flappy.StateGameOver {
		return snap, ok, nil
	}

	r.frames = append(r.frames, Frame{At: now, Actions: in.Clone().Actions()})
	if after != flappy.StateGameOver {
		return snap, ok, nil
	}

	s := r.machine.Session()
	rp := &Replay{
		Player:     r.player,
		Score:      s.Score,
		Ticks:      s.Ticks,
		Frames:     append([]Frame(nil), r.frames...),
		Draws:      append([]float64(nil), r.draws...),
		RecordedAt: r.now(),
	}
	return snap, ok, rp
}
