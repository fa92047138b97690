// Package replay records game sessions and re-simulates them.
//
// A session is reproducible from two things: the timestamped input frames fed
// to the machine and the random draws its spawner consumed. Both are captured
// while playing and stored together.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// ErrDrawsExhausted is returned when a re-simulation needs more random
	// draws than were recorded.
	ErrDrawsExhausted = errors.New("replay: recorded draws exhausted")

	// ErrMismatch is returned by Verify when a re-simulation does not
	// reproduce the recorded result.
	ErrMismatch = errors.New("replay: result mismatch")
)

// Frame is one tick's worth of input.
type Frame struct {
	At      time.Duration `json:"at"`
	Actions []core.Action `json:"actions,omitempty"`
}

// Replay is a recorded session from the start frame to the collision frame.
type Replay struct {
	ID         int64
	Player     string
	Score      int
	Ticks      uint64
	Frames     []Frame
	Draws      []float64
	RecordedAt time.Time
}

// Result is the outcome of a re-simulation.
type Result struct {
	Score int
	Ticks uint64
	State flappy.State
}

// script replays recorded draws in order.
type script struct {
	draws []float64
	pos   int
	err   error
}

func (s *script) Float64() float64 {
	if s.pos >= len(s.draws) {
		s.err = ErrDrawsExhausted
		return 0
	}
	v := s.draws[s.pos]
	s.pos++
	return v
}

// Playback feeds a replay's frames to a fresh machine one tick at a time.
type Playback struct {
	rp      *Replay
	src     *script
	machine *flappy.Machine
	pos     int
}

// NewPlayback prepares a re-simulation of rp.
func NewPlayback(cfg config.FlappyConfig, rp *Replay, opts ...flappy.Option) *Playback {
	src := &script{draws: rp.Draws}
	return &Playback{
		rp:      rp,
		src:     src,
		machine: flappy.NewMachine(cfg, src, opts...),
	}
}

// Machine returns the machine being driven.
func (p *Playback) Machine() *flappy.Machine {
	return p.machine
}

// Replay returns the replay being played.
func (p *Playback) Replay() *Replay {
	return p.rp
}

// Done reports whether the session has ended or the frames ran out.
func (p *Playback) Done() bool {
	return p.pos >= len(p.rp.Frames) || p.machine.State() == flappy.StateGameOver
}

// Step feeds the next frame. It is a no-op once Done.
func (p *Playback) Step() (flappy.Snapshot, bool, error) {
	if p.Done() {
		return flappy.Snapshot{}, false, nil
	}
	f := p.rp.Frames[p.pos]
	p.pos++

	snap, ok := p.machine.Tick(f.At, core.NewInputFrame(f.Actions...))
	if p.src.err != nil {
		return flappy.Snapshot{}, false, fmt.Errorf("replay: frame %d: %w", p.pos-1, p.src.err)
	}
	return snap, ok, nil
}

// Result returns the outcome so far.
func (p *Playback) Result() Result {
	return Result{
		Score: p.machine.Score(),
		Ticks: p.machine.Session().Ticks,
		State: p.machine.State(),
	}
}

// Run re-simulates the replay with cfg. If observe is non-nil it receives
// every snapshot the machine emits.
func Run(cfg config.FlappyConfig, rp *Replay, observe func(flappy.Snapshot)) (Result, error) {
	p := NewPlayback(cfg, rp)
	for !p.Done() {
		snap, ok, err := p.Step()
		if err != nil {
			return Result{}, err
		}
		if ok && observe != nil {
			observe(snap)
		}
	}
	return p.Result(), nil
}

// Verify re-simulates the replay and checks that it ends in GameOver with
// the recorded score and tick count.
func Verify(cfg config.FlappyConfig, rp *Replay) (Result, error) {
	res, err := Run(cfg, rp, nil)
	if err != nil {
		return res, err
	}
	if res.State != flappy.StateGameOver {
		return res, fmt.Errorf("%w: session ended %s, expected %s", ErrMismatch, res.State, flappy.StateGameOver)
	}
	if res.Score != rp.Score || res.Ticks != rp.Ticks {
		return res, fmt.Errorf("%w: got score %d in %d ticks, recorded %d in %d",
			ErrMismatch, res.Score, res.Ticks, rp.Score, rp.Ticks)
	}
	return res, nil
}
