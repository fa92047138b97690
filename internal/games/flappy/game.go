// Package flappy implements a Flappy Bird-style obstacle-avoidance simulation.
// A body falls under gravity and must pass through gaps in scrolling pipes.
//
// The simulation is deterministic: time comes in as an explicit timestamp per
// tick and randomness through an injected RandSource. Drawing, sound and the
// tick scheduler belong to the host.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the game state machine's current state.
type State int

const (
	StateIdle     State = iota // Start prompt, ambient rendering only
	StatePlaying               // Simulation active
	StateGameOver              // Frozen until restart
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transition and spawn debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithAudio sets the cue player.
func WithAudio(p audio.Player) Option {
	return func(m *Machine) {
		if p != nil {
			m.audio = p
		}
	}
}

// Machine is the game state machine. It owns the current Session and drives
// it once per tick. It is not safe for concurrent use: the host calls Input
// and Tick from a single loop.
type Machine struct {
	cfg     config.FlappyConfig
	rng     RandSource
	audio   audio.Player
	logger  *log.Logger
	state   State
	session *Session

	epoch    time.Duration // Host timestamp of the Idle->Playing transition
	epochSet bool
}

// NewMachine creates a machine in the Idle state with a fresh session.
func NewMachine(cfg config.FlappyConfig, rng RandSource, opts ...Option) *Machine {
	m := &Machine{
		cfg:     cfg,
		rng:     rng,
		audio:   audio.Silent{},
		logger:  log.New(io.Discard),
		state:   StateIdle,
		session: NewSession(cfg),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Session returns the current session. Callers must treat it as read-only.
func (m *Machine) Session() *Session {
	return m.session
}

// Score returns the current (or final) score.
func (m *Machine) Score() int {
	return m.session.Score
}

// Config returns the configuration the machine runs with.
func (m *Machine) Config() config.FlappyConfig {
	return m.cfg
}

// Input applies one action immediately and returns the resulting state.
// Actions that make no sense in the current state are ignored:
//
//	Idle:     Start or Flap -> Playing
//	Playing:  Flap -> impulse
//	GameOver: Restart -> Idle (new session)
func (m *Machine) Input(a core.Action) State {
	switch m.state {
	case StateIdle:
		if a == core.ActionStart || a == core.ActionFlap {
			m.start()
		}
	case StatePlaying:
		if a == core.ActionFlap {
			Flap(&m.session.Body, m.cfg.Physics)
			m.audio.Play(audio.CueFlap)
		}
	case StateGameOver:
		if a == core.ActionRestart {
			m.restart()
		}
	}
	return m.state
}

// Tick applies the frame's pending actions in order, then advances the
// simulation to host time now.
//
// The returned bool reports whether a snapshot was produced: Idle ticks
// produce one without simulating, Playing ticks simulate and produce one,
// and nothing is produced once a collision has ended the session (including
// the colliding tick itself). Hosts should stop ticking in that case and
// call Input(core.ActionRestart) when the player asks for it.
func (m *Machine) Tick(now time.Duration, in core.InputFrame) (Snapshot, bool) {
	for _, a := range in.Actions() {
		m.Input(a)
	}

	switch m.state {
	case StateIdle:
		return m.Snapshot(), true
	case StateGameOver:
		return Snapshot{}, false
	}

	if !m.epochSet {
		m.epoch = now
		m.epochSet = true
	}

	out := Advance(m.session, now-m.epoch, m.cfg, m.rng)
	if out.Spawned {
		m.logger.Debug("obstacle spawned", "gap_top", out.Spawn.GapTop, "live", len(m.session.Field.Obstacles))
	}

	if out.Collision != CollisionNone {
		m.end(out.Collision)
		return Snapshot{}, false
	}

	for i := 0; i < out.Scored; i++ {
		m.audio.Play(audio.CueScore)
	}
	return m.Snapshot(), true
}

// start moves Idle -> Playing. The spawn timer restarts at the first
// Playing tick, whose timestamp becomes the session epoch.
func (m *Machine) start() {
	m.state = StatePlaying
	m.epochSet = false
	m.session.Field.LastSpawn = 0
	m.logger.Debug("state transition", "from", StateIdle, "to", StatePlaying)
}

// end moves Playing -> GameOver. The session is kept frozen for display.
func (m *Machine) end(c Collision) {
	m.state = StateGameOver
	m.audio.Play(audio.CueHit)
	m.audio.Play(audio.CueDie)
	m.logger.Debug("state transition",
		"from", StatePlaying, "to", StateGameOver,
		"collision", c, "score", m.session.Score, "ticks", m.session.Ticks)
}

// restart moves GameOver -> Idle, discarding the session as a whole.
func (m *Machine) restart() {
	m.state = StateIdle
	m.session = NewSession(m.cfg)
	m.epochSet = false
	m.logger.Debug("state transition", "from", StateGameOver, "to", StateIdle)
}
