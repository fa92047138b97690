// Package audio provides the fire-and-forget sound cue collaborator.
// Cues never report completion or failure back to the caller: a Player that
// cannot make a sound simply doesn't.
package audio

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Cue identifies a sound effect triggered by the simulation.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueHit
	CueDie
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	case CueDie:
		return "die"
	default:
		return "unknown"
	}
}

// Player plays cues. Play must not block the caller.
type Player interface {
	Play(c Cue)
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}

// Bell rings the terminal bell for the selected cues. Writes happen on their
// own goroutine so a slow terminal (or SSH channel) never stalls a tick;
// overlapping cues are allowed and write errors are dropped.
type Bell struct {
	w    io.Writer
	mu   sync.Mutex // serialises writes, not callers
	cues map[Cue]bool
}

// NewBell creates a bell player writing to w. With no cues given, only
// collisions ring: a bell per flap is unbearable in a terminal.
func NewBell(w io.Writer, cues ...Cue) *Bell {
	if len(cues) == 0 {
		cues = []Cue{CueHit}
	}
	b := &Bell{w: w, cues: make(map[Cue]bool, len(cues))}
	for _, c := range cues {
		b.cues[c] = true
	}
	return b
}

// Play rings the bell asynchronously if the cue is selected.
func (b *Bell) Play(c Cue) {
	if b == nil || b.w == nil || !b.cues[c] {
		return
	}
	go func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		_, _ = b.w.Write([]byte{'\a'})
	}()
}

// Logged decorates a player with debug logging of every cue.
type Logged struct {
	Next   Player
	Logger *log.Logger
}

// Play logs the cue and forwards it.
func (l Logged) Play(c Cue) {
	if l.Logger != nil {
		l.Logger.Debug("audio cue", "cue", c)
	}
	if l.Next != nil {
		l.Next.Play(c)
	}
}

// Multi fans a cue out to several players.
type Multi []Player

// Play forwards the cue to every player.
func (m Multi) Play(c Cue) {
	for _, p := range m {
		if p != nil {
			p.Play(c)
		}
	}
}

// Recorder keeps every cue it receives. Useful in tests and for headless runs.
type Recorder struct {
	mu   sync.Mutex
	cues []Cue
}

// Play records the cue.
func (r *Recorder) Play(c Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

// Cues returns a copy of the cues received so far.
func (r *Recorder) Cues() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}
