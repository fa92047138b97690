package audio

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal gone")
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestBellRingsSelectedCues(t *testing.T) {
	buf := &syncBuffer{}
	b := NewBell(buf, CueHit, CueScore)

	b.Play(CueFlap) // not selected
	b.Play(CueHit)
	b.Play(CueScore)

	waitFor(t, func() bool { return buf.Len() == 2 })
}

func TestBellDefaultsToHitOnly(t *testing.T) {
	b := NewBell(&syncBuffer{})
	if !b.cues[CueHit] || b.cues[CueFlap] || b.cues[CueDie] {
		t.Errorf("default cue set = %v, expected only hit", b.cues)
	}
}

func TestBellIgnoresWriteErrors(t *testing.T) {
	b := NewBell(failingWriter{}, CueHit)
	b.Play(CueHit) // must not panic or block

	var nilBell *Bell
	nilBell.Play(CueHit)
}

func TestMultiAndLogged(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	p := Multi{a, Logged{Next: b}, nil}

	p.Play(CueHit)
	p.Play(CueDie)

	for i, r := range []*Recorder{a, b} {
		got := r.Cues()
		if len(got) != 2 || got[0] != CueHit || got[1] != CueDie {
			t.Errorf("recorder %d got %v, expected [hit die]", i, got)
		}
	}
}

func TestCueString(t *testing.T) {
	names := map[Cue]string{CueFlap: "flap", CueScore: "score", CueHit: "hit", CueDie: "die", Cue(42): "unknown"}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("Cue(%d).String() = %q, expected %q", int(c), c.String(), want)
		}
	}
}
