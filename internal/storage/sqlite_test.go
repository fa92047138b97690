package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReplay(player string, score int, at time.Time) *replay.Replay {
	return &replay.Replay{
		Player: player,
		Score:  score,
		Ticks:  3,
		Frames: []replay.Frame{
			{At: 0, Actions: []core.Action{core.ActionStart}},
			{At: 16 * time.Millisecond, Actions: []core.Action{core.ActionFlap}},
			{At: 32 * time.Millisecond},
		},
		Draws:      []float64{0.25, 0.75},
		RecordedAt: at,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rp := sampleReplay("alice", 7, at)

	id, err := store.SaveReplay(rp)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id == 0 || rp.ID != id {
		t.Errorf("SaveReplay() id = %d, rp.ID = %d", id, rp.ID)
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if got.Player != "alice" || got.Score != 7 || got.Ticks != 3 {
		t.Errorf("Replay() = %s/%d/%d, expected alice/7/3", got.Player, got.Score, got.Ticks)
	}
	if !reflect.DeepEqual(got.Frames, rp.Frames) {
		t.Errorf("Frames = %+v, expected %+v", got.Frames, rp.Frames)
	}
	if !reflect.DeepEqual(got.Draws, rp.Draws) {
		t.Errorf("Draws = %v, expected %v", got.Draws, rp.Draws)
	}
	if !got.RecordedAt.Equal(at) {
		t.Errorf("RecordedAt = %v, expected %v", got.RecordedAt, at)
	}
}

func TestStoreReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Replay(42); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay() error = %v, expected ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(42); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("DeleteReplay() error = %v, expected ErrReplayNotFound", err)
	}
}

func TestStoreListReplays(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, score := range []int{3, 10, 1} {
		if _, err := store.SaveReplay(sampleReplay("p", score, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.ListReplays(10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("len(ListReplays()) = %d, expected 3", len(list))
	}

	// Newest first
	wantScores := []int{1, 10, 3}
	for i, want := range wantScores {
		if list[i].Score != want {
			t.Errorf("list[%d].Score = %d, expected %d", i, list[i].Score, want)
		}
	}

	limited, err := store.ListReplays(2)
	if err != nil {
		t.Fatalf("ListReplays(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("len(ListReplays(2)) = %d, expected 2", len(limited))
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)
	id, err := store.SaveReplay(sampleReplay("p", 1, time.Now()))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.Replay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay() after delete error = %v, expected ErrReplayNotFound", err)
	}
}
