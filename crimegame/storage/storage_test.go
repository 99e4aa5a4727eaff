package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/engine"
)

func sampleState(t *testing.T) *engine.GameState {
	t.Helper()
	s := engine.NewInitialState(time.UnixMilli(1_700_000_000_000))
	s.Money = 1234.5
	s.NetWorth = 9999
	s.Scrap = 3
	s.Assets["street_crew"].Level = 4
	s.Assets["street_crew"].Owned = true
	s.CrimeCounts["petty_theft"] = 12
	s.Achievements = append(s.Achievements, "first_score")
	return &s
}

func roundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Load on empty backend error = %v, want ErrNoSave", err)
	}

	want := sampleState(t)
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save error = %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip diverged:\n got  %+v\n want %+v", got, want)
	}

	// Saving again overwrites, not appends.
	want.Money = 42
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("second Save error = %v", err)
	}
	got, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("second Load error = %v", err)
	}
	if got.Money != 42 {
		t.Errorf("money after overwrite = %v, want 42", got.Money)
	}
}

func TestMemoryStore(t *testing.T) {
	roundTrip(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "game.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore error = %v", err)
	}
	roundTrip(t, store)

	// No leftover temp file from the atomic write.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestFileStoreRejectsCorruptSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore error = %v", err)
	}
	if _, err := store.Load(context.Background()); err == nil || errors.Is(err, ErrNoSave) {
		t.Errorf("Load of corrupt save error = %v, want a decode failure", err)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.db")
	store, err := NewSQLiteStore(context.Background(), path, "slot-1")
	if err != nil {
		t.Fatalf("NewSQLiteStore error = %v", err)
	}
	defer store.Close()
	roundTrip(t, store)
}

func TestSQLiteStoreKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "game.db")

	first, err := NewSQLiteStore(ctx, path, "slot-1")
	if err != nil {
		t.Fatalf("NewSQLiteStore error = %v", err)
	}
	defer first.Close()
	if err := first.Save(ctx, sampleState(t)); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	second, err := NewSQLiteStore(ctx, path, "slot-2")
	if err != nil {
		t.Fatalf("NewSQLiteStore error = %v", err)
	}
	defer second.Close()
	if _, err := second.Load(ctx); !errors.Is(err, ErrNoSave) {
		t.Errorf("Load under a different key error = %v, want ErrNoSave", err)
	}
}

func TestDecodeRejectsNewerSchema(t *testing.T) {
	if _, err := decodeState([]byte(`{"schemaVersion": 99}`)); err == nil {
		t.Error("decode accepted a save from a newer schema")
	}
}
