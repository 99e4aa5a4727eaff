package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/engine"
)

// FileStore writes the save document to a plain JSON file. It is the
// fallback when the sqlite backend cannot be opened, and the file format
// matches what decodeState accepts so backends stay interchangeable.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create save directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) Load(_ context.Context) (*engine.GameState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	return decodeState(data)
}

func (f *FileStore) Save(_ context.Context, state *engine.GameState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never corrupts the only save.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
