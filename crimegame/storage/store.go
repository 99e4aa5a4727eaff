package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/engine"
)

// ErrNoSave is returned by Load when the backend holds no save document
// for the configured key. Callers treat it as "fresh account", not a fault.
var ErrNoSave = errors.New("storage: no save found")

// Store persists the full game state as a single versioned document.
type Store interface {
	Load(ctx context.Context) (*engine.GameState, error)
	Save(ctx context.Context, state *engine.GameState) error
	Close() error
}

func encodeState(state *engine.GameState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode save: %w", err)
	}
	return data, nil
}

func decodeState(data []byte) (*engine.GameState, error) {
	var state engine.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	if state.SchemaVersion > engine.SchemaVersion {
		return nil, fmt.Errorf("save version %d is newer than supported %d", state.SchemaVersion, engine.SchemaVersion)
	}
	return &state, nil
}

// MemoryStore keeps the save document in process memory only. It is the
// last-resort backend when both sqlite and the file fallback are
// unavailable; progress survives the session but not a restart.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*engine.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoSave
	}
	return decodeState(m.data)
}

func (m *MemoryStore) Save(_ context.Context, state *engine.GameState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Close() error { return nil }
