package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/engine"
)

// SaveRecord is the single-row document holding one account's save.
type SaveRecord struct {
	bun.BaseModel `bun:"table:saves"`

	Key       string `bun:"key,pk"`
	Version   int    `bun:"version,notnull"`
	Data      []byte `bun:"data,notnull"`
	UpdatedAt int64  `bun:"updated_at,notnull"`
}

// SQLiteStore persists the save document in a local sqlite database through
// bun. The whole state travels as one JSON blob keyed by the save key, so
// schema churn in the game state never needs a table migration.
type SQLiteStore struct {
	db  *bun.DB
	key string
}

func NewSQLiteStore(ctx context.Context, path, key string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	store := &SQLiteStore{db: db, key: key}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	if _, err := s.db.NewCreateTable().
		Model((*SaveRecord)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to create saves table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*engine.GameState, error) {
	var rec SaveRecord
	err := s.db.NewSelect().
		Model(&rec).
		Where("key = ?", s.key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("failed to load save: %w", err)
	}
	return decodeState(rec.Data)
}

func (s *SQLiteStore) Save(ctx context.Context, state *engine.GameState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	rec := &SaveRecord{
		Key:       s.key,
		Version:   state.SchemaVersion,
		Data:      data,
		UpdatedAt: time.Now().UnixMilli(),
	}
	if _, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (key) DO UPDATE").
		Set("version = EXCLUDED.version").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
