package storage

import (
	"context"
	"log/slog"
)

// Open picks the best available backend: sqlite first, the JSON file second,
// in-memory as the final degrade. It always returns a usable Store.
func Open(ctx context.Context, dbPath, filePath, key string) Store {
	store, err := NewSQLiteStore(ctx, dbPath, key)
	if err == nil {
		return store
	}
	slog.Warn("sqlite backend unavailable, falling back to file save",
		slog.String("path", dbPath),
		slog.Any("error", err),
	)

	fileStore, ferr := NewFileStore(filePath)
	if ferr == nil {
		return fileStore
	}
	slog.Error("file backend unavailable, progress will not survive restart",
		slog.String("path", filePath),
		slog.Any("error", ferr),
	)
	return NewMemoryStore()
}
