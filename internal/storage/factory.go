package storage

import (
	"context"
	"fmt"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/config"
)

// NewKeyValueStore opens the backend selected by cfg.TokenStore.
func NewKeyValueStore(ctx context.Context, cfg *config.Config, logger internal.Logger) (KeyValueStore, error) {
	switch cfg.TokenStore {
	case "file":
		return NewFileStore(cfg.TokenFile, logger)
	case "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.SQLitePath, logger)
	case "postgres":
		return NewPostgresStore(ctx, cfg.PostgresDSN, logger)
	}
	return nil, fmt.Errorf("storage: unknown backend %q", cfg.TokenStore)
}
