package docstore

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"bloom/internal/platform/config"
	apperrors "bloom/internal/platform/errors"
)

// Open builds the configured backend behind a Debounced writer.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (*Debounced, error) {
	inner, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("document store opened", zap.String("backend", cfg.Backend), zap.Duration("flush_delay", cfg.FlushDelay))
	return NewDebounced(inner, cfg.FlushDelay, log.Named("docstore")), nil
}

func openBackend(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile:
		return NewFileStore(filepath.Join(cfg.DataPath, ".bloom", "state"))
	case config.BackendSQLite:
		return NewSQLiteStore(cfg.DBPath)
	case config.BackendPostgres:
		return NewPostgresStore(ctx, cfg.PostgresDSN)
	case config.BackendRedis:
		return NewRedisStore(ctx, cfg.RedisURL)
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownBackend, cfg.Backend)
	}
}
