// Package docstore persists whole JSON aggregates under stable keys.
package docstore

import "context"

// Store loads and saves opaque documents. Load returns apperrors.ErrNotFound
// for keys that were never written.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, payload []byte) error
	Close() error
}
