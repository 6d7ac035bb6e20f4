package docstore_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bloom/internal/platform/config"
	"bloom/internal/platform/docstore"
	apperrors "bloom/internal/platform/errors"
)

func TestBackendsRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fileStore, err := docstore.NewFileStore(filepath.Join(dir, "docs"))
	require.NoError(t, err)
	sqliteStore, err := docstore.NewSQLiteStore(filepath.Join(dir, "db", "bloom.db"))
	require.NoError(t, err)

	backends := map[string]docstore.Store{
		"memory": docstore.NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
	for name, store := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := store.Load(ctx, "bloom-profile")
			require.ErrorIs(t, err, apperrors.ErrNotFound)

			require.NoError(t, store.Save(ctx, "bloom-profile", []byte(`{"hasOnboarded":false}`)))
			require.NoError(t, store.Save(ctx, "bloom-profile", []byte(`{"hasOnboarded":true}`)))
			got, err := store.Load(ctx, "bloom-profile")
			require.NoError(t, err)
			assert.JSONEq(t, `{"hasOnboarded":true}`, string(got))
			require.NoError(t, store.Close())
		})
	}
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := docstore.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "bloom-journal", []byte(`{"entries":[]}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bloom-journal.json", entries[0].Name())
}

type countingStore struct {
	mu    sync.Mutex
	saves map[string]int
	last  map[string]string
}

func newCountingStore() *countingStore {
	return &countingStore{saves: map[string]int{}, last: map[string]string{}}
}

func (c *countingStore) Load(context.Context, string) ([]byte, error) {
	return nil, apperrors.ErrNotFound
}

func (c *countingStore) Save(_ context.Context, key string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saves[key]++
	c.last[key] = string(payload)
	return nil
}

func (c *countingStore) Close() error { return nil }

func (c *countingStore) snapshot(key string) (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves[key], c.last[key]
}

func TestDebouncedCoalescesBurstAndFlushesOnClose(t *testing.T) {
	t.Parallel()
	inner := newCountingStore()
	d := docstore.NewDebounced(inner, time.Hour, zap.NewNop())
	ctx := context.Background()

	for _, payload := range []string{`{"v":1}`, `{"v":2}`, `{"v":3}`} {
		require.NoError(t, d.Save(ctx, "bloom-challenges", []byte(payload)))
	}
	got, err := d.Load(ctx, "bloom-challenges")
	require.NoError(t, err)
	assert.Equal(t, `{"v":3}`, string(got))

	saves, _ := inner.snapshot("bloom-challenges")
	assert.Equal(t, 0, saves)

	require.NoError(t, d.Close())
	saves, last := inner.snapshot("bloom-challenges")
	assert.Equal(t, 1, saves)
	assert.Equal(t, `{"v":3}`, last)
	assert.NoError(t, d.Close())
}

func TestDebouncedFlushesAfterDelay(t *testing.T) {
	t.Parallel()
	inner := newCountingStore()
	d := docstore.NewDebounced(inner, 10*time.Millisecond, zap.NewNop())
	t.Cleanup(func() { _ = d.Close() })

	require.NoError(t, d.Save(context.Background(), "bloom-journal", []byte(`{"entries":[]}`)))
	assert.Eventually(t, func() bool {
		saves, _ := inner.snapshot("bloom-journal")
		return saves == 1
	}, time.Second, 5*time.Millisecond)
}

func TestOpenRejectsUnknownBackend(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	cfg.Backend = "etcd"
	_, err = docstore.Open(context.Background(), cfg, zap.NewNop())
	assert.ErrorIs(t, err, apperrors.ErrUnknownBackend)
}

func TestOpenFileBackend(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)
	store, err := docstore.Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), "bloom-profile", []byte(`{}`)))
	require.NoError(t, store.Close())

	_, err = os.Stat(filepath.Join(cfg.DataPath, ".bloom", "state", "bloom-profile.json"))
	assert.NoError(t, err)
}
