package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := config.New("/tmp/bloom-data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/bloom-data", ".bloom", "bloom.db"), cfg.DBPath)
	assert.Equal(t, config.BackendFile, cfg.Backend)
	assert.NoError(t, cfg.Validate())

	_, err = config.New("")
	assert.Error(t, err)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	content := `timezone: UTC
log_level: debug
storage:
  backend: sqlite
  flush_delay: 50ms
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bloom.yaml"), []byte(content), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.BackendSQLite, cfg.Backend)
	assert.Equal(t, 50*time.Millisecond, cfg.FlushDelay)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bloom.yaml"), []byte("storage:\n  backend: sqlite\n"), 0o644))
	t.Setenv("BLOOM_STORAGE_BACKEND", "memory")
	t.Setenv("BLOOM_SEED", "42")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, cfg.Backend)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestValidateRejectsIncompleteBackends(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	require.NoError(t, err)

	cfg.Backend = config.BackendPostgres
	assert.Error(t, cfg.Validate())
	cfg.PostgresDSN = "postgres://localhost/bloom"
	assert.NoError(t, cfg.Validate())

	cfg.Backend = config.BackendRedis
	assert.Error(t, cfg.Validate())

	cfg.Backend = "etcd"
	assert.Error(t, cfg.Validate())
}
