package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogout "bloom/internal/modules/catalog/adapter/out"
	"bloom/internal/modules/catalog/domain"
)

func TestEmbeddedCatalogShape(t *testing.T) {
	t.Parallel()
	cat, err := catalogout.NewEmbeddedCatalogSource().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40, cat.Len())
	first := cat.Challenges()[0]
	assert.Equal(t, "breath-3", first.ID)
	assert.Equal(t, domain.CategoryRest, first.Category)

	walk, ok := cat.Challenge("walk-10")
	require.True(t, ok)
	assert.Equal(t, 10, walk.DurationMin)
	assert.Equal(t, domain.EnergyMedium, walk.Energy)

	assert.Len(t, cat.Goals(), 5)
	assert.Equal(t, "creativity", cat.DefaultGoalID())
	calm, ok := cat.Goal("calm")
	require.True(t, ok)
	assert.Equal(t, []domain.Category{domain.CategoryRest, domain.CategoryMental}, calm.Categories)

	assert.NotEmpty(t, cat.PhraseFor("2026-01-01"))
}

func TestFileCatalogSourceValidates(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
challenges:
  - {id: nap, title: Nap, category: rest, duration_min: 10, energy: low, prompt: Rest.}
`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`
challenges:
  - {id: nap, title: Nap, category: sleep, duration_min: 10, energy: low}
`), 0o644))

	cat, err := catalogout.NewFileCatalogSource(good).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, err = catalogout.NewFileCatalogSource(bad).Load(context.Background())
	assert.Error(t, err)

	_, err = catalogout.NewFileCatalogSource(filepath.Join(dir, "missing.yaml")).Load(context.Background())
	assert.Error(t, err)
}
