package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogout "bloom/internal/modules/catalog/adapter/out"
	catalogservice "bloom/internal/modules/catalog/service"
	catalogusecase "bloom/internal/modules/catalog/usecase"
	profileoutadapter "bloom/internal/modules/profile/adapter/out"
	"bloom/internal/modules/profile/domain"
	profiledto "bloom/internal/modules/profile/dto"
	profilein "bloom/internal/modules/profile/port/in"
	"bloom/internal/modules/profile/usecase"
	"bloom/internal/platform/docstore"
	apperrors "bloom/internal/platform/errors"
	"bloom/internal/platform/tx"
)

func newProfile(t *testing.T) (profilein.Usecase, *docstore.MemoryStore) {
	t.Helper()
	svc, err := catalogservice.NewCatalogService(context.Background(), catalogout.NewEmbeddedCatalogSource())
	require.NoError(t, err)
	mem := docstore.NewMemoryStore()
	store := profileoutadapter.NewDocumentProfileStore(mem, nil)
	return usecase.NewInteractor(catalogusecase.NewInteractor(svc), store, tx.NewSerialManager(), nil), mem
}

func TestFreshProfileHasNoGoal(t *testing.T) {
	t.Parallel()
	uc, _ := newProfile(t)
	out, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profiledto.ProfileOutput{}, out)
}

func TestSetGoalAndOnboard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _ := newProfile(t)

	out, err := uc.SetGoal(ctx, profiledto.SetGoalInput{GoalID: "calm"})
	require.NoError(t, err)
	assert.Equal(t, "calm", out.GoalID)
	assert.Equal(t, "Find some calm", out.GoalTitle)
	assert.False(t, out.HasOnboarded)

	out, err = uc.CompleteOnboarding(ctx)
	require.NoError(t, err)
	assert.True(t, out.HasOnboarded)
	assert.Equal(t, "calm", out.GoalID)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestSetGoalRejectsUnknownOrEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, _ := newProfile(t)

	_, err := uc.SetGoal(ctx, profiledto.SetGoalInput{GoalID: "fame"})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	_, err = uc.SetGoal(ctx, profiledto.SetGoalInput{})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.GoalID)
}

func TestStoredGoalMissingFromCatalogKeepsID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, mem := newProfile(t)
	require.NoError(t, mem.Save(ctx, domain.DocumentKey, []byte(`{"goalId":"retired","hasOnboarded":true}`)))

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "retired", got.GoalID)
	assert.Empty(t, got.GoalTitle)
	assert.True(t, got.HasOnboarded)
}

func TestResetClearsProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uc, mem := newProfile(t)
	_, err := uc.SetGoal(ctx, profiledto.SetGoalInput{GoalID: "clarity"})
	require.NoError(t, err)

	require.NoError(t, uc.Reset(ctx))
	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profiledto.ProfileOutput{}, got)

	require.NoError(t, mem.Save(ctx, domain.DocumentKey, []byte("not json")))
	got, err = uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, profiledto.ProfileOutput{}, got)
}
