package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogout "bloom/internal/modules/catalog/adapter/out"
	"bloom/internal/modules/catalog/domain"
	catalogdto "bloom/internal/modules/catalog/dto"
	catalogin "bloom/internal/modules/catalog/port/in"
	"bloom/internal/modules/catalog/service"
	"bloom/internal/modules/catalog/usecase"
	apperrors "bloom/internal/platform/errors"
)

type failingSource struct{}

func (failingSource) Load(context.Context) (domain.Catalog, error) {
	return domain.Catalog{}, errors.New("disk gone")
}

func newInteractor(t *testing.T) catalogin.Usecase {
	t.Helper()
	svc, err := service.NewCatalogService(context.Background(), catalogout.NewEmbeddedCatalogSource())
	require.NoError(t, err)
	return usecase.NewInteractor(svc)
}

func TestListChallengesFilters(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t)

	all, err := uc.ListChallenges(context.Background(), catalogdto.ListChallengesInput{})
	require.NoError(t, err)
	assert.Len(t, all, 40)

	short, err := uc.ListChallenges(context.Background(), catalogdto.ListChallengesInput{Category: "movement", MaxMinutes: 3})
	require.NoError(t, err)
	require.NotEmpty(t, short)
	for _, c := range short {
		assert.Equal(t, "movement", c.Category)
		assert.LessOrEqual(t, c.DurationMin, 3)
	}

	_, err = uc.ListChallenges(context.Background(), catalogdto.ListChallengesInput{Category: "sleep"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestGoalsAndChallengeLookup(t *testing.T) {
	t.Parallel()
	uc := newInteractor(t)
	ctx := context.Background()

	goals, err := uc.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 5)
	assert.True(t, goals[0].IsDefault)

	g, err := uc.GetGoal(ctx, "gentle-energy")
	require.NoError(t, err)
	assert.Equal(t, []string{"movement", "rest"}, g.Categories)

	_, err = uc.GetGoal(ctx, "fame")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	c, err := uc.GetChallenge(ctx, "tea-5")
	require.NoError(t, err)
	assert.Equal(t, "rest", c.Category)
	_, err = uc.GetChallenge(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	phrase, err := uc.DailyPhrase(ctx, "2026-05-04")
	require.NoError(t, err)
	assert.NotEmpty(t, phrase)
	_, err = uc.DailyPhrase(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestServiceReportsLoadFailure(t *testing.T) {
	t.Parallel()
	_, err := service.NewCatalogService(context.Background(), failingSource{})
	assert.ErrorContains(t, err, "disk gone")
}
