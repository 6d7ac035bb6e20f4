package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom/internal/modules/catalog/domain"
)

func TestNewCatalogRejectsBadRecords(t *testing.T) {
	t.Parallel()
	ok := domain.Challenge{ID: "a", Title: "A", Category: domain.CategoryRest, DurationMin: 3, Energy: domain.EnergyLow}

	cases := map[string][]domain.Challenge{
		"duplicate id":     {ok, ok},
		"unknown category": {{ID: "b", Category: "sleep", DurationMin: 3, Energy: domain.EnergyLow}},
		"unknown energy":   {{ID: "c", Category: domain.CategoryRest, DurationMin: 3, Energy: "high"}},
		"zero duration":    {{ID: "d", Category: domain.CategoryRest, Energy: domain.EnergyLow}},
		"missing id":       {{Category: domain.CategoryRest, DurationMin: 3, Energy: domain.EnergyLow}},
	}
	for name, challenges := range cases {
		_, err := domain.NewCatalog(challenges, nil, nil)
		assert.Error(t, err, name)
	}

	_, err := domain.NewCatalog([]domain.Challenge{ok}, []domain.Goal{{ID: "calm", Categories: []domain.Category{"naps"}}}, nil)
	assert.Error(t, err)
}

func TestCatalogLookupsAndOrder(t *testing.T) {
	t.Parallel()
	cat, err := domain.NewCatalog(
		[]domain.Challenge{
			{ID: "breath", Category: domain.CategoryRest, DurationMin: 3, Energy: domain.EnergyLow},
			{ID: "walk", Category: domain.CategoryMovement, DurationMin: 5, Energy: domain.EnergyMedium},
		},
		[]domain.Goal{
			{ID: "calm", Categories: []domain.Category{domain.CategoryRest, domain.CategoryMental}},
			{ID: "gentle-energy", Categories: []domain.Category{domain.CategoryMovement}},
		},
		nil,
	)
	require.NoError(t, err)

	list := cat.Challenges()
	require.Len(t, list, 2)
	assert.Equal(t, "breath", list[0].ID)
	list[0].ID = "mutated"
	c, ok := cat.Challenge("breath")
	assert.True(t, ok)
	assert.Equal(t, "breath", c.ID)

	_, ok = cat.Challenge("missing")
	assert.False(t, ok)

	g, ok := cat.Goal("calm")
	require.True(t, ok)
	assert.True(t, g.Includes(domain.CategoryMental))
	assert.False(t, g.Includes(domain.CategoryMovement))
	assert.Equal(t, "calm", cat.DefaultGoalID())
}

func TestPhraseForIsStablePerDay(t *testing.T) {
	t.Parallel()
	phrases := []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6"}
	cat, err := domain.NewCatalog(nil, nil, phrases)
	require.NoError(t, err)

	sum := 0
	for _, r := range "2026-03-01" {
		sum += int(r)
	}
	assert.Equal(t, phrases[sum%7], cat.PhraseFor("2026-03-01"))
	assert.Equal(t, cat.PhraseFor("2026-03-01"), cat.PhraseFor("2026-03-01"))

	empty, err := domain.NewCatalog(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", empty.PhraseFor("2026-03-01"))
}
