package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom/internal/modules/journal/domain"
)

var at = time.Date(2026, 4, 12, 18, 5, 0, 0, time.UTC)

func TestNewFeedbackEntry(t *testing.T) {
	t.Parallel()
	score := 4

	e, ok := domain.NewFeedbackEntry("1", at, "Walk around", &score, "  lighter  ")
	require.True(t, ok)
	assert.Equal(t, "Feeling: 4/5\nlighter", e.Text)
	assert.Equal(t, "Walk around", e.DisplayTitle())
	assert.Equal(t, domain.SourceFeedback, e.Source)
	require.NotNil(t, e.FeedbackScore)
	assert.Equal(t, 4, *e.FeedbackScore)

	e, ok = domain.NewFeedbackEntry("2", at, "", nil, "just a note")
	require.True(t, ok)
	assert.Equal(t, "just a note", e.Text)
	assert.Equal(t, domain.DefaultFeedbackTitle, e.DisplayTitle())
	assert.Nil(t, e.FeedbackScore)

	_, ok = domain.NewFeedbackEntry("3", at, "Walk", nil, "   ")
	assert.False(t, ok)
}

func TestNewAbandonEntry(t *testing.T) {
	t.Parallel()

	e, ok := domain.NewAbandonEntry("1", at, "", " too tired ", "")
	require.True(t, ok)
	assert.Equal(t, "Why: too tired", e.Text)
	assert.Equal(t, "too tired", e.AbandonReason)
	assert.Equal(t, domain.DefaultAbandonTitle, e.DisplayTitle())

	e, ok = domain.NewAbandonEntry("2", at, "Walk", "rain", "try tomorrow")
	require.True(t, ok)
	assert.Equal(t, "Why: rain\ntry tomorrow", e.Text)

	_, ok = domain.NewAbandonEntry("3", at, "Walk", "  ", "note")
	assert.False(t, ok)
}

func TestNewManualEntryAndPrepend(t *testing.T) {
	t.Parallel()

	_, ok := domain.NewManualEntry("0", at, "title", "   ")
	assert.False(t, ok)

	first, ok := domain.NewManualEntry("1", at, "", "slept well")
	require.True(t, ok)
	assert.Nil(t, first.Title)
	assert.Equal(t, "Journal entry", first.DisplayTitle())

	second, ok := domain.NewManualEntry("2", at.Add(time.Hour), " Evening ", "quiet")
	require.True(t, ok)
	assert.Equal(t, "Evening", second.DisplayTitle())

	j := domain.Journal{}
	j.Prepend(first)
	j.Prepend(second)
	require.Len(t, j.Entries, 2)
	assert.Equal(t, "2", j.Entries[0].ID)
	assert.Equal(t, "1", j.Entries[1].ID)
}
