package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "bloom/internal/modules/catalog/domain"
	challengeoutadapter "bloom/internal/modules/challenge/adapter/out"
	"bloom/internal/modules/challenge/domain"
	journaldto "bloom/internal/modules/journal/dto"
	journalin "bloom/internal/modules/journal/port/in"
	"bloom/internal/platform/docstore"
)

type brokenStore struct{ docstore.Store }

func (brokenStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection reset")
}

func TestDocumentStateStoreDefaultsWhenMissingEmptyOrCorrupt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, raw := range map[string][]byte{
		"missing": nil,
		"empty":   []byte("  \n"),
		"corrupt": []byte("{not json"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			mem := docstore.NewMemoryStore()
			if raw != nil {
				require.NoError(t, mem.Save(ctx, domain.DocumentKey, raw))
			}
			state, err := challengeoutadapter.NewDocumentStateStore(mem, nil).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, domain.NewState(""), state)
		})
	}
}

func TestDocumentStateStorePropagatesBackendErrors(t *testing.T) {
	t.Parallel()
	_, err := challengeoutadapter.NewDocumentStateStore(brokenStore{}, nil).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDocumentStateStoreRoundTripAndNormalizes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := docstore.NewMemoryStore()
	store := challengeoutadapter.NewDocumentStateStore(mem, nil)

	state := domain.NewState("2026-04-12")
	state.Suggestion = &domain.Suggestion{DateKey: "2026-04-12", ChallengeID: "breath-3", RotationsUsed: 1}
	state.RotationHistory = []string{"water-1", "breath-3"}
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, state, loaded)

	legacy := []byte(`{"context":{"dateKey":"2026-04-12","note":""},"suggestion":null,"session":null}`)
	require.NoError(t, mem.Save(ctx, domain.DocumentKey, legacy))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, loaded.RotationHistory)
	assert.Equal(t, domain.EnergyAny, loaded.Preferences.EnergyPreference)
}

func TestSQLiteHistoryProjectorUpsertsAndSummarizes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	projector, err := challengeoutadapter.NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), "db", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if c, ok := projector.(interface{ Close() error }); ok {
			_ = c.Close()
		}
	})

	base := time.Date(2026, 4, 12, 9, 0, 0, 0, time.UTC)
	first := domain.Session{ChallengeID: "breath-3", AcceptedAt: base}
	require.NoError(t, projector.Record(ctx, domain.HistoryRecord{Session: first, Title: "Breathe", Category: string(catalogdomain.CategoryRest)}))

	done := base.Add(3 * time.Minute)
	score := 4
	first.CompletedAt = &done
	first.FeedbackScore = &score
	require.NoError(t, projector.Record(ctx, domain.HistoryRecord{Session: first, Title: "Breathe", Category: string(catalogdomain.CategoryRest)}))

	abandonedAt := base.Add(26 * time.Hour)
	second := domain.Session{ChallengeID: "walk-5", AcceptedAt: base.Add(25 * time.Hour), AbandonedAt: &abandonedAt, AbandonReason: "rain"}
	require.NoError(t, projector.Record(ctx, domain.HistoryRecord{Session: second, Title: "Walk", Category: string(catalogdomain.CategoryMovement)}))

	third := domain.Session{ChallengeID: "journal-2", AcceptedAt: base.Add(49 * time.Hour)}
	require.NoError(t, projector.Record(ctx, domain.HistoryRecord{Session: third, Title: "Write", Category: string(catalogdomain.CategoryReflection)}))

	stats, err := projector.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 1, stats.Abandoned)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.WithFeedback)
	assert.InDelta(t, 4.0, stats.AverageScore, 0.001)
	assert.Equal(t, map[string]int{"rest": 1, "movement": 1, "reflection": 1}, stats.ByCategory)

	require.NoError(t, projector.Reset(ctx))
	stats, err = projector.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.ByCategory)
}

type recordingJournal struct {
	journalin.Usecase
	feedback []journaldto.FeedbackEntryInput
	abandon  []journaldto.AbandonEntryInput
}

func (r *recordingJournal) RecordFeedback(_ context.Context, in journaldto.FeedbackEntryInput) (journaldto.RecordOutput, error) {
	r.feedback = append(r.feedback, in)
	return journaldto.RecordOutput{Recorded: true}, nil
}

func (r *recordingJournal) RecordAbandon(_ context.Context, in journaldto.AbandonEntryInput) (journaldto.RecordOutput, error) {
	r.abandon = append(r.abandon, in)
	return journaldto.RecordOutput{Recorded: true}, nil
}

func TestJournalSinkForwardsEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	journal := &recordingJournal{}
	sink := challengeoutadapter.NewJournalSink(journal)

	score := 5
	require.NoError(t, sink.RecordFeedback(ctx, "Breathe", &score, "calm"))
	require.NoError(t, sink.RecordAbandon(ctx, "Walk", "rain", ""))

	assert.Equal(t, []journaldto.FeedbackEntryInput{{Title: "Breathe", Score: &score, Note: "calm"}}, journal.feedback)
	assert.Equal(t, []journaldto.AbandonEntryInput{{Title: "Walk", Reason: "rain"}}, journal.abandon)
}
