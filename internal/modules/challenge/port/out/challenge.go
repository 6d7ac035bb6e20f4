package out

import (
	"context"

	"bloom/internal/modules/challenge/domain"
)

// StateStore persists the challenge aggregate. A missing or unreadable
// document loads as a fresh state.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

// JournalSink receives the user-facing notes produced by feedback and
// abandonment. Title may be empty.
type JournalSink interface {
	RecordFeedback(ctx context.Context, title string, score *int, note string) error
	RecordAbandon(ctx context.Context, title, reason, note string) error
}

type HistoryProjector interface {
	Record(ctx context.Context, record domain.HistoryRecord) error
	Stats(ctx context.Context) (domain.Stats, error)
	Reset(ctx context.Context) error
}
