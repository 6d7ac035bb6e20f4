package out

import (
	"context"

	"bloom/internal/modules/journal/domain"
)

type JournalStore interface {
	Load(ctx context.Context) (domain.Journal, error)
	Save(ctx context.Context, journal domain.Journal) error
}

// NoteExporter writes entries out as markdown notes and returns the paths it
// wrote, index first.
type NoteExporter interface {
	Export(ctx context.Context, entries []domain.Entry) ([]string, error)
}
