package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bloom/internal/modules/journal/domain"
	journalout "bloom/internal/modules/journal/port/out"
	"bloom/internal/platform/docstore"
	apperrors "bloom/internal/platform/errors"
)

type DocumentJournalStore struct {
	store docstore.Store
	log   *zap.Logger
}

func NewDocumentJournalStore(store docstore.Store, log *zap.Logger) journalout.JournalStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentJournalStore{store: store, log: log}
}

func (s *DocumentJournalStore) Load(ctx context.Context) (domain.Journal, error) {
	empty := domain.Journal{Entries: []domain.Entry{}}
	raw, err := s.store.Load(ctx, domain.DocumentKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return empty, nil
		}
		return domain.Journal{}, fmt.Errorf("read %s: %w", domain.DocumentKey, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return empty, nil
	}
	journal := domain.Journal{}
	if err := json.Unmarshal(raw, &journal); err != nil {
		s.log.Warn("discarding unreadable journal", zap.String("key", domain.DocumentKey), zap.Error(err))
		return empty, nil
	}
	if journal.Entries == nil {
		journal.Entries = []domain.Entry{}
	}
	return journal, nil
}

func (s *DocumentJournalStore) Save(ctx context.Context, journal domain.Journal) error {
	if journal.Entries == nil {
		journal.Entries = []domain.Entry{}
	}
	raw, err := json.Marshal(journal)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	return s.store.Save(ctx, domain.DocumentKey, raw)
}
