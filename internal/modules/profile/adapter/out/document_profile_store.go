package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bloom/internal/modules/profile/domain"
	profileout "bloom/internal/modules/profile/port/out"
	"bloom/internal/platform/docstore"
	apperrors "bloom/internal/platform/errors"
)

type DocumentProfileStore struct {
	store docstore.Store
	log   *zap.Logger
}

func NewDocumentProfileStore(store docstore.Store, log *zap.Logger) profileout.ProfileStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentProfileStore{store: store, log: log}
}

func (s *DocumentProfileStore) Load(ctx context.Context) (domain.Profile, error) {
	raw, err := s.store.Load(ctx, domain.DocumentKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Profile{}, nil
		}
		return domain.Profile{}, fmt.Errorf("read %s: %w", domain.DocumentKey, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.Profile{}, nil
	}
	profile := domain.Profile{}
	if err := json.Unmarshal(raw, &profile); err != nil {
		s.log.Warn("discarding unreadable profile", zap.String("key", domain.DocumentKey), zap.Error(err))
		return domain.Profile{}, nil
	}
	return profile, nil
}

func (s *DocumentProfileStore) Save(ctx context.Context, profile domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.store.Save(ctx, domain.DocumentKey, raw)
}
