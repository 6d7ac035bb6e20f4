package out

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bloom/internal/modules/challenge/domain"
	challengeout "bloom/internal/modules/challenge/port/out"
	"bloom/internal/platform/docstore"
	apperrors "bloom/internal/platform/errors"
)

type DocumentStateStore struct {
	store docstore.Store
	log   *zap.Logger
}

func NewDocumentStateStore(store docstore.Store, log *zap.Logger) challengeout.StateStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &DocumentStateStore{store: store, log: log}
}

func (s *DocumentStateStore) Load(ctx context.Context) (domain.State, error) {
	raw, err := s.store.Load(ctx, domain.DocumentKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.NewState(""), nil
		}
		return domain.State{}, fmt.Errorf("read %s: %w", domain.DocumentKey, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.NewState(""), nil
	}

	state := domain.State{}
	if err := json.Unmarshal(raw, &state); err != nil {
		s.log.Warn("discarding unreadable challenge state", zap.String("key", domain.DocumentKey), zap.Error(err))
		return domain.NewState(""), nil
	}
	if state.RotationHistory == nil {
		state.RotationHistory = []string{}
	}
	state.Preferences = domain.NormalizePreferences(state.Preferences)
	return state, nil
}

func (s *DocumentStateStore) Save(ctx context.Context, state domain.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode challenge state: %w", err)
	}
	return s.store.Save(ctx, domain.DocumentKey, raw)
}
