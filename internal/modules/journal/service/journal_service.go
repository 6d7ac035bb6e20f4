package service

import (
	"bloom/internal/modules/journal/domain"
	"bloom/internal/platform/clock"
	"bloom/internal/platform/id"
)

// JournalService stamps new entries with an id and the current time.
type JournalService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewJournalService(clock clock.Clock, idGen id.Generator) *JournalService {
	return &JournalService{clock: clock, idGen: idGen}
}

func (s *JournalService) Feedback(title string, score *int, note string) (domain.Entry, bool) {
	return domain.NewFeedbackEntry(s.idGen.New(), s.clock.Now(), title, score, note)
}

func (s *JournalService) Abandon(title, reason, note string) (domain.Entry, bool) {
	return domain.NewAbandonEntry(s.idGen.New(), s.clock.Now(), title, reason, note)
}

func (s *JournalService) Manual(title, text string) (domain.Entry, bool) {
	return domain.NewManualEntry(s.idGen.New(), s.clock.Now(), title, text)
}
