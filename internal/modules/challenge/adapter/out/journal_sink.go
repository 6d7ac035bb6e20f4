package out

import (
	"context"

	challengeout "bloom/internal/modules/challenge/port/out"
	journaldto "bloom/internal/modules/journal/dto"
	journalin "bloom/internal/modules/journal/port/in"
)

// JournalSink forwards challenge events to the journal module.
type JournalSink struct {
	journal journalin.Usecase
}

func NewJournalSink(journal journalin.Usecase) challengeout.JournalSink {
	return &JournalSink{journal: journal}
}

func (s *JournalSink) RecordFeedback(ctx context.Context, title string, score *int, note string) error {
	_, err := s.journal.RecordFeedback(ctx, journaldto.FeedbackEntryInput{Title: title, Score: score, Note: note})
	return err
}

func (s *JournalSink) RecordAbandon(ctx context.Context, title, reason, note string) error {
	_, err := s.journal.RecordAbandon(ctx, journaldto.AbandonEntryInput{Title: title, Reason: reason, Note: note})
	return err
}
