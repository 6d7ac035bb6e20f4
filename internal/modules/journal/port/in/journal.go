package in

import (
	"context"

	"bloom/internal/modules/journal/dto"
)

type Usecase interface {
	RecordFeedback(ctx context.Context, input dto.FeedbackEntryInput) (dto.RecordOutput, error)
	RecordAbandon(ctx context.Context, input dto.AbandonEntryInput) (dto.RecordOutput, error)
	AddEntry(ctx context.Context, input dto.AddEntryInput) (dto.RecordOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.EntryOutput, error)
	Reset(ctx context.Context) error
	Export(ctx context.Context) (dto.ExportOutput, error)
}
