package in

import (
	"context"

	journaldto "bloom/internal/modules/journal/dto"
	journalin "bloom/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, title, text string) (journaldto.RecordOutput, error) {
	return h.usecase.AddEntry(ctx, journaldto.AddEntryInput{Title: title, Text: text})
}

func (h CLIHandler) List(ctx context.Context, source string, limit int) ([]journaldto.EntryOutput, error) {
	return h.usecase.List(ctx, journaldto.ListInput{Source: source, Limit: limit})
}

func (h CLIHandler) Export(ctx context.Context) (journaldto.ExportOutput, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
