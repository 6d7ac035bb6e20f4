package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"bloom/internal/modules/journal/domain"
	journaldto "bloom/internal/modules/journal/dto"
	journalin "bloom/internal/modules/journal/port/in"
	journalout "bloom/internal/modules/journal/port/out"
	"bloom/internal/modules/journal/service"
	"bloom/internal/platform/tx"
	"bloom/internal/platform/validation"
)

type Interactor struct {
	svc      *service.JournalService
	store    journalout.JournalStore
	exporter journalout.NoteExporter
	tx       tx.Manager
	log      *zap.Logger
}

func NewInteractor(svc *service.JournalService, store journalout.JournalStore, exporter journalout.NoteExporter, txm tx.Manager, log *zap.Logger) journalin.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{svc: svc, store: store, exporter: exporter, tx: txm, log: log}
}

func (i *Interactor) RecordFeedback(ctx context.Context, input journaldto.FeedbackEntryInput) (journaldto.RecordOutput, error) {
	if err := validation.Struct(input); err != nil {
		return journaldto.RecordOutput{}, err
	}
	entry, ok := i.svc.Feedback(input.Title, input.Score, input.Note)
	return i.record(ctx, entry, ok)
}

func (i *Interactor) RecordAbandon(ctx context.Context, input journaldto.AbandonEntryInput) (journaldto.RecordOutput, error) {
	entry, ok := i.svc.Abandon(input.Title, input.Reason, input.Note)
	return i.record(ctx, entry, ok)
}

func (i *Interactor) AddEntry(ctx context.Context, input journaldto.AddEntryInput) (journaldto.RecordOutput, error) {
	entry, ok := i.svc.Manual(input.Title, input.Text)
	return i.record(ctx, entry, ok)
}

func (i *Interactor) List(ctx context.Context, input journaldto.ListInput) ([]journaldto.EntryOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	journal, err := i.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]journaldto.EntryOutput, 0, len(journal.Entries))
	for _, e := range journal.Entries {
		if input.Source != "" && string(e.Source) != input.Source {
			continue
		}
		out = append(out, toEntryOutput(e))
		if input.Limit > 0 && len(out) == input.Limit {
			break
		}
	}
	return out, nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		return i.store.Save(ctx, domain.Journal{Entries: []domain.Entry{}})
	})
	if err != nil {
		return fmt.Errorf("reset journal: %w", err)
	}
	i.log.Info("journal reset")
	return nil
}

func (i *Interactor) Export(ctx context.Context) (journaldto.ExportOutput, error) {
	if i.exporter == nil {
		return journaldto.ExportOutput{}, fmt.Errorf("journal exporter is not configured")
	}
	journal, err := i.load(ctx)
	if err != nil {
		return journaldto.ExportOutput{}, err
	}
	paths, err := i.exporter.Export(ctx, journal.Entries)
	if err != nil {
		return journaldto.ExportOutput{}, fmt.Errorf("export journal: %w", err)
	}
	i.log.Info("journal exported", zap.Int("entries", len(journal.Entries)))
	return journaldto.ExportOutput{Paths: paths}, nil
}

func (i *Interactor) record(ctx context.Context, entry domain.Entry, ok bool) (journaldto.RecordOutput, error) {
	if !ok {
		i.log.Debug("journal entry dropped")
		return journaldto.RecordOutput{}, nil
	}
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		journal, err := i.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load journal: %w", err)
		}
		journal.Prepend(entry)
		if err := i.store.Save(ctx, journal); err != nil {
			return fmt.Errorf("save journal: %w", err)
		}
		return nil
	})
	if err != nil {
		return journaldto.RecordOutput{}, err
	}
	i.log.Info("journal entry recorded", zap.String("id", entry.ID), zap.String("source", string(entry.Source)))
	out := toEntryOutput(entry)
	return journaldto.RecordOutput{Recorded: true, Entry: &out}, nil
}

func (i *Interactor) load(ctx context.Context) (domain.Journal, error) {
	var journal domain.Journal
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		journal, err = i.store.Load(ctx)
		return err
	})
	if err != nil {
		return domain.Journal{}, fmt.Errorf("load journal: %w", err)
	}
	return journal, nil
}

func toEntryOutput(e domain.Entry) journaldto.EntryOutput {
	return journaldto.EntryOutput{
		ID:            e.ID,
		Title:         e.DisplayTitle(),
		Text:          e.Text,
		CreatedAt:     e.CreatedAt,
		Source:        string(e.Source),
		FeedbackScore: e.FeedbackScore,
		AbandonReason: e.AbandonReason,
	}
}
