package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	cataloginadapter "bloom/internal/modules/catalog/adapter/in"
	catalogoutadapter "bloom/internal/modules/catalog/adapter/out"
	catalogservice "bloom/internal/modules/catalog/service"
	catalogusecase "bloom/internal/modules/catalog/usecase"
	challengeinadapter "bloom/internal/modules/challenge/adapter/in"
	challengeoutadapter "bloom/internal/modules/challenge/adapter/out"
	challengeservice "bloom/internal/modules/challenge/service"
	challengeusecase "bloom/internal/modules/challenge/usecase"
	journalinadapter "bloom/internal/modules/journal/adapter/in"
	journaloutadapter "bloom/internal/modules/journal/adapter/out"
	journalservice "bloom/internal/modules/journal/service"
	journalusecase "bloom/internal/modules/journal/usecase"
	profileinadapter "bloom/internal/modules/profile/adapter/in"
	profileoutadapter "bloom/internal/modules/profile/adapter/out"
	profileusecase "bloom/internal/modules/profile/usecase"
	"bloom/internal/platform/clock"
	"bloom/internal/platform/config"
	"bloom/internal/platform/docstore"
	"bloom/internal/platform/id"
	"bloom/internal/platform/random"
	"bloom/internal/platform/tx"
	uiapp "bloom/internal/ui/app"
)

type App struct {
	CatalogCLI   cataloginadapter.CLIHandler
	ChallengeCLI challengeinadapter.CLIHandler
	JournalCLI   journalinadapter.CLIHandler
	ProfileCLI   profileinadapter.CLIHandler

	log     *zap.Logger
	closers []io.Closer
}

// Options overrides the environment-facing pieces; zero values use the system ones.
type Options struct {
	Clock  clock.Clock
	Random random.Source
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger, opts Options) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.SystemClock{}
	}
	rnd := opts.Random
	if rnd == nil {
		if cfg.Seed != 0 {
			rnd = random.NewSeeded(cfg.Seed)
		} else {
			rnd = random.SystemSource{}
		}
	}
	txm := tx.NewSerialManager()
	app := &App{log: log}

	store, err := docstore.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}
	app.closers = append(app.closers, store)

	catalogSvc, err := catalogservice.NewCatalogService(ctx, catalogoutadapter.NewEmbeddedCatalogSource())
	if err != nil {
		app.Close()
		return nil, err
	}
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	journalUC := journalusecase.NewInteractor(
		journalservice.NewJournalService(clk, id.UUID{}),
		journaloutadapter.NewDocumentJournalStore(store, log.Named("journal")),
		journaloutadapter.NewMarkdownExporter(cfg.DataPath, cfg.Location, clk.Now),
		txm,
		log.Named("journal"),
	)

	history, err := challengeoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	if c, ok := history.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}
	challengeUC := challengeusecase.NewInteractor(
		challengeservice.NewChallengeService(clk, rnd, cfg.Location, catalogSvc.Catalog()),
		challengeoutadapter.NewDocumentStateStore(store, log.Named("challenge")),
		challengeoutadapter.NewJournalSink(journalUC),
		history,
		txm,
		log.Named("challenge"),
	)

	profileUC := profileusecase.NewInteractor(
		catalogUC,
		profileoutadapter.NewDocumentProfileStore(store, log.Named("profile")),
		txm,
		log.Named("profile"),
	)

	app.CatalogCLI = cataloginadapter.NewCLIHandler(catalogUC)
	app.ChallengeCLI = challengeinadapter.NewCLIHandler(challengeUC)
	app.JournalCLI = journalinadapter.NewCLIHandler(journalUC)
	app.ProfileCLI = profileinadapter.NewCLIHandler(profileUC)
	return app, nil
}

// Close flushes pending documents and releases the databases.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	_ = a.log.Sync()
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ChallengeCLI, app.ProfileCLI, app.JournalCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
