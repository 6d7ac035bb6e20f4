package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bloom/internal/bootstrap"
	"bloom/internal/platform/config"
	"bloom/internal/platform/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "bloom",
		Short:         "One small well-being challenge a day",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newTodayCmd(&dataPath))
	root.AddCommand(newCheckInCmd(&dataPath))
	root.AddCommand(newAcceptCmd(&dataPath))
	root.AddCommand(newRotateCmd(&dataPath))
	root.AddCommand(newSkipCmd(&dataPath))
	root.AddCommand(newCompleteCmd(&dataPath))
	root.AddCommand(newFeedbackCmd(&dataPath))
	root.AddCommand(newAbandonCmd(&dataPath))
	root.AddCommand(newPrefsCmd(&dataPath))
	root.AddCommand(newReviewCmd(&dataPath))
	root.AddCommand(newDebugCmd(&dataPath))
	root.AddCommand(newJournalCmd(&dataPath))
	root.AddCommand(newGoalCmd(&dataPath))
	root.AddCommand(newCatalogCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	return root
}

func defaultDataPath() string {
	if v := os.Getenv("BLOOM_DATA"); v != "" {
		return v
	}
	return "."
}

func loadApp(ctx context.Context, dataPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, log, bootstrap.Options{})
}

// withApp runs fn against a freshly wired app and closes it afterwards so
// pending documents are flushed before the process exits.
func withApp(dataPath string, fn func(ctx context.Context, app *bootstrap.App) error) (err error) {
	ctx := context.Background()
	app, err := loadApp(ctx, dataPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(ctx, app)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the bloom terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(app)
			})
		},
	}
}
