package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bloom/internal/bootstrap"
)

func newJournalCmd(dataPath *string) *cobra.Command {
	journal := &cobra.Command{Use: "journal", Short: "Personal journal"}

	var source string
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				entries, err := app.JournalCLI.List(ctx, source, limit)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if len(entries) == 0 {
					_, _ = fmt.Fprintln(w, "no entries")
					return nil
				}
				for _, e := range entries {
					_, _ = fmt.Fprintf(w, "%s  %s [%s]\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Title, e.Source)
					for _, line := range strings.Split(e.Text, "\n") {
						_, _ = fmt.Fprintf(w, "    %s\n", line)
					}
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&source, "source", "", "manual|feedback|abandon")
	list.Flags().IntVar(&limit, "limit", 0, "show at most this many entries")

	var title string
	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Write a journal entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.JournalCLI.Add(ctx, title, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !out.Recorded {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "nothing to save")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", out.Entry.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&title, "title", "", "optional title")

	export := &cobra.Command{
		Use:   "export",
		Short: "Write entries as markdown notes under <data>/journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.JournalCLI.Export(ctx)
				if err != nil {
					return err
				}
				for _, p := range out.Paths {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete every journal entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.JournalCLI.Reset(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "journal cleared")
				return nil
			})
		},
	}

	journal.AddCommand(list, add, export, reset)
	return journal
}

func newGoalCmd(dataPath *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Choose what the challenges should help with"}

	goal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				goals, err := app.CatalogCLI.ListGoals(ctx)
				if err != nil {
					return err
				}
				for _, g := range goals {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s (%s)\n", g.ID, g.Title, strings.Join(g.Categories, ", "))
				}
				return nil
			})
		},
	})

	goal.AddCommand(&cobra.Command{
		Use:   "set <id>",
		Short: "Set your goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if _, err := app.ProfileCLI.SetGoal(ctx, strings.TrimSpace(args[0])); err != nil {
					return err
				}
				profile, err := app.ProfileCLI.CompleteOnboarding(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal set: %s\n", profile.GoalTitle)
				return nil
			})
		},
	})

	goal.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show your goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				profile, err := app.ProfileCLI.Get(ctx)
				if err != nil {
					return err
				}
				if profile.GoalID == "" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goal set (bloom goal list)")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", profile.GoalTitle, profile.GoalID)
				return nil
			})
		},
	})
	return goal
}

func newCatalogCmd(dataPath *string) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Browse the challenge catalog"}

	var category string
	var maxMinutes int
	list := &cobra.Command{
		Use:   "list",
		Short: "List challenges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				challenges, err := app.CatalogCLI.ListChallenges(ctx, category, maxMinutes)
				if err != nil {
					return err
				}
				for _, c := range challenges {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-18s %-10s %2d min  %-6s  %s\n", c.ID, c.Category, c.DurationMin, c.Energy, c.Title)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&category, "category", "", "movement|rest|reflection|mental")
	list.Flags().IntVar(&maxMinutes, "max-minutes", 0, "only challenges at most this long")
	catalog.AddCommand(list)
	return catalog
}
