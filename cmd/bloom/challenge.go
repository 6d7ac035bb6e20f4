package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bloom/internal/bootstrap"
	challengedto "bloom/internal/modules/challenge/dto"
)

// runDay rolls the day over, resolves the profile goal and runs op, then
// prints the resulting view.
func runDay(cmd *cobra.Command, dataPath, label string, op func(ctx context.Context, app *bootstrap.App, goalID string) (challengedto.ResultOutput, error)) error {
	return withApp(dataPath, func(ctx context.Context, app *bootstrap.App) error {
		if _, err := app.ChallengeCLI.InitForToday(ctx); err != nil {
			return err
		}
		profile, err := app.ProfileCLI.Get(ctx)
		if err != nil {
			return err
		}
		out, err := op(ctx, app, profile.GoalID)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if !out.Applied {
			_, _ = fmt.Fprintf(w, "%s: nothing to do right now\n\n", label)
		}
		printToday(w, out.Today, profile.GoalTitle)
		return nil
	})
}

func newTodayCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's check-in and challenge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDay(cmd, *dataPath, "today", func(ctx context.Context, app *bootstrap.App, _ string) (challengedto.ResultOutput, error) {
				today, err := app.ChallengeCLI.Today(ctx)
				return challengedto.ResultOutput{Applied: true, Today: today}, err
			})
		},
	}
}

func newCheckInCmd(dataPath *string) *cobra.Command {
	var mood, energy int
	var note string
	c := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's mood and energy and get a suggestion",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var moodPtr, energyPtr *int
			if cmd.Flags().Changed("mood") {
				moodPtr = &mood
			}
			if cmd.Flags().Changed("energy") {
				energyPtr = &energy
			}
			return runDay(cmd, *dataPath, "checkin", func(ctx context.Context, app *bootstrap.App, goalID string) (challengedto.ResultOutput, error) {
				return app.ChallengeCLI.CheckIn(ctx, moodPtr, energyPtr, note, goalID)
			})
		},
	}
	c.Flags().IntVar(&mood, "mood", 0, "mood from 1 (low) to 5 (great)")
	c.Flags().IntVar(&energy, "energy", 0, "energy from 1 (drained) to 5 (full)")
	c.Flags().StringVar(&note, "note", "", "a few words about today")
	return c
}

func newAcceptCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "accept",
		Short: "Start today's suggested challenge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDay(cmd, *dataPath, "accept", func(ctx context.Context, app *bootstrap.App, _ string) (challengedto.ResultOutput, error) {
				return app.ChallengeCLI.Accept(ctx)
			})
		},
	}
}

func newRotateCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Ask for another suggestion (twice a day)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDay(cmd, *dataPath, "rotate", func(ctx context.Context, app *bootstrap.App, goalID string) (challengedto.ResultOutput, error) {
				return app.ChallengeCLI.Rotate(ctx, goalID)
			})
		},
	}
}

func newSkipCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "skip",
		Short: "Skip the challenge for today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDay(cmd, *dataPath, "skip", func(ctx context.Context, app *bootstrap.App, goalID string) (challengedto.ResultOutput, error) {
				return app.ChallengeCLI.Skip(ctx, goalID)
			})
		},
	}
}

func newCompleteCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark the running challenge as done",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDay(cmd, *dataPath, "complete", func(ctx context.Context, app *bootstrap.App, _ string) (challengedto.ResultOutput, error) {
				return app.ChallengeCLI.Complete(ctx)
			})
		},
	}
}

func newFeedbackCmd(dataPath *string) *cobra.Command {
	var score int
	var note string
	c := &cobra.Command{
		Use:   "feedback",
		Short: "Tell how the challenge felt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var scorePtr *int
			var notePtr *string
			if cmd.Flags().Changed("score") {
				scorePtr = &score
			}
			if cmd.Flags().Changed("note") {
				notePtr = &note
			}
			return runDay(cmd, *dataPath, "feedback", func(ctx context.Context, app *bootstrap.App, _ string) (challengedto.ResultOutput, error) {
				return app.ChallengeCLI.Feedback(ctx, scorePtr, notePtr)
			})
		},
	}
	c.Flags().IntVar(&score, "score", 0, "how it felt, 1 to 5")
	c.Flags().StringVar(&note, "note", "", "optional note")
	return c
}

func newAbandonCmd(dataPath *string) *cobra.Command {
	var reason, note string
	c := &cobra.Command{
		Use:   "abandon",
		Short: "Stop the running challenge and say why",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(reason) == "" {
				return fmt.Errorf("--reason is required")
			}
			return runDay(cmd, *dataPath, "abandon", func(ctx context.Context, app *bootstrap.App, goalID string) (challengedto.ResultOutput, error) {
				return app.ChallengeCLI.Abandon(ctx, reason, note, goalID)
			})
		},
	}
	c.Flags().StringVar(&reason, "reason", "", "why you stopped")
	c.Flags().StringVar(&note, "note", "", "optional note")
	return c
}

func newPrefsCmd(dataPath *string) *cobra.Command {
	prefs := &cobra.Command{Use: "prefs", Short: "Experiment preferences"}

	prefs.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				today, err := app.ChallengeCLI.Today(ctx)
				if err != nil {
					return err
				}
				printPreferences(cmd.OutOrStdout(), today.Preferences)
				return nil
			})
		},
	})

	var categories []string
	var duration, energy string
	set := &cobra.Command{
		Use:   "set",
		Short: "Replace preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ChallengeCLI.SetPreferences(ctx, categories, duration, energy)
				if err != nil {
					return err
				}
				printPreferences(cmd.OutOrStdout(), out.Today.Preferences)
				return nil
			})
		},
	}
	set.Flags().StringSliceVar(&categories, "categories", nil, "movement,rest,reflection,mental")
	set.Flags().StringVar(&duration, "duration", "", "short|medium|long")
	set.Flags().StringVar(&energy, "energy", "", "low|medium|any")
	prefs.AddCommand(set)
	return prefs
}

func newReviewCmd(dataPath *string) *cobra.Command {
	review := &cobra.Command{Use: "review", Short: "Periodic experiment review"}

	review.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether a review is due",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				today, err := app.ChallengeCLI.Today(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "experiments since last review: %d\n", today.CompletedSinceReview)
				if today.LastReviewAt != nil {
					_, _ = fmt.Fprintf(w, "last review: %s\n", today.LastReviewAt.Local().Format("2006-01-02 15:04"))
				}
				_, _ = fmt.Fprintf(w, "review due: %t\n", today.ReviewDue)
				return nil
			})
		},
	})

	review.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Start a new review cycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if _, err := app.ChallengeCLI.ResetReview(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "review cycle reset")
				return nil
			})
		},
	})

	var categories []string
	var duration, energy string
	answer := &cobra.Command{
		Use:   "answer <continue|adjust|change>",
		Short: "Answer a due review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ChallengeCLI.Review(ctx, args[0], categories, duration, energy)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "review saved")
				printPreferences(cmd.OutOrStdout(), out.Today.Preferences)
				return nil
			})
		},
	}
	answer.Flags().StringSliceVar(&categories, "categories", nil, "movement,rest,reflection,mental")
	answer.Flags().StringVar(&duration, "duration", "", "short|medium|long (adjust)")
	answer.Flags().StringVar(&energy, "energy", "", "low|medium|any (adjust)")
	review.AddCommand(answer)
	return review
}

func newDebugCmd(dataPath *string) *cobra.Command {
	debug := &cobra.Command{Use: "debug", Short: "Debug helpers"}
	debug.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Erase challenges, journal and profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				if _, err := app.ChallengeCLI.ResetForDebug(ctx); err != nil {
					return err
				}
				if err := app.JournalCLI.Reset(ctx); err != nil {
					return err
				}
				if err := app.ProfileCLI.Reset(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all data reset")
				return nil
			})
		},
	})
	return debug
}

func newStatsCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize past challenge sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataPath, func(ctx context.Context, app *bootstrap.App) error {
				stats, err := app.ChallengeCLI.Stats(ctx)
				if err != nil {
					return err
				}
				printStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}
}

func printPreferences(w io.Writer, p challengedto.PreferencesOutput) {
	cats := "any"
	if len(p.Categories) > 0 {
		cats = strings.Join(p.Categories, ",")
	}
	dur := p.Duration
	if dur == "" {
		dur = "any"
	}
	_, _ = fmt.Fprintf(w, "categories=%s duration=%s energy=%s\n", cats, dur, p.Energy)
}
