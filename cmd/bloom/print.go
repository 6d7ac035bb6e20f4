package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	challengedto "bloom/internal/modules/challenge/dto"
)

func printToday(w io.Writer, t challengedto.TodayOutput, goalTitle string) {
	_, _ = fmt.Fprintf(w, "Today %s", t.DateKey)
	if goalTitle != "" {
		_, _ = fmt.Fprintf(w, "  (goal: %s)", goalTitle)
	}
	_, _ = fmt.Fprintln(w)
	if t.Phrase != "" {
		_, _ = fmt.Fprintf(w, "  %q\n", t.Phrase)
	}

	if t.CheckedIn {
		_, _ = fmt.Fprintf(w, "\nmood %s  energy %s\n", level(t.Mood), level(t.Energy))
		if t.Note != "" {
			_, _ = fmt.Fprintf(w, "note: %s\n", t.Note)
		}
	} else {
		_, _ = fmt.Fprintln(w, "\nnot checked in yet: bloom checkin --mood N --energy N")
	}

	switch {
	case t.Session != nil:
		s := t.Session
		_, _ = fmt.Fprintf(w, "\n[%s] %s\n", s.Outcome, describe(s.Challenge))
		_, _ = fmt.Fprintf(w, "  %s\n", s.Challenge.Prompt)
		if s.FeedbackScore != nil {
			_, _ = fmt.Fprintf(w, "  feeling %d/5\n", *s.FeedbackScore)
		}
		if s.FeedbackNote != nil {
			_, _ = fmt.Fprintf(w, "  %s\n", *s.FeedbackNote)
		}
	case t.Suggestion != nil:
		sg := t.Suggestion
		state := "suggested"
		if sg.Skipped {
			state = "skipped today"
		}
		_, _ = fmt.Fprintf(w, "\n[%s] %s\n", state, describe(sg.Challenge))
		_, _ = fmt.Fprintf(w, "  %s\n", sg.Challenge.Prompt)
		_, _ = fmt.Fprintf(w, "  rotations left: %d\n", t.RotationsLeft)
	}

	if t.Session != nil && t.Suggestion != nil && t.Session.Outcome != "active" && t.Suggestion.Challenge.ID != t.Session.Challenge.ID {
		_, _ = fmt.Fprintf(w, "\nnext up: %s\n", describe(t.Suggestion.Challenge))
	}
	if t.ReviewDue {
		_, _ = fmt.Fprintf(w, "\nreview due after %d experiments: bloom review answer continue|adjust|change\n", t.CompletedSinceReview)
	}
}

func printStats(w io.Writer, s challengedto.StatsOutput) {
	_, _ = fmt.Fprintf(w, "sessions: %d (completed %d, abandoned %d, active %d)\n", s.Total, s.Completed, s.Abandoned, s.Active)
	if s.WithFeedback > 0 {
		_, _ = fmt.Fprintf(w, "feedback: %d, average %.1f/5\n", s.WithFeedback, s.AverageScore)
	}
	cats := make([]string, 0, len(s.ByCategory))
	for c := range s.ByCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		parts = append(parts, fmt.Sprintf("%s=%d", c, s.ByCategory[c]))
	}
	if len(parts) > 0 {
		_, _ = fmt.Fprintf(w, "by category: %s\n", strings.Join(parts, " "))
	}
}

func describe(c challengedto.ChallengeView) string {
	if c.Title == "" {
		return c.ID
	}
	return fmt.Sprintf("%s (%s, %d min)", c.Title, c.Category, c.DurationMin)
}

func level(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d/5", *v)
}
