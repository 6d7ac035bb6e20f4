package dto

import "time"

// GoalInput names the goal that steers selection. Empty means no goal.
type GoalInput struct {
	GoalID string
}

type CheckInInput struct {
	Mood   *int `validate:"omitempty,gte=1,lte=5"`
	Energy *int `validate:"omitempty,gte=1,lte=5"`
	Note   string
	GoalID string
}

type FeedbackInput struct {
	Score *int `validate:"omitempty,gte=1,lte=5"`
	Note  *string
}

type AbandonInput struct {
	Reason string
	Note   string
	GoalID string
}

type PreferencesInput struct {
	Categories []string `validate:"omitempty,dive,oneof=movement rest reflection mental"`
	Duration   string   `validate:"omitempty,oneof=short medium long"`
	Energy     string   `validate:"omitempty,oneof=low medium any"`
}

// ReviewInput answers a due review. Adjust replaces all preferences, change
// swaps only the categories.
type ReviewInput struct {
	Choice      string `validate:"required,oneof=continue adjust change"`
	Preferences PreferencesInput
}

type ChallengeView struct {
	ID          string
	Title       string
	Category    string
	DurationMin int
	Energy      string
	Prompt      string
}

type SuggestionOutput struct {
	Challenge     ChallengeView
	RotationsUsed int
	Skipped       bool
}

type SessionOutput struct {
	Challenge     ChallengeView
	Outcome       string
	AcceptedAt    time.Time
	CompletedAt   *time.Time
	AbandonedAt   *time.Time
	AbandonReason string
	FeedbackScore *int
	FeedbackNote  *string
}

type PreferencesOutput struct {
	Categories []string
	Duration   string
	Energy     string
}

type TodayOutput struct {
	DateKey              string
	Mood                 *int
	Energy               *int
	Note                 string
	CheckedIn            bool
	Suggestion           *SuggestionOutput
	Session              *SessionOutput
	RotationsLeft        int
	CanRotate            bool
	CanAccept            bool
	ReviewDue            bool
	CompletedSinceReview int
	LastReviewAt         *time.Time
	Preferences          PreferencesOutput
	Phrase               string
}

// ResultOutput reports whether a transition changed anything, together with
// the view after it ran.
type ResultOutput struct {
	Applied bool
	Today   TodayOutput
}

type StatsOutput struct {
	Total        int
	Completed    int
	Abandoned    int
	Active       int
	WithFeedback int
	AverageScore float64
	ByCategory   map[string]int
}
