package domain

import (
	"time"

	catalogdomain "bloom/internal/modules/catalog/domain"
)

// DocumentKey names the persisted challenge aggregate.
const DocumentKey = "bloom-challenges"

const (
	MaxRotations   = 2
	ReviewAfter    = 3
	NeutralLevel   = 3
	MinLevel       = 1
	MaxLevel       = 5
	InactivityDays = 3
)

type DailyContext struct {
	DateKey        string     `json:"dateKey"`
	Mood           *int       `json:"mood,omitempty"`
	Energy         *int       `json:"energy,omitempty"`
	Note           string     `json:"note"`
	LastAcceptedAt *time.Time `json:"lastAcceptedAt,omitempty"`
}

// NewDailyContext starts a blank day, keeping only the last acceptance time.
func NewDailyContext(dateKey string, prev *DailyContext) DailyContext {
	ctx := DailyContext{DateKey: dateKey}
	if prev != nil && prev.LastAcceptedAt != nil {
		at := *prev.LastAcceptedAt
		ctx.LastAcceptedAt = &at
	}
	return ctx
}

func (c DailyContext) MoodOrNeutral() int {
	if c.Mood == nil {
		return NeutralLevel
	}
	return *c.Mood
}

func (c DailyContext) EnergyOrNeutral() int {
	if c.Energy == nil {
		return NeutralLevel
	}
	return *c.Energy
}

type Suggestion struct {
	DateKey       string `json:"dateKey"`
	ChallengeID   string `json:"challengeId"`
	RotationsUsed int    `json:"rotationsUsed"`
	SkippedUntil  string `json:"skippedUntil,omitempty"`
}

func (s *Suggestion) SkippedOn(dateKey string) bool {
	return s != nil && s.SkippedUntil != "" && s.SkippedUntil == dateKey
}

type Session struct {
	ChallengeID   string     `json:"challengeId"`
	AcceptedAt    time.Time  `json:"acceptedAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	AbandonedAt   *time.Time `json:"abandonedAt,omitempty"`
	AbandonReason string     `json:"abandonReason,omitempty"`
	AbandonNote   string     `json:"abandonNote,omitempty"`
	FeedbackScore *int       `json:"feedbackScore,omitempty"`
	FeedbackNote  *string    `json:"feedbackNote,omitempty"`
	FeedbackAt    *time.Time `json:"feedbackAt,omitempty"`
}

// Active reports whether the session has reached neither terminal state.
func (s *Session) Active() bool {
	return s != nil && s.CompletedAt == nil && s.AbandonedAt == nil
}

func (s *Session) Abandoned() bool {
	return s != nil && s.AbandonedAt != nil
}

func (s *Session) Outcome() Outcome {
	switch {
	case s == nil:
		return ""
	case s.AbandonedAt != nil:
		return OutcomeAbandoned
	case s.CompletedAt != nil:
		return OutcomeCompleted
	default:
		return OutcomeActive
	}
}

type Outcome string

const (
	OutcomeActive    Outcome = "active"
	OutcomeCompleted Outcome = "completed"
	OutcomeAbandoned Outcome = "abandoned"
)

type DurationPreference string

const (
	DurationShort  DurationPreference = "short"
	DurationMedium DurationPreference = "medium"
	DurationLong   DurationPreference = "long"
)

// Matches applies the duration bands; short and medium share 5, medium and
// long share 7.
func (d DurationPreference) Matches(minutes int) bool {
	switch d {
	case DurationShort:
		return minutes <= 5
	case DurationMedium:
		return minutes >= 5 && minutes <= 7
	case DurationLong:
		return minutes >= 7
	}
	return true
}

type EnergyPreference string

const (
	EnergyAny    EnergyPreference = "any"
	EnergyLow    EnergyPreference = "low"
	EnergyMedium EnergyPreference = "medium"
)

type Preferences struct {
	PreferredCategories []catalogdomain.Category `json:"preferredCategories,omitempty"`
	DurationPreference  DurationPreference       `json:"durationPreference,omitempty"`
	EnergyPreference    EnergyPreference         `json:"energyPreference,omitempty"`
}

// Energy defaults an unset preference to "any".
func (p Preferences) Energy() EnergyPreference {
	if p.EnergyPreference == "" {
		return EnergyAny
	}
	return p.EnergyPreference
}

func DefaultPreferences() Preferences {
	return Preferences{EnergyPreference: EnergyAny}
}

type Review struct {
	CompletedSinceReview int        `json:"completedSinceReview"`
	LastReviewAt         *time.Time `json:"lastReviewAt,omitempty"`
}

func (r Review) Due() bool {
	return r.CompletedSinceReview >= ReviewAfter
}

// State is the whole challenge aggregate as persisted.
type State struct {
	Context         DailyContext `json:"context"`
	Suggestion      *Suggestion  `json:"suggestion"`
	Session         *Session     `json:"session"`
	RotationHistory []string     `json:"rotationHistory"`
	Preferences     Preferences  `json:"experimentPreferences"`
	Review          Review       `json:"experimentReview"`
}

func NewState(dateKey string) State {
	return State{
		Context:         NewDailyContext(dateKey, nil),
		RotationHistory: []string{},
		Preferences:     DefaultPreferences(),
	}
}

// HasActiveSession reports whether an accepted challenge is still running.
func (s *State) HasActiveSession() bool {
	return s.Session.Active()
}

// RotationsLeft is how many "show me another" requests remain today.
func (s *State) RotationsLeft(today string) int {
	if s.Suggestion == nil || s.Suggestion.DateKey != today {
		return 0
	}
	left := MaxRotations - s.Suggestion.RotationsUsed
	if left < 0 {
		return 0
	}
	return left
}
