package domain

import (
	"slices"
	"strings"
	"time"

	catalogdomain "bloom/internal/modules/catalog/domain"
)

// Picker chooses a challenge for the given day context. The service binds it
// to the catalog, the user's goal, the clock and the random source.
type Picker func(daily DailyContext, prefs Preferences, exclude []string) (catalogdomain.Challenge, bool)

// Every transition below mutates s in place and reports whether anything
// changed. An unmet precondition leaves s untouched and returns false.

// InitForToday rolls the aggregate over to today unless a session is still
// running. A terminal session from an earlier day is dropped as delivered.
func (s *State) InitForToday(today string) bool {
	if s.HasActiveSession() || s.Context.DateKey == today {
		return false
	}
	s.Context = NewDailyContext(today, &s.Context)
	s.Suggestion = nil
	s.RotationHistory = []string{}
	s.Session = nil
	return true
}

func (s *State) SubmitMicroBlog(today string, mood, energy *int, note string, pick Picker) bool {
	if s.Context.DateKey != today {
		s.Context = NewDailyContext(today, &s.Context)
	}
	s.Context.Mood = copyInt(mood)
	s.Context.Energy = copyInt(energy)
	s.Context.Note = note

	if !s.HasActiveSession() && (s.Suggestion == nil || s.Suggestion.DateKey != today) {
		s.Suggestion = nil
		s.RotationHistory = []string{}
		if next, ok := pick(s.Context, s.Preferences, nil); ok {
			s.Suggestion = &Suggestion{DateKey: today, ChallengeID: next.ID}
			s.RotationHistory = []string{next.ID}
		}
	}
	return true
}

func (s *State) AcceptChallenge(now time.Time, today string) bool {
	if s.Suggestion == nil || s.Suggestion.SkippedOn(today) || s.HasActiveSession() {
		return false
	}
	s.Session = &Session{ChallengeID: s.Suggestion.ChallengeID, AcceptedAt: now}
	at := now
	s.Context.LastAcceptedAt = &at
	return true
}

func (s *State) RotateChallenge(today string, pick Picker) bool {
	if s.Suggestion == nil || s.Suggestion.DateKey != today || s.Suggestion.RotationsUsed >= MaxRotations {
		return false
	}
	exclude := append([]string{s.Suggestion.ChallengeID}, s.RotationHistory...)
	next, ok := pick(s.Context, s.Preferences, exclude)
	if !ok || slices.Contains(exclude, next.ID) {
		return false
	}
	rotated := *s.Suggestion
	rotated.ChallengeID = next.ID
	rotated.RotationsUsed++
	s.Suggestion = &rotated
	s.RotationHistory = append(slices.Clone(s.RotationHistory), next.ID)
	return true
}

func (s *State) SkipToday(today string, pick Picker) bool {
	if s.HasActiveSession() {
		return false
	}
	if s.Suggestion == nil || s.Suggestion.DateKey != today {
		next, ok := pick(s.Context, s.Preferences, nil)
		if !ok {
			return false
		}
		s.Suggestion = &Suggestion{DateKey: today, ChallengeID: next.ID, SkippedUntil: today}
		s.RotationHistory = []string{next.ID}
		return true
	}
	if s.Suggestion.SkippedOn(today) {
		return false
	}
	skipped := *s.Suggestion
	skipped.SkippedUntil = today
	s.Suggestion = &skipped
	return true
}

func (s *State) CompleteChallenge(now time.Time) bool {
	if !s.HasActiveSession() {
		return false
	}
	done := *s.Session
	at := now
	done.CompletedAt = &at
	s.Session = &done
	s.Review.CompletedSinceReview++
	return true
}

// SaveFeedback replaces all feedback fields, so an omitted score or note
// clears a previously saved one.
func (s *State) SaveFeedback(now time.Time, score *int, note *string) bool {
	if s.Session == nil || s.Session.Abandoned() {
		return false
	}
	updated := *s.Session
	updated.FeedbackScore = copyInt(score)
	updated.FeedbackNote = nil
	if note != nil {
		if trimmed := strings.TrimSpace(*note); trimmed != "" {
			updated.FeedbackNote = &trimmed
		}
	}
	at := now
	updated.FeedbackAt = &at
	s.Session = &updated
	return true
}

// AbandonChallenge ends the running session and lines up a replacement that
// cannot be rotated further today. It returns the abandoned record, which is
// no longer reachable from s afterwards.
func (s *State) AbandonChallenge(now time.Time, today, reason, note string, pick Picker) (Session, bool) {
	reason = strings.TrimSpace(reason)
	if !s.HasActiveSession() || reason == "" {
		return Session{}, false
	}
	abandoned := *s.Session
	at := now
	abandoned.AbandonedAt = &at
	abandoned.AbandonReason = reason
	abandoned.AbandonNote = strings.TrimSpace(note)

	var exclude []string
	if s.Suggestion != nil {
		exclude = append(exclude, s.Suggestion.ChallengeID)
	}
	exclude = append(exclude, s.RotationHistory...)
	if next, ok := pick(s.Context, s.Preferences, exclude); ok {
		s.Suggestion = &Suggestion{DateKey: today, ChallengeID: next.ID, RotationsUsed: MaxRotations}
		s.RotationHistory = append(slices.Clone(s.RotationHistory), next.ID)
	} else {
		s.Suggestion = nil
	}
	s.Session = nil
	s.Review.CompletedSinceReview++
	return abandoned, true
}

func (s *State) SetPreferences(prefs Preferences) bool {
	s.Preferences = NormalizePreferences(prefs)
	return true
}

func (s *State) ResetReview(now time.Time) bool {
	at := now
	s.Review = Review{LastReviewAt: &at}
	return true
}

// ResetForDebug tears the aggregate down to a fresh day.
func (s *State) ResetForDebug(today string) bool {
	*s = NewState(today)
	return true
}

// NormalizePreferences drops an empty category list and defaults energy to any.
func NormalizePreferences(prefs Preferences) Preferences {
	out := Preferences{
		DurationPreference: prefs.DurationPreference,
		EnergyPreference:   prefs.Energy(),
	}
	if len(prefs.PreferredCategories) > 0 {
		out.PreferredCategories = slices.Clone(prefs.PreferredCategories)
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
