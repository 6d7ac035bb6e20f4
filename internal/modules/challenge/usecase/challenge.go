package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	catalogdomain "bloom/internal/modules/catalog/domain"
	"bloom/internal/modules/challenge/domain"
	challengedto "bloom/internal/modules/challenge/dto"
	challengein "bloom/internal/modules/challenge/port/in"
	challengeout "bloom/internal/modules/challenge/port/out"
	"bloom/internal/modules/challenge/service"
	apperrors "bloom/internal/platform/errors"
	"bloom/internal/platform/tx"
	"bloom/internal/platform/validation"
)

const (
	ReviewContinue = "continue"
	ReviewAdjust   = "adjust"
	ReviewChange   = "change"
)

type Interactor struct {
	svc     *service.ChallengeService
	store   challengeout.StateStore
	journal challengeout.JournalSink
	history challengeout.HistoryProjector
	tx      tx.Manager
	log     *zap.Logger
}

func NewInteractor(
	svc *service.ChallengeService,
	store challengeout.StateStore,
	journal challengeout.JournalSink,
	history challengeout.HistoryProjector,
	txm tx.Manager,
	log *zap.Logger,
) challengein.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{svc: svc, store: store, journal: journal, history: history, tx: txm, log: log}
}

func (i *Interactor) InitForToday(ctx context.Context) (challengedto.ResultOutput, error) {
	today := i.svc.Today()
	out, _, err := i.transition(ctx, "init_for_today", func(s *domain.State) bool {
		return s.InitForToday(today)
	})
	return out, err
}

func (i *Interactor) Today(ctx context.Context) (challengedto.TodayOutput, error) {
	var view challengedto.TodayOutput
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		state, err := i.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load challenge state: %w", err)
		}
		view = i.view(state)
		return nil
	})
	return view, err
}

func (i *Interactor) SubmitMicroBlog(ctx context.Context, input challengedto.CheckInInput) (challengedto.ResultOutput, error) {
	if err := validation.Struct(input); err != nil {
		return challengedto.ResultOutput{}, err
	}
	pick, err := i.picker(input.GoalID)
	if err != nil {
		return challengedto.ResultOutput{}, err
	}
	today := i.svc.Today()
	out, _, err := i.transition(ctx, "submit_micro_blog", func(s *domain.State) bool {
		return s.SubmitMicroBlog(today, input.Mood, input.Energy, input.Note, pick)
	})
	return out, err
}

func (i *Interactor) Accept(ctx context.Context) (challengedto.ResultOutput, error) {
	now, today := i.svc.Now(), i.svc.Today()
	out, state, err := i.transition(ctx, "accept", func(s *domain.State) bool {
		return s.AcceptChallenge(now, today)
	})
	if err == nil && out.Applied {
		i.project(ctx, *state.Session)
	}
	return out, err
}

func (i *Interactor) Rotate(ctx context.Context, input challengedto.GoalInput) (challengedto.ResultOutput, error) {
	pick, err := i.picker(input.GoalID)
	if err != nil {
		return challengedto.ResultOutput{}, err
	}
	today := i.svc.Today()
	out, _, err := i.transition(ctx, "rotate", func(s *domain.State) bool {
		return s.RotateChallenge(today, pick)
	})
	return out, err
}

func (i *Interactor) Skip(ctx context.Context, input challengedto.GoalInput) (challengedto.ResultOutput, error) {
	pick, err := i.picker(input.GoalID)
	if err != nil {
		return challengedto.ResultOutput{}, err
	}
	today := i.svc.Today()
	out, _, err := i.transition(ctx, "skip", func(s *domain.State) bool {
		return s.SkipToday(today, pick)
	})
	return out, err
}

func (i *Interactor) Complete(ctx context.Context) (challengedto.ResultOutput, error) {
	now := i.svc.Now()
	out, state, err := i.transition(ctx, "complete", func(s *domain.State) bool {
		return s.CompleteChallenge(now)
	})
	if err == nil && out.Applied {
		i.project(ctx, *state.Session)
	}
	return out, err
}

func (i *Interactor) SaveFeedback(ctx context.Context, input challengedto.FeedbackInput) (challengedto.ResultOutput, error) {
	if err := validation.Struct(input); err != nil {
		return challengedto.ResultOutput{}, err
	}
	now := i.svc.Now()
	out, state, err := i.transition(ctx, "save_feedback", func(s *domain.State) bool {
		return s.SaveFeedback(now, input.Score, input.Note)
	})
	if err != nil || !out.Applied {
		return out, err
	}
	session := *state.Session
	note := ""
	if session.FeedbackNote != nil {
		note = *session.FeedbackNote
	}
	if i.journal != nil {
		if jerr := i.journal.RecordFeedback(ctx, i.title(session.ChallengeID), session.FeedbackScore, note); jerr != nil {
			i.log.Warn("journal feedback", zap.String("challenge_id", session.ChallengeID), zap.Error(jerr))
		}
	}
	i.project(ctx, session)
	return out, nil
}

func (i *Interactor) Abandon(ctx context.Context, input challengedto.AbandonInput) (challengedto.ResultOutput, error) {
	pick, err := i.picker(input.GoalID)
	if err != nil {
		return challengedto.ResultOutput{}, err
	}
	now, today := i.svc.Now(), i.svc.Today()
	var abandoned domain.Session
	out, _, err := i.transition(ctx, "abandon", func(s *domain.State) bool {
		record, ok := s.AbandonChallenge(now, today, input.Reason, input.Note, pick)
		abandoned = record
		return ok
	})
	if err != nil || !out.Applied {
		return out, err
	}
	if i.journal != nil {
		if jerr := i.journal.RecordAbandon(ctx, i.title(abandoned.ChallengeID), abandoned.AbandonReason, abandoned.AbandonNote); jerr != nil {
			i.log.Warn("journal abandon", zap.String("challenge_id", abandoned.ChallengeID), zap.Error(jerr))
		}
	}
	i.project(ctx, abandoned)
	return out, nil
}

func (i *Interactor) SetPreferences(ctx context.Context, input challengedto.PreferencesInput) (challengedto.ResultOutput, error) {
	if err := validation.Struct(input); err != nil {
		return challengedto.ResultOutput{}, err
	}
	prefs := toPreferences(input)
	out, _, err := i.transition(ctx, "set_preferences", func(s *domain.State) bool {
		return s.SetPreferences(prefs)
	})
	return out, err
}

// ApplyReview records the answer to a due review and starts a new cycle.
func (i *Interactor) ApplyReview(ctx context.Context, input challengedto.ReviewInput) (challengedto.ResultOutput, error) {
	if err := validation.Struct(input); err != nil {
		return challengedto.ResultOutput{}, err
	}
	if input.Choice == ReviewChange && len(input.Preferences.Categories) == 0 {
		return challengedto.ResultOutput{}, fmt.Errorf("%w: change needs at least one category", apperrors.ErrInvalidInput)
	}
	now := i.svc.Now()
	next := toPreferences(input.Preferences)
	out, _, err := i.transition(ctx, "review_"+input.Choice, func(s *domain.State) bool {
		switch input.Choice {
		case ReviewAdjust:
			s.SetPreferences(next)
		case ReviewChange:
			prefs := s.Preferences
			prefs.PreferredCategories = next.PreferredCategories
			s.SetPreferences(prefs)
		}
		return s.ResetReview(now)
	})
	return out, err
}

func (i *Interactor) ResetReview(ctx context.Context) (challengedto.ResultOutput, error) {
	now := i.svc.Now()
	out, _, err := i.transition(ctx, "reset_review", func(s *domain.State) bool {
		return s.ResetReview(now)
	})
	return out, err
}

func (i *Interactor) ResetForDebug(ctx context.Context) (challengedto.ResultOutput, error) {
	today := i.svc.Today()
	out, _, err := i.transition(ctx, "reset_for_debug", func(s *domain.State) bool {
		return s.ResetForDebug(today)
	})
	if err != nil {
		return out, err
	}
	if i.history != nil {
		if herr := i.history.Reset(ctx); herr != nil {
			i.log.Warn("reset history", zap.Error(herr))
		}
	}
	return out, nil
}

func (i *Interactor) Stats(ctx context.Context) (challengedto.StatsOutput, error) {
	if i.history == nil {
		return challengedto.StatsOutput{ByCategory: map[string]int{}}, nil
	}
	stats, err := i.history.Stats(ctx)
	if err != nil {
		return challengedto.StatsOutput{}, fmt.Errorf("session stats: %w", err)
	}
	return challengedto.StatsOutput{
		Total:        stats.Total,
		Completed:    stats.Completed,
		Abandoned:    stats.Abandoned,
		Active:       stats.Active,
		WithFeedback: stats.WithFeedback,
		AverageScore: stats.AverageScore,
		ByCategory:   stats.ByCategory,
	}, nil
}

// transition loads the aggregate, runs fn on it and saves it back when fn
// reports a change. The returned state is the one fn left behind.
func (i *Interactor) transition(ctx context.Context, op string, fn func(*domain.State) bool) (challengedto.ResultOutput, domain.State, error) {
	var (
		out   challengedto.ResultOutput
		state domain.State
	)
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		s, err := i.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load challenge state: %w", err)
		}
		applied := fn(&s)
		if applied {
			if err := i.store.Save(ctx, s); err != nil {
				return fmt.Errorf("save challenge state: %w", err)
			}
		}
		state = s
		out = challengedto.ResultOutput{Applied: applied, Today: i.view(s)}
		return nil
	})
	if err != nil {
		return challengedto.ResultOutput{}, domain.State{}, err
	}

	fields := []zap.Field{zap.String("op", op), zap.String("date_key", state.Context.DateKey)}
	if state.Suggestion != nil {
		fields = append(fields, zap.String("challenge_id", state.Suggestion.ChallengeID))
	}
	if out.Applied {
		i.log.Info("challenge transition", fields...)
	} else {
		i.log.Debug("challenge transition skipped", fields...)
	}
	return out, state, nil
}

func (i *Interactor) picker(goalID string) (domain.Picker, error) {
	goal, err := i.svc.Goal(goalID)
	if err != nil {
		return nil, err
	}
	return i.svc.Picker(goal), nil
}

func (i *Interactor) project(ctx context.Context, session domain.Session) {
	if i.history == nil {
		return
	}
	record := domain.HistoryRecord{Session: session}
	if c, ok := i.svc.Challenge(session.ChallengeID); ok {
		record.Title = c.Title
		record.Category = string(c.Category)
	}
	if err := i.history.Record(ctx, record); err != nil {
		i.log.Warn("project session", zap.String("challenge_id", session.ChallengeID), zap.Error(err))
	}
}

func (i *Interactor) title(challengeID string) string {
	if c, ok := i.svc.Challenge(challengeID); ok {
		return c.Title
	}
	return ""
}

func (i *Interactor) view(s domain.State) challengedto.TodayOutput {
	today := i.svc.Today()
	out := challengedto.TodayOutput{
		DateKey:              s.Context.DateKey,
		Mood:                 s.Context.Mood,
		Energy:               s.Context.Energy,
		Note:                 s.Context.Note,
		CheckedIn:            s.Context.DateKey == today && (s.Context.Mood != nil || s.Context.Energy != nil),
		RotationsLeft:        s.RotationsLeft(today),
		ReviewDue:            s.Review.Due(),
		CompletedSinceReview: s.Review.CompletedSinceReview,
		LastReviewAt:         s.Review.LastReviewAt,
		Preferences:          toPreferencesOutput(s.Preferences),
		Phrase:               i.svc.Phrase(today),
	}
	out.CanRotate = out.RotationsLeft > 0
	if s.Suggestion != nil {
		skipped := s.Suggestion.SkippedOn(today)
		out.Suggestion = &challengedto.SuggestionOutput{
			Challenge:     i.challengeView(s.Suggestion.ChallengeID),
			RotationsUsed: s.Suggestion.RotationsUsed,
			Skipped:       skipped,
		}
		out.CanAccept = !skipped && !s.HasActiveSession()
	}
	if s.Session != nil {
		out.Session = &challengedto.SessionOutput{
			Challenge:     i.challengeView(s.Session.ChallengeID),
			Outcome:       string(s.Session.Outcome()),
			AcceptedAt:    s.Session.AcceptedAt,
			CompletedAt:   s.Session.CompletedAt,
			AbandonedAt:   s.Session.AbandonedAt,
			AbandonReason: s.Session.AbandonReason,
			FeedbackScore: s.Session.FeedbackScore,
			FeedbackNote:  s.Session.FeedbackNote,
		}
	}
	return out
}

func (i *Interactor) challengeView(id string) challengedto.ChallengeView {
	c, ok := i.svc.Challenge(id)
	if !ok {
		return challengedto.ChallengeView{ID: id}
	}
	return challengedto.ChallengeView{
		ID:          c.ID,
		Title:       c.Title,
		Category:    string(c.Category),
		DurationMin: c.DurationMin,
		Energy:      string(c.Energy),
		Prompt:      c.Prompt,
	}
}

func toPreferences(input challengedto.PreferencesInput) domain.Preferences {
	prefs := domain.Preferences{
		DurationPreference: domain.DurationPreference(input.Duration),
		EnergyPreference:   domain.EnergyPreference(input.Energy),
	}
	for _, c := range input.Categories {
		prefs.PreferredCategories = append(prefs.PreferredCategories, catalogdomain.Category(c))
	}
	return prefs
}

func toPreferencesOutput(p domain.Preferences) challengedto.PreferencesOutput {
	out := challengedto.PreferencesOutput{
		Duration: string(p.DurationPreference),
		Energy:   string(p.Energy()),
	}
	for _, c := range p.PreferredCategories {
		out.Categories = append(out.Categories, string(c))
	}
	return out
}
