package in

import (
	"context"

	challengedto "bloom/internal/modules/challenge/dto"
	challengein "bloom/internal/modules/challenge/port/in"
)

type CLIHandler struct {
	usecase challengein.Usecase
}

func NewCLIHandler(usecase challengein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) InitForToday(ctx context.Context) (challengedto.ResultOutput, error) {
	return h.usecase.InitForToday(ctx)
}

func (h CLIHandler) Today(ctx context.Context) (challengedto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) CheckIn(ctx context.Context, mood, energy *int, note, goalID string) (challengedto.ResultOutput, error) {
	return h.usecase.SubmitMicroBlog(ctx, challengedto.CheckInInput{Mood: mood, Energy: energy, Note: note, GoalID: goalID})
}

func (h CLIHandler) Accept(ctx context.Context) (challengedto.ResultOutput, error) {
	return h.usecase.Accept(ctx)
}

func (h CLIHandler) Rotate(ctx context.Context, goalID string) (challengedto.ResultOutput, error) {
	return h.usecase.Rotate(ctx, challengedto.GoalInput{GoalID: goalID})
}

func (h CLIHandler) Skip(ctx context.Context, goalID string) (challengedto.ResultOutput, error) {
	return h.usecase.Skip(ctx, challengedto.GoalInput{GoalID: goalID})
}

func (h CLIHandler) Complete(ctx context.Context) (challengedto.ResultOutput, error) {
	return h.usecase.Complete(ctx)
}

func (h CLIHandler) Feedback(ctx context.Context, score *int, note *string) (challengedto.ResultOutput, error) {
	return h.usecase.SaveFeedback(ctx, challengedto.FeedbackInput{Score: score, Note: note})
}

func (h CLIHandler) Abandon(ctx context.Context, reason, note, goalID string) (challengedto.ResultOutput, error) {
	return h.usecase.Abandon(ctx, challengedto.AbandonInput{Reason: reason, Note: note, GoalID: goalID})
}

func (h CLIHandler) SetPreferences(ctx context.Context, categories []string, duration, energy string) (challengedto.ResultOutput, error) {
	return h.usecase.SetPreferences(ctx, challengedto.PreferencesInput{Categories: categories, Duration: duration, Energy: energy})
}

func (h CLIHandler) Review(ctx context.Context, choice string, categories []string, duration, energy string) (challengedto.ResultOutput, error) {
	return h.usecase.ApplyReview(ctx, challengedto.ReviewInput{
		Choice:      choice,
		Preferences: challengedto.PreferencesInput{Categories: categories, Duration: duration, Energy: energy},
	})
}

func (h CLIHandler) ResetReview(ctx context.Context) (challengedto.ResultOutput, error) {
	return h.usecase.ResetReview(ctx)
}

func (h CLIHandler) ResetForDebug(ctx context.Context) (challengedto.ResultOutput, error) {
	return h.usecase.ResetForDebug(ctx)
}

func (h CLIHandler) Stats(ctx context.Context) (challengedto.StatsOutput, error) {
	return h.usecase.Stats(ctx)
}
