package in

import (
	"context"

	"bloom/internal/modules/challenge/dto"
)

type Usecase interface {
	InitForToday(ctx context.Context) (dto.ResultOutput, error)
	Today(ctx context.Context) (dto.TodayOutput, error)
	SubmitMicroBlog(ctx context.Context, input dto.CheckInInput) (dto.ResultOutput, error)
	Accept(ctx context.Context) (dto.ResultOutput, error)
	Rotate(ctx context.Context, input dto.GoalInput) (dto.ResultOutput, error)
	Skip(ctx context.Context, input dto.GoalInput) (dto.ResultOutput, error)
	Complete(ctx context.Context) (dto.ResultOutput, error)
	SaveFeedback(ctx context.Context, input dto.FeedbackInput) (dto.ResultOutput, error)
	Abandon(ctx context.Context, input dto.AbandonInput) (dto.ResultOutput, error)
	SetPreferences(ctx context.Context, input dto.PreferencesInput) (dto.ResultOutput, error)
	ApplyReview(ctx context.Context, input dto.ReviewInput) (dto.ResultOutput, error)
	ResetReview(ctx context.Context) (dto.ResultOutput, error)
	ResetForDebug(ctx context.Context) (dto.ResultOutput, error)
	Stats(ctx context.Context) (dto.StatsOutput, error)
}
