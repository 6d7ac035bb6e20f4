package in

import (
	"context"

	"bloom/internal/modules/catalog/dto"
)

type Usecase interface {
	ListChallenges(ctx context.Context, input dto.ListChallengesInput) ([]dto.ChallengeOutput, error)
	GetChallenge(ctx context.Context, id string) (dto.ChallengeOutput, error)
	ListGoals(ctx context.Context) ([]dto.GoalOutput, error)
	GetGoal(ctx context.Context, id string) (dto.GoalOutput, error)
	DailyPhrase(ctx context.Context, dateKey string) (string, error)
}
