package in

import (
	"context"

	"bloom/internal/modules/profile/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.ProfileOutput, error)
	SetGoal(ctx context.Context, input dto.SetGoalInput) (dto.ProfileOutput, error)
	CompleteOnboarding(ctx context.Context) (dto.ProfileOutput, error)
	Reset(ctx context.Context) error
}
