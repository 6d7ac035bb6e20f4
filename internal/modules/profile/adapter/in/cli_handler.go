package in

import (
	"context"

	profiledto "bloom/internal/modules/profile/dto"
	profilein "bloom/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (profiledto.ProfileOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) SetGoal(ctx context.Context, goalID string) (profiledto.ProfileOutput, error) {
	return h.usecase.SetGoal(ctx, profiledto.SetGoalInput{GoalID: goalID})
}

func (h CLIHandler) CompleteOnboarding(ctx context.Context) (profiledto.ProfileOutput, error) {
	return h.usecase.CompleteOnboarding(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
