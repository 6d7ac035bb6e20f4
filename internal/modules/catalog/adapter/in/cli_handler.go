package in

import (
	"context"

	catalogdto "bloom/internal/modules/catalog/dto"
	catalogin "bloom/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListChallenges(ctx context.Context, category string, maxMinutes int) ([]catalogdto.ChallengeOutput, error) {
	return h.usecase.ListChallenges(ctx, catalogdto.ListChallengesInput{Category: category, MaxMinutes: maxMinutes})
}

func (h CLIHandler) GetChallenge(ctx context.Context, id string) (catalogdto.ChallengeOutput, error) {
	return h.usecase.GetChallenge(ctx, id)
}

func (h CLIHandler) ListGoals(ctx context.Context) ([]catalogdto.GoalOutput, error) {
	return h.usecase.ListGoals(ctx)
}
