package usecase

import (
	"context"
	"fmt"

	"bloom/internal/modules/catalog/domain"
	catalogdto "bloom/internal/modules/catalog/dto"
	catalogin "bloom/internal/modules/catalog/port/in"
	"bloom/internal/modules/catalog/service"
	apperrors "bloom/internal/platform/errors"
	"bloom/internal/platform/validation"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListChallenges(_ context.Context, input catalogdto.ListChallengesInput) ([]catalogdto.ChallengeOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	matches := i.svc.Filter(domain.Category(input.Category), input.MaxMinutes)
	out := make([]catalogdto.ChallengeOutput, 0, len(matches))
	for _, c := range matches {
		out = append(out, toChallengeOutput(c))
	}
	return out, nil
}

func (i *Interactor) GetChallenge(_ context.Context, id string) (catalogdto.ChallengeOutput, error) {
	c, ok := i.svc.Catalog().Challenge(id)
	if !ok {
		return catalogdto.ChallengeOutput{}, fmt.Errorf("challenge %q: %w", id, apperrors.ErrNotFound)
	}
	return toChallengeOutput(c), nil
}

func (i *Interactor) ListGoals(_ context.Context) ([]catalogdto.GoalOutput, error) {
	cat := i.svc.Catalog()
	goals := cat.Goals()
	out := make([]catalogdto.GoalOutput, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalOutput(g, cat.DefaultGoalID()))
	}
	return out, nil
}

func (i *Interactor) GetGoal(_ context.Context, id string) (catalogdto.GoalOutput, error) {
	cat := i.svc.Catalog()
	g, ok := cat.Goal(id)
	if !ok {
		return catalogdto.GoalOutput{}, fmt.Errorf("goal %q: %w", id, apperrors.ErrNotFound)
	}
	return toGoalOutput(g, cat.DefaultGoalID()), nil
}

func (i *Interactor) DailyPhrase(_ context.Context, dateKey string) (string, error) {
	if dateKey == "" {
		return "", fmt.Errorf("%w: date key is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Catalog().PhraseFor(dateKey), nil
}

func toChallengeOutput(c domain.Challenge) catalogdto.ChallengeOutput {
	return catalogdto.ChallengeOutput{
		ID:          c.ID,
		Title:       c.Title,
		Category:    string(c.Category),
		DurationMin: c.DurationMin,
		Energy:      string(c.Energy),
		Prompt:      c.Prompt,
	}
}

func toGoalOutput(g domain.Goal, defaultID string) catalogdto.GoalOutput {
	cats := make([]string, 0, len(g.Categories))
	for _, c := range g.Categories {
		cats = append(cats, string(c))
	}
	return catalogdto.GoalOutput{ID: g.ID, Title: g.Title, Categories: cats, IsDefault: g.ID == defaultID}
}
