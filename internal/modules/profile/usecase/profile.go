package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	catalogin "bloom/internal/modules/catalog/port/in"
	"bloom/internal/modules/profile/domain"
	profiledto "bloom/internal/modules/profile/dto"
	profilein "bloom/internal/modules/profile/port/in"
	profileout "bloom/internal/modules/profile/port/out"
	apperrors "bloom/internal/platform/errors"
	"bloom/internal/platform/tx"
	"bloom/internal/platform/validation"
)

type Interactor struct {
	catalog catalogin.Usecase
	store   profileout.ProfileStore
	tx      tx.Manager
	log     *zap.Logger
}

func NewInteractor(catalog catalogin.Usecase, store profileout.ProfileStore, txm tx.Manager, log *zap.Logger) profilein.Usecase {
	if txm == nil {
		txm = tx.NoopManager{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Interactor{catalog: catalog, store: store, tx: txm, log: log}
}

func (i *Interactor) Get(ctx context.Context) (profiledto.ProfileOutput, error) {
	var profile domain.Profile
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		var err error
		profile, err = i.store.Load(ctx)
		return err
	})
	if err != nil {
		return profiledto.ProfileOutput{}, fmt.Errorf("load profile: %w", err)
	}
	return i.output(ctx, profile), nil
}

func (i *Interactor) SetGoal(ctx context.Context, input profiledto.SetGoalInput) (profiledto.ProfileOutput, error) {
	if err := validation.Struct(input); err != nil {
		return profiledto.ProfileOutput{}, err
	}
	if _, err := i.catalog.GetGoal(ctx, input.GoalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return profiledto.ProfileOutput{}, fmt.Errorf("%w: unknown goal %q", apperrors.ErrInvalidInput, input.GoalID)
		}
		return profiledto.ProfileOutput{}, err
	}
	profile, err := i.update(ctx, func(p *domain.Profile) { p.SetGoal(input.GoalID) })
	if err != nil {
		return profiledto.ProfileOutput{}, err
	}
	i.log.Info("goal set", zap.String("goal_id", input.GoalID))
	return i.output(ctx, profile), nil
}

func (i *Interactor) CompleteOnboarding(ctx context.Context) (profiledto.ProfileOutput, error) {
	profile, err := i.update(ctx, func(p *domain.Profile) { p.CompleteOnboarding() })
	if err != nil {
		return profiledto.ProfileOutput{}, err
	}
	return i.output(ctx, profile), nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		return i.store.Save(ctx, domain.Profile{})
	})
	if err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	i.log.Info("profile reset")
	return nil
}

func (i *Interactor) update(ctx context.Context, fn func(*domain.Profile)) (domain.Profile, error) {
	var profile domain.Profile
	err := i.tx.Within(ctx, func(ctx context.Context) error {
		p, err := i.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		fn(&p)
		if err := i.store.Save(ctx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}
		profile = p
		return nil
	})
	return profile, err
}

func (i *Interactor) output(ctx context.Context, p domain.Profile) profiledto.ProfileOutput {
	out := profiledto.ProfileOutput{GoalID: p.Goal(), HasOnboarded: p.HasOnboarded}
	if out.GoalID == "" {
		return out
	}
	goal, err := i.catalog.GetGoal(ctx, out.GoalID)
	if err != nil {
		i.log.Warn("stored goal is not in the catalog", zap.String("goal_id", out.GoalID))
		return out
	}
	out.GoalTitle = goal.Title
	return out
}
