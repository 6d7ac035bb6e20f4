package service

import (
	"fmt"
	"time"

	catalogdomain "bloom/internal/modules/catalog/domain"
	"bloom/internal/modules/challenge/domain"
	"bloom/internal/platform/clock"
	apperrors "bloom/internal/platform/errors"
	"bloom/internal/platform/random"
)

type ChallengeService struct {
	clock   clock.Clock
	rnd     random.Source
	loc     *time.Location
	catalog catalogdomain.Catalog
}

func NewChallengeService(clock clock.Clock, rnd random.Source, loc *time.Location, catalog catalogdomain.Catalog) *ChallengeService {
	if loc == nil {
		loc = time.Local
	}
	return &ChallengeService{clock: clock, rnd: rnd, loc: loc, catalog: catalog}
}

func (s *ChallengeService) Now() time.Time {
	return s.clock.Now()
}

// Today is the calendar day of now in the configured location.
func (s *ChallengeService) Today() string {
	return clock.DateKey(s.clock.Now(), s.loc)
}

func (s *ChallengeService) Challenge(id string) (catalogdomain.Challenge, bool) {
	return s.catalog.Challenge(id)
}

func (s *ChallengeService) Phrase(dateKey string) string {
	return s.catalog.PhraseFor(dateKey)
}

// Goal resolves a goal id. An empty id means selection runs without a goal.
func (s *ChallengeService) Goal(goalID string) (*catalogdomain.Goal, error) {
	if goalID == "" {
		return nil, nil
	}
	g, ok := s.catalog.Goal(goalID)
	if !ok {
		return nil, fmt.Errorf("goal %q: %w", goalID, apperrors.ErrNotFound)
	}
	return &g, nil
}

// Picker binds selection to the catalog, the goal, the clock and the random
// source so transitions only supply the day context.
func (s *ChallengeService) Picker(goal *catalogdomain.Goal) domain.Picker {
	challenges := s.catalog.Challenges()
	return func(daily domain.DailyContext, prefs domain.Preferences, exclude []string) (catalogdomain.Challenge, bool) {
		return domain.Select(domain.SelectInput{
			Catalog:     challenges,
			Context:     daily,
			ExcludeIDs:  exclude,
			Goal:        goal,
			Preferences: &prefs,
			Now:         s.clock.Now(),
		}, s.rnd)
	}
}
