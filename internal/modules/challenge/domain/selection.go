package domain

import (
	"slices"
	"time"

	catalogdomain "bloom/internal/modules/catalog/domain"
	"bloom/internal/platform/clock"
	"bloom/internal/platform/random"
)

// SelectInput carries everything a pick depends on. Goal and Preferences are
// optional hints.
type SelectInput struct {
	Catalog     []catalogdomain.Challenge
	Context     DailyContext
	ExcludeIDs  []string
	Goal        *catalogdomain.Goal
	Preferences *Preferences
	Now         time.Time
}

// Select narrows the catalog step by step, never letting a filter empty the
// candidate set, then picks uniformly at random. It reports false only when
// the catalog itself is empty.
func Select(in SelectInput, rnd random.Source) (catalogdomain.Challenge, bool) {
	if len(in.Catalog) == 0 {
		return catalogdomain.Challenge{}, false
	}

	base := filter(in.Catalog, func(c catalogdomain.Challenge) bool {
		return !slices.Contains(in.ExcludeIDs, c.ID)
	})

	candidates := base
	if narrowed := byGoal(candidates, in.Goal); len(narrowed) > 0 {
		candidates = narrowed
	}

	if in.Preferences != nil {
		if preferred := byPreferences(candidates, *in.Preferences); len(preferred) > 0 {
			candidates = preferred
		}
	}

	if moody := byMoodAndEnergy(candidates, in.Context.MoodOrNeutral(), in.Context.EnergyOrNeutral()); len(moody) > 0 {
		candidates = moody
	}

	if clock.DaysSince(in.Now, in.Context.LastAcceptedAt) > InactivityDays {
		candidates = shortestOnly(candidates)
	}

	if len(candidates) == 0 {
		if goalBase := byGoal(base, in.Goal); len(goalBase) > 0 {
			candidates = goalBase
		} else if len(base) > 0 {
			candidates = base
		} else {
			candidates = in.Catalog
		}
	}

	return candidates[rnd.IntN(len(candidates))], true
}

func filter(in []catalogdomain.Challenge, keep func(catalogdomain.Challenge) bool) []catalogdomain.Challenge {
	out := make([]catalogdomain.Challenge, 0, len(in))
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func byGoal(in []catalogdomain.Challenge, goal *catalogdomain.Goal) []catalogdomain.Challenge {
	if goal == nil || len(goal.Categories) == 0 {
		return nil
	}
	return filter(in, func(c catalogdomain.Challenge) bool { return goal.Includes(c.Category) })
}

func byPreferences(in []catalogdomain.Challenge, prefs Preferences) []catalogdomain.Challenge {
	out := in
	if len(prefs.PreferredCategories) > 0 {
		out = filter(out, func(c catalogdomain.Challenge) bool {
			return slices.Contains(prefs.PreferredCategories, c.Category)
		})
	}
	if prefs.DurationPreference != "" {
		out = filter(out, func(c catalogdomain.Challenge) bool {
			return prefs.DurationPreference.Matches(c.DurationMin)
		})
	}
	if energy := prefs.Energy(); energy != EnergyAny {
		out = filter(out, func(c catalogdomain.Challenge) bool {
			return string(c.Energy) == string(energy)
		})
	}
	return out
}

func byMoodAndEnergy(in []catalogdomain.Challenge, mood, energy int) []catalogdomain.Challenge {
	out := in
	switch {
	case mood <= 2:
		out = filter(out, func(c catalogdomain.Challenge) bool {
			return (c.Category == catalogdomain.CategoryRest || c.Category == catalogdomain.CategoryMental) && c.DurationMin <= 5
		})
	case mood >= 4:
		out = filter(out, func(c catalogdomain.Challenge) bool {
			return c.Category == catalogdomain.CategoryMovement || c.Category == catalogdomain.CategoryReflection
		})
	}
	if energy <= 2 {
		low := filter(out, func(c catalogdomain.Challenge) bool { return c.Energy == catalogdomain.EnergyLow })
		if len(low) > 0 {
			out = low
		}
	}
	return out
}

func shortestOnly(in []catalogdomain.Challenge) []catalogdomain.Challenge {
	if len(in) == 0 {
		return in
	}
	shortest := in[0].DurationMin
	for _, c := range in[1:] {
		shortest = min(shortest, c.DurationMin)
	}
	return filter(in, func(c catalogdomain.Challenge) bool { return c.DurationMin == shortest })
}
