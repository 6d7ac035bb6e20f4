package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryMovement   Category = "movement"
	CategoryRest       Category = "rest"
	CategoryReflection Category = "reflection"
	CategoryMental     Category = "mental"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMovement, CategoryRest, CategoryReflection, CategoryMental:
		return true
	}
	return false
}

// Energy is the effort tier a challenge asks for.
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
)

type Challenge struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    Category `yaml:"category"`
	DurationMin int      `yaml:"duration_min"`
	Energy      Energy   `yaml:"energy"`
	Prompt      string   `yaml:"prompt"`
}

type Goal struct {
	ID         string     `yaml:"id"`
	Title      string     `yaml:"title"`
	Categories []Category `yaml:"categories"`
}

// Includes reports whether the goal favours category.
func (g Goal) Includes(category Category) bool {
	for _, c := range g.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Catalog is the fixed, ordered challenge list plus goals and daily phrases.
// It is never mutated after construction.
type Catalog struct {
	challenges    []Challenge
	byID          map[string]int
	goals         []Goal
	defaultGoalID string
	phrases       []string
}

func NewCatalog(challenges []Challenge, goals []Goal, phrases []string) (Catalog, error) {
	byID := make(map[string]int, len(challenges))
	for i, c := range challenges {
		if strings.TrimSpace(c.ID) == "" {
			return Catalog{}, fmt.Errorf("challenge %d: id is required", i)
		}
		if _, dup := byID[c.ID]; dup {
			return Catalog{}, fmt.Errorf("challenge %s: duplicate id", c.ID)
		}
		if !c.Category.Valid() {
			return Catalog{}, fmt.Errorf("challenge %s: unknown category %q", c.ID, c.Category)
		}
		if c.Energy != EnergyLow && c.Energy != EnergyMedium {
			return Catalog{}, fmt.Errorf("challenge %s: unknown energy %q", c.ID, c.Energy)
		}
		if c.DurationMin <= 0 {
			return Catalog{}, fmt.Errorf("challenge %s: duration must be positive", c.ID)
		}
		byID[c.ID] = i
	}
	seenGoals := map[string]bool{}
	for _, g := range goals {
		if g.ID == "" || seenGoals[g.ID] {
			return Catalog{}, fmt.Errorf("goal %q: missing or duplicate id", g.ID)
		}
		seenGoals[g.ID] = true
		for _, c := range g.Categories {
			if !c.Valid() {
				return Catalog{}, fmt.Errorf("goal %s: unknown category %q", g.ID, c)
			}
		}
	}
	cat := Catalog{
		challenges: append([]Challenge(nil), challenges...),
		byID:       byID,
		goals:      append([]Goal(nil), goals...),
		phrases:    append([]string(nil), phrases...),
	}
	if len(goals) > 0 {
		cat.defaultGoalID = goals[0].ID
	}
	return cat, nil
}

// Challenges returns a copy in catalog order.
func (c Catalog) Challenges() []Challenge {
	return append([]Challenge(nil), c.challenges...)
}

func (c Catalog) Len() int { return len(c.challenges) }

func (c Catalog) Challenge(id string) (Challenge, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Challenge{}, false
	}
	return c.challenges[i], true
}

func (c Catalog) Goals() []Goal {
	return append([]Goal(nil), c.goals...)
}

func (c Catalog) Goal(id string) (Goal, bool) {
	for _, g := range c.goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// DefaultGoalID is the first goal listed, offered during onboarding.
func (c Catalog) DefaultGoalID() string { return c.defaultGoalID }

// PhraseFor picks the phrase of the day: the sum of the key's code points
// modulo the number of phrases.
func (c Catalog) PhraseFor(dateKey string) string {
	if len(c.phrases) == 0 {
		return ""
	}
	sum := 0
	for _, r := range dateKey {
		sum += int(r)
	}
	return c.phrases[sum%len(c.phrases)]
}
