package domain

// DocumentKey names the persisted profile aggregate.
const DocumentKey = "bloom-profile"

type Profile struct {
	GoalID       *string `json:"goalId,omitempty"`
	HasOnboarded bool    `json:"hasOnboarded"`
}

func (p *Profile) SetGoal(goalID string) {
	p.GoalID = &goalID
}

func (p *Profile) CompleteOnboarding() {
	p.HasOnboarded = true
}

// Goal returns the chosen goal id or "" when none was picked.
func (p Profile) Goal() string {
	if p.GoalID == nil {
		return ""
	}
	return *p.GoalID
}
