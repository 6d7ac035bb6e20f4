package dto

type SetGoalInput struct {
	GoalID string `validate:"required"`
}

type ProfileOutput struct {
	GoalID       string
	GoalTitle    string
	HasOnboarded bool
}
