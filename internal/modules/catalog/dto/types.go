package dto

type ListChallengesInput struct {
	Category   string `validate:"omitempty,oneof=movement rest reflection mental"`
	MaxMinutes int    `validate:"gte=0"`
}

type ChallengeOutput struct {
	ID          string
	Title       string
	Category    string
	DurationMin int
	Energy      string
	Prompt      string
}

type GoalOutput struct {
	ID         string
	Title      string
	Categories []string
	IsDefault  bool
}
