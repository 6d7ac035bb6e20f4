package dto

import "time"

type FeedbackEntryInput struct {
	Title string
	Score *int `validate:"omitempty,gte=1,lte=5"`
	Note  string
}

type AbandonEntryInput struct {
	Title  string
	Reason string
	Note   string
}

type AddEntryInput struct {
	Title string
	Text  string
}

type ListInput struct {
	Source string `validate:"omitempty,oneof=manual feedback abandon"`
	Limit  int    `validate:"gte=0"`
}

type EntryOutput struct {
	ID            string
	Title         string
	Text          string
	CreatedAt     time.Time
	Source        string
	FeedbackScore *int
	AbandonReason string
}

// RecordOutput reports whether an entry was kept; blank input is dropped.
type RecordOutput struct {
	Recorded bool
	Entry    *EntryOutput
}

type ExportOutput struct {
	Paths []string
}
