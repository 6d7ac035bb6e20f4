package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocumentKey names the persisted journal aggregate.
const DocumentKey = "bloom-journal"

const (
	DefaultFeedbackTitle = "Today's challenge"
	DefaultAbandonTitle  = "Today's experiment"
)

type Source string

const (
	SourceManual   Source = "manual"
	SourceFeedback Source = "feedback"
	SourceAbandon  Source = "abandon"
)

type Entry struct {
	ID            string    `json:"id"`
	Title         *string   `json:"title,omitempty"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
	Source        Source    `json:"source,omitempty"`
	FeedbackScore *int      `json:"feedbackScore,omitempty"`
	AbandonReason string    `json:"abandonReason,omitempty"`
}

// DisplayTitle falls back to a title derived from the source.
func (e Entry) DisplayTitle() string {
	if e.Title != nil && *e.Title != "" {
		return *e.Title
	}
	switch e.Source {
	case SourceFeedback:
		return DefaultFeedbackTitle
	case SourceAbandon:
		return DefaultAbandonTitle
	}
	return "Journal entry"
}

// Journal keeps entries newest first.
type Journal struct {
	Entries []Entry `json:"entries"`
}

func (j *Journal) Prepend(e Entry) {
	j.Entries = append([]Entry{e}, j.Entries...)
}

// NewFeedbackEntry builds the note left by a feedback. It reports false when
// there is neither a score nor a note to keep.
func NewFeedbackEntry(id string, at time.Time, title string, score *int, note string) (Entry, bool) {
	note = strings.TrimSpace(note)
	if score == nil && note == "" {
		return Entry{}, false
	}
	var lines []string
	if score != nil {
		lines = append(lines, fmt.Sprintf("Feeling: %d/5", *score))
	}
	if note != "" {
		lines = append(lines, note)
	}
	entry := Entry{
		ID:        id,
		Title:     titleOr(title, DefaultFeedbackTitle),
		Text:      strings.Join(lines, "\n"),
		CreatedAt: at,
		Source:    SourceFeedback,
	}
	if score != nil {
		s := *score
		entry.FeedbackScore = &s
	}
	return entry, true
}

// NewAbandonEntry builds the note left by an abandonment. A blank reason
// yields nothing.
func NewAbandonEntry(id string, at time.Time, title, reason, note string) (Entry, bool) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Entry{}, false
	}
	text := "Why: " + reason
	if note = strings.TrimSpace(note); note != "" {
		text += "\n" + note
	}
	return Entry{
		ID:            id,
		Title:         titleOr(title, DefaultAbandonTitle),
		Text:          text,
		CreatedAt:     at,
		Source:        SourceAbandon,
		AbandonReason: reason,
	}, true
}

func NewManualEntry(id string, at time.Time, title, text string) (Entry, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, false
	}
	entry := Entry{ID: id, Text: text, CreatedAt: at, Source: SourceManual}
	if title = strings.TrimSpace(title); title != "" {
		entry.Title = &title
	}
	return entry, true
}

func titleOr(title, fallback string) *string {
	if title = strings.TrimSpace(title); title == "" {
		title = fallback
	}
	return &title
}
