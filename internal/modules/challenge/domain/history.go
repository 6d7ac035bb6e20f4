package domain

// HistoryRecord is one session as projected into the history table.
type HistoryRecord struct {
	Session  Session
	Title    string
	Category string
}

// Stats aggregates projected sessions.
type Stats struct {
	Total        int
	Completed    int
	Abandoned    int
	Active       int
	WithFeedback int
	AverageScore float64
	ByCategory   map[string]int
}
