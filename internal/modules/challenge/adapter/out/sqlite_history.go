package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bloom/internal/modules/challenge/domain"
	challengeout "bloom/internal/modules/challenge/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (challengeout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS challenge_sessions (
  challenge_id TEXT NOT NULL,
  accepted_at TEXT NOT NULL,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  outcome TEXT NOT NULL,
  ended_at TEXT,
  abandon_reason TEXT,
  feedback_score INTEGER,
  PRIMARY KEY (challenge_id, accepted_at)
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create challenge_sessions table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Record(ctx context.Context, record domain.HistoryRecord) error {
	const stmt = `
INSERT INTO challenge_sessions (challenge_id, accepted_at, title, category, outcome, ended_at, abandon_reason, feedback_score)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(challenge_id, accepted_at) DO UPDATE SET
  title=excluded.title,
  category=excluded.category,
  outcome=excluded.outcome,
  ended_at=excluded.ended_at,
  abandon_reason=excluded.abandon_reason,
  feedback_score=excluded.feedback_score;
`
	s := record.Session
	var endedAt sql.NullString
	switch {
	case s.AbandonedAt != nil:
		endedAt = sql.NullString{String: s.AbandonedAt.UTC().Format(time.RFC3339), Valid: true}
	case s.CompletedAt != nil:
		endedAt = sql.NullString{String: s.CompletedAt.UTC().Format(time.RFC3339), Valid: true}
	}
	var score sql.NullInt64
	if s.FeedbackScore != nil {
		score = sql.NullInt64{Int64: int64(*s.FeedbackScore), Valid: true}
	}
	_, err := p.db.ExecContext(ctx, stmt,
		s.ChallengeID,
		s.AcceptedAt.UTC().Format(time.RFC3339Nano),
		record.Title,
		record.Category,
		string(s.Outcome()),
		endedAt,
		s.AbandonReason,
		score,
	)
	if err != nil {
		return fmt.Errorf("upsert challenge session: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Stats(ctx context.Context) (domain.Stats, error) {
	stats := domain.Stats{ByCategory: map[string]int{}}

	rows, err := p.db.QueryContext(ctx, `SELECT outcome, category, COUNT(*) FROM challenge_sessions GROUP BY outcome, category`)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("query session counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var outcome, category string
		var n int
		if err := rows.Scan(&outcome, &category, &n); err != nil {
			return domain.Stats{}, fmt.Errorf("scan session counts: %w", err)
		}
		stats.Total += n
		stats.ByCategory[category] += n
		switch domain.Outcome(outcome) {
		case domain.OutcomeCompleted:
			stats.Completed += n
		case domain.OutcomeAbandoned:
			stats.Abandoned += n
		case domain.OutcomeActive:
			stats.Active += n
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Stats{}, fmt.Errorf("read session counts: %w", err)
	}

	var avg sql.NullFloat64
	err = p.db.QueryRowContext(ctx, `SELECT COUNT(feedback_score), AVG(feedback_score) FROM challenge_sessions`).Scan(&stats.WithFeedback, &avg)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("query feedback: %w", err)
	}
	if avg.Valid {
		stats.AverageScore = avg.Float64
	}
	return stats, nil
}

func (p *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM challenge_sessions`); err != nil {
		return fmt.Errorf("reset challenge sessions: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Close() error {
	return p.db.Close()
}
