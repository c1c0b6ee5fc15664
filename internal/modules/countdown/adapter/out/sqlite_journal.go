package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"countdown/internal/modules/countdown/domain"
	countdownout "countdown/internal/modules/countdown/port/out"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLiteJournal(dbPath string) (countdownout.Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Appends arrive from every timer's tick goroutine; one connection
	// serializes them instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	journal := &SQLiteJournal{db: db}
	if err := journal.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return journal, nil
}

func (s *SQLiteJournal) Close() error {
	return s.db.Close()
}

func (s *SQLiteJournal) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS timer_history (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  timer_id TEXT NOT NULL,
  name TEXT NOT NULL,
  is_primary INTEGER NOT NULL,
  start_time TEXT NOT NULL,
  target_time TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  outcome TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create timer_history table: %w", err)
	}
	return nil
}

func (s *SQLiteJournal) Append(ctx context.Context, record domain.Record) error {
	const stmt = `
INSERT INTO timer_history (timer_id, name, is_primary, start_time, target_time, ended_at, outcome)
VALUES (?, ?, ?, ?, ?, ?, ?);
`
	primary := 0
	if record.Primary {
		primary = 1
	}
	_, err := s.db.ExecContext(ctx, stmt,
		record.TimerID,
		record.Name,
		primary,
		record.StartTime.Format(timeLayout),
		record.TargetTime.Format(timeLayout),
		record.EndedAt.Format(timeLayout),
		string(record.Outcome),
	)
	if err != nil {
		return fmt.Errorf("append timer history: %w", err)
	}
	return nil
}

// Recent returns the newest records first.
func (s *SQLiteJournal) Recent(ctx context.Context, limit int) ([]domain.Record, error) {
	const query = `
SELECT timer_id, name, is_primary, start_time, target_time, ended_at, outcome
FROM timer_history
ORDER BY seq DESC
LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query timer history: %w", err)
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		rec := domain.Record{}
		var primary int
		var start, target, ended, kind string
		if err := rows.Scan(&rec.TimerID, &rec.Name, &primary, &start, &target, &ended, &kind); err != nil {
			return nil, fmt.Errorf("scan timer history: %w", err)
		}
		rec.Primary = primary == 1
		rec.Outcome = domain.Outcome(kind)
		if rec.StartTime, err = time.Parse(timeLayout, start); err != nil {
			return nil, fmt.Errorf("parse start_time: %w", err)
		}
		if rec.TargetTime, err = time.Parse(timeLayout, target); err != nil {
			return nil, fmt.Errorf("parse target_time: %w", err)
		}
		if rec.EndedAt, err = time.Parse(timeLayout, ended); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timer history: %w", err)
	}
	return out, nil
}
