package storage

import (
	"fmt"
	"time"
)

// Run is one headless autopilot game recorded by the bench command.
type Run struct {
	ID        int64
	Seed      int64
	Heuristic string // Weight table the engine used, as "name=weight" pairs
	Score     int
	Lines     int
	Pieces    int
	ToppedOut bool // False when the run stopped at the piece limit
	CreatedAt time.Time
}

// SaveRun records an autopilot run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO autopilot_runs (seed, heuristic, score, lines, pieces, topped_out)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Seed, r.Heuristic, r.Score, r.Lines, r.Pieces, r.ToppedOut,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs, newest first. A non-empty heuristic
// restricts the result to runs with that weight table.
func (s *Store) RecentRuns(heuristic string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, heuristic, score, lines, pieces, topped_out, created_at
		 FROM autopilot_runs
		 WHERE ? = '' OR heuristic = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		heuristic, heuristic, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.Heuristic, &r.Score, &r.Lines, &r.Pieces, &r.ToppedOut, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
