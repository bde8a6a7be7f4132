package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Get when no record has the requested ID.
var ErrNotFound = errors.New("solve record not found")

// timeLayout is RFC 3339 with fixed-width nanoseconds, so stored
// timestamps sort chronologically as strings.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SolveRecord is one archived solve run.
type SolveRecord struct {
	ID        string        // UUIDv7 run ID
	Puzzle    string        // input grid, comma-separated rows joined by newlines
	Solution  string        // solved grid in the same form; empty unless Status is "solved"
	Status    string        // "solved", "unsolvable", or "aborted"
	Nodes     int           // search trial assignments
	MaxDepth  int           // deepest recursion reached
	Duration  time.Duration // wall-clock solve time
	CreatedAt time.Time
}

// RecordSolve inserts a solve run into the archive.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate run IDs
// are silently ignored.
func (s *Store) RecordSolve(ctx context.Context, rec SolveRecord) error {
	var solution any
	if rec.Solution != "" {
		solution = rec.Solution
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO solves
		(id, puzzle, solution, status, nodes, max_depth, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Puzzle,
		solution,
		rec.Status,
		rec.Nodes,
		rec.MaxDepth,
		rec.Duration.Milliseconds(),
		rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record solve: %w", err)
	}

	return nil
}

// List returns the most recent solve runs, newest first. limit <= 0
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]SolveRecord, error) {
	query := `
		SELECT id, puzzle, solution, status, nodes, max_depth, duration_ms, created_at
		FROM solves
		ORDER BY created_at DESC, id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}
	defer rows.Close()

	var recs []SolveRecord
	for rows.Next() {
		rec, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("list solves: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list solves: %w", err)
	}

	return recs, nil
}

// Get returns the solve run with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (SolveRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, puzzle, solution, status, nodes, max_depth, duration_ms, created_at
		FROM solves
		WHERE id = ?
	`, id)
	if err != nil {
		return SolveRecord{}, fmt.Errorf("get solve: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return SolveRecord{}, fmt.Errorf("get solve: %w", err)
		}
		return SolveRecord{}, ErrNotFound
	}

	rec, err := scanSolve(rows)
	if err != nil {
		return SolveRecord{}, fmt.Errorf("get solve: %w", err)
	}
	return rec, nil
}

func scanSolve(rows *sql.Rows) (SolveRecord, error) {
	var (
		rec        SolveRecord
		solution   sql.NullString
		durationMS int64
		createdAt  string
	)
	if err := rows.Scan(&rec.ID, &rec.Puzzle, &solution, &rec.Status, &rec.Nodes, &rec.MaxDepth, &durationMS, &createdAt); err != nil {
		return SolveRecord{}, err
	}
	rec.Solution = solution.String
	rec.Duration = time.Duration(durationMS) * time.Millisecond

	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return SolveRecord{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	rec.CreatedAt = ts

	return rec, nil
}
