// ABOUTME: Run log persistence for ETL executions.
// ABOUTME: Supports recording runs and listing recent history.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cbatts/codexvitae/internal/models"
)

// RecordRun inserts one run log row, assigning an ID if unset.
func RecordRun(db *sql.DB, run *models.ETLRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	_, err := db.Exec(`
		INSERT INTO etl_runs (id, source, started_at, finished_at, rows_written, status, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.Source,
		run.StartedAt.Format(time.RFC3339), run.FinishedAt.Format(time.RFC3339),
		run.RowsWritten, run.Status, run.Error)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns retrieves recent runs, newest first.
func ListRuns(db *sql.DB, limit int) ([]*models.ETLRun, error) {
	rows, err := db.Query(`
		SELECT id, source, started_at, finished_at, rows_written, status, COALESCE(error, '')
		FROM etl_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ETLRun
	for rows.Next() {
		var r models.ETLRun
		var idStr, startedAt, finishedAt string
		if err := rows.Scan(&idStr, &r.Source, &startedAt, &finishedAt,
			&r.RowsWritten, &r.Status, &r.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid run ID in database: %w", err)
		}
		r.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid started_at timestamp: %w", err)
		}
		r.FinishedAt, err = time.Parse(time.RFC3339, finishedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid finished_at timestamp: %w", err)
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}
