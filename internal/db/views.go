// ABOUTME: Read access to the unified journal and time views.
// ABOUTME: Views return normalized mood and hours regardless of source units.
package db

import (
	"database/sql"
	"fmt"
)

// JournalRow is one row of journal_view: mood normalized to [-1, 1].
type JournalRow struct {
	Date  string
	Mood  float64
	Entry string
}

// TimeRow is one row of time_view: all columns in hours.
type TimeRow struct {
	Date      string
	PrdHours  float64
	DstHours  float64
	NeutHours float64
}

// QueryJournalView returns every journal row across all sources, date
// ascending. Days tracked in more than one source yield one row per source.
func QueryJournalView(db *sql.DB) ([]JournalRow, error) {
	rows, err := db.Query(`
		SELECT date, mood, COALESCE(entry, '')
		FROM journal_view ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal view: %w", err)
	}
	defer rows.Close()

	var out []JournalRow
	for rows.Next() {
		var r JournalRow
		if err := rows.Scan(&r.Date, &r.Mood, &r.Entry); err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// QueryTimeView returns every time row across both sources, date ascending.
func QueryTimeView(db *sql.DB) ([]TimeRow, error) {
	rows, err := db.Query(`
		SELECT date, prd_hours, dst_hours, neut_hours
		FROM time_view ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query time view: %w", err)
	}
	defer rows.Close()

	var out []TimeRow
	for rows.Next() {
		var r TimeRow
		if err := rows.Scan(&r.Date, &r.PrdHours, &r.DstHours, &r.NeutHours); err != nil {
			return nil, fmt.Errorf("failed to scan time row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
