// ABOUTME: Shared test helpers for the db package.
// ABOUTME: Creates throwaway databases under t.TempDir.
package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := database.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("failed to count %s rows: %v", table, err)
	}
	return n
}
