// ABOUTME: Tests for the date-keyed upserts.
// ABOUTME: Re-running a batch must replace rows, never duplicate them.
package db

import (
	"errors"
	"testing"

	"github.com/cbatts/codexvitae/internal/models"
)

func TestUpsertRemarkableIdempotent(t *testing.T) {
	database := setupTestDB(t)

	entries := []models.JournalEntry{
		{Date: "2022-01-01", Mood: 6, Entry: "First pass."},
		{Date: "2022-01-02", Mood: 7, Entry: "Second day."},
	}
	if err := UpsertRemarkable(database, entries); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := UpsertRemarkable(database, entries); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if n := countRows(t, database, "remarkable"); n != 2 {
		t.Errorf("expected 2 rows after re-run, got %d", n)
	}
}

func TestUpsertRemarkableReplacesRow(t *testing.T) {
	database := setupTestDB(t)

	if err := UpsertRemarkable(database, []models.JournalEntry{
		{Date: "2022-01-01", Mood: 4, Entry: "Draft."},
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := UpsertRemarkable(database, []models.JournalEntry{
		{Date: "2022-01-01", Mood: 8, Entry: "Revised."},
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	var mood float64
	var entry string
	err := database.QueryRow("SELECT mood, entry FROM remarkable WHERE date = '2022-01-01'").
		Scan(&mood, &entry)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if mood != 8 || entry != "Revised." {
		t.Errorf("row = (%v, %q), want (8, Revised.)", mood, entry)
	}
}

func TestUpsertRollsBackWholeBatchOnFailure(t *testing.T) {
	database := setupTestDB(t)

	// A trigger stands in for a mid-batch constraint failure.
	_, err := database.Exec(`
		CREATE TRIGGER reject_sentinel_date BEFORE INSERT ON remarkable
		WHEN NEW.date = '9999-12-31'
		BEGIN SELECT RAISE(ABORT, 'sentinel date rejected'); END`)
	if err != nil {
		t.Fatalf("failed to create trigger: %v", err)
	}

	err = UpsertRemarkable(database, []models.JournalEntry{
		{Date: "2022-01-01", Mood: 6, Entry: "Lands first."},
		{Date: "9999-12-31", Mood: 7, Entry: "Trips the trigger."},
	})
	var ue *UpsertError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want *UpsertError", err)
	}
	if ue.Table != "remarkable" {
		t.Errorf("Table = %q, want remarkable", ue.Table)
	}

	// The row that succeeded before the failure must not survive it.
	if n := countRows(t, database, "remarkable"); n != 0 {
		t.Errorf("expected 0 rows after rolled-back batch, got %d", n)
	}
}

func TestUpsertRescueTime(t *testing.T) {
	database := setupTestDB(t)

	entries := []models.TimeEntry{
		{Date: "2022-01-01", Productive: 4.5, Distracting: 1.5, Neutral: 0.5},
	}
	if err := UpsertRescueTime(database, entries); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	entries[0].Productive = 5.0
	if err := UpsertRescueTime(database, entries); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	var productive float64
	err := database.QueryRow("SELECT productive_hours FROM rescuetime WHERE date = '2022-01-01'").
		Scan(&productive)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if productive != 5.0 {
		t.Errorf("productive_hours = %v, want 5.0", productive)
	}
}

func TestUpsertExistTagsAbsentStoresZero(t *testing.T) {
	database := setupTestDB(t)

	if err := UpsertExistTags(database, []models.TagEntry{
		{Date: "2022-01-01", Tags: map[string]int{"meditation": 1, "reading": 1}},
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	var meditation, alcohol int
	err := database.QueryRow("SELECT meditation, alcohol FROM exist_tags WHERE date = '2022-01-01'").
		Scan(&meditation, &alcohol)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if meditation != 1 {
		t.Errorf("meditation = %d, want 1", meditation)
	}
	if alcohol != 0 {
		t.Errorf("alcohol = %d, want 0", alcohol)
	}
}

func TestUpsertFitnessPreservesDerivedRem(t *testing.T) {
	database := setupTestDB(t)

	if err := UpsertFitness(database, []models.FitnessEntry{
		{Date: "2022-01-01", Sleep: 6, DeepSleep: 4, LightSleep: 3, RemSleep: -1},
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	var rem float64
	err := database.QueryRow("SELECT rem_sleep FROM fitness WHERE date = '2022-01-01'").Scan(&rem)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if rem != -1 {
		t.Errorf("rem_sleep = %v, want -1 (bad upstream data stays visible)", rem)
	}
}

func TestUpsertBulletJournal(t *testing.T) {
	database := setupTestDB(t)

	if err := UpsertBulletJournal(database, []models.BulletJournalEntry{
		{Date: "2020-02-01", Mood: 4, Sleep: 7, Steps: 9000, MoodNote: "Solid day", Guitar: 1},
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if n := countRows(t, database, "bullet_journal"); n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}
}
