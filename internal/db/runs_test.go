// ABOUTME: Tests for the ETL run log.
package db

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cbatts/codexvitae/internal/models"
)

func TestRecordAndListRuns(t *testing.T) {
	database := setupTestDB(t)

	started := time.Date(2022, 1, 1, 6, 0, 0, 0, time.UTC)
	run := &models.ETLRun{
		Source:      "rescuetime",
		StartedAt:   started,
		FinishedAt:  started.Add(2 * time.Second),
		RowsWritten: 14,
		Status:      models.RunStatusOK,
	}
	if err := RecordRun(database, run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if run.ID == uuid.Nil {
		t.Fatal("RecordRun must assign an ID")
	}

	failed := &models.ETLRun{
		Source:     "remarkable",
		StartedAt:  started.Add(time.Minute),
		FinishedAt: started.Add(time.Minute + time.Second),
		Status:     models.RunStatusFailed,
		Error:      "journal email 3: no recognizable date",
	}
	if err := RecordRun(database, failed); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	runs, err := ListRuns(database, 10)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].Source != "remarkable" || runs[0].Status != models.RunStatusFailed {
		t.Errorf("runs[0] = %+v", runs[0])
	}
	if runs[0].Error == "" {
		t.Error("failed run must keep its error text")
	}
	if runs[1].RowsWritten != 14 {
		t.Errorf("RowsWritten = %d, want 14", runs[1].RowsWritten)
	}
}
