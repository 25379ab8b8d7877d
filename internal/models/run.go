// ABOUTME: Run log model for ETL executions.
// ABOUTME: One row per source per run, success or failure.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	RunStatusOK     = "ok"
	RunStatusFailed = "failed"
)

// ETLRun records one source's load within an ETL execution.
type ETLRun struct {
	ID          uuid.UUID
	Source      string
	StartedAt   time.Time
	FinishedAt  time.Time
	RowsWritten int
	Status      string
	Error       string
}
