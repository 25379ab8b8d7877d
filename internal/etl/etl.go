// ABOUTME: Batch orchestration for all data sources.
// ABOUTME: Each source loads in isolation and is recorded in the run log.
package etl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cbatts/codexvitae/internal/db"
	"github.com/cbatts/codexvitae/internal/exist"
	"github.com/cbatts/codexvitae/internal/gmail"
	"github.com/cbatts/codexvitae/internal/models"
	"github.com/cbatts/codexvitae/internal/mood"
	"github.com/cbatts/codexvitae/internal/textproc"
)

// SyncWindowDays is how far back an incremental run reaches. It matches the
// RescueTime feed's coverage so the two email sources stay in step with it.
const SyncWindowDays = 14

// MailSearcher is the slice of the Gmail client the runner needs.
type MailSearcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

// TimeFeed is the slice of the RescueTime client the runner needs.
type TimeFeed interface {
	DailySummary(ctx context.Context) ([]models.TimeEntry, error)
}

// Runner executes source loads against one database.
type Runner struct {
	DB         *sql.DB
	Log        *log.Logger
	Mail       MailSearcher
	Feed       TimeFeed
	JournalQry string // matches the tablet journal sender
	ReportQry  string // matches the weekly diet report sender
	Now        func() time.Time
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// runSource executes one source load, records it in the run log, and never
// lets its failure escape as anything but a returned error: a broken source
// must not block the sources after it.
func (r *Runner) runSource(source string, fn func() (int, error)) error {
	started := r.now()
	r.Log.Info("loading source", "source", source)

	rows, err := fn()
	run := &models.ETLRun{
		Source:      source,
		StartedAt:   started,
		FinishedAt:  r.now(),
		RowsWritten: rows,
		Status:      models.RunStatusOK,
	}
	if err != nil {
		run.Status = models.RunStatusFailed
		run.Error = err.Error()
		r.Log.Error("source failed", "source", source, "err", err)
	} else {
		r.Log.Info("source loaded", "source", source, "rows", rows)
	}

	if recErr := db.RecordRun(r.DB, run); recErr != nil {
		r.Log.Warn("could not record run", "source", source, "err", recErr)
	}
	return err
}

// checkMood rejects a mood outside the source's native scale. Out-of-range
// means an upstream bug; the row must never be stored or silently clamped.
func checkMood(source models.JournalSource, date string, raw float64) error {
	if _, err := mood.Normalize(raw, source); err != nil {
		return fmt.Errorf("date %s: %w", date, err)
	}
	return nil
}

func checkJournalMoods(source models.JournalSource, entries []models.JournalEntry) error {
	for _, e := range entries {
		if err := checkMood(source, e.Date, e.Mood); err != nil {
			return err
		}
	}
	return nil
}

// LoadJournalMail fetches and parses tablet journal emails for the given
// search windows and upserts them.
func (r *Runner) LoadJournalMail(ctx context.Context, windows []string) error {
	return r.runSource(string(models.SourceRemarkable), func() (int, error) {
		var bodies []string
		for _, window := range windows {
			batch, err := r.Mail.Search(ctx, r.JournalQry+" "+window)
			if err != nil {
				return 0, err
			}
			bodies = append(bodies, batch...)
		}

		entries, err := textproc.ParseJournal(bodies)
		if err != nil {
			return 0, err
		}
		if err := checkJournalMoods(models.SourceRemarkable, entries); err != nil {
			return 0, err
		}
		if err := db.UpsertRemarkable(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	})
}

// LoadReportMail fetches weekly diet report emails for the given search
// windows and upserts their fitness and nutrition tables.
func (r *Runner) LoadReportMail(ctx context.Context, windows []string) error {
	return r.runSource("mynetdiary", func() (int, error) {
		var bodies []string
		for _, window := range windows {
			batch, err := r.Mail.Search(ctx, r.ReportQry+" "+window)
			if err != nil {
				return 0, err
			}
			bodies = append(bodies, batch...)
		}

		today := r.now()
		var fitness []models.FitnessEntry
		var nutrition []models.NutritionEntry
		for _, body := range bodies {
			f, err := textproc.ParseFitness(body)
			if err != nil {
				return 0, err
			}
			fitness = append(fitness, f...)

			n, err := textproc.ParseNutrition(body, today)
			if err != nil {
				return 0, err
			}
			nutrition = append(nutrition, n...)
		}

		if err := db.UpsertFitness(r.DB, fitness); err != nil {
			return 0, err
		}
		if err := db.UpsertNutrition(r.DB, nutrition); err != nil {
			return 0, err
		}
		return len(fitness) + len(nutrition), nil
	})
}

// LoadRescueTime fetches the daily summary feed and upserts it.
func (r *Runner) LoadRescueTime(ctx context.Context) error {
	return r.runSource("rescuetime", func() (int, error) {
		entries, err := r.Feed.DailySummary(ctx)
		if err != nil {
			return 0, err
		}
		if err := db.UpsertRescueTime(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	})
}

// LoadExtract loads the Exist full-extract directory: journal, time, tags,
// and wearable data, each as its own recorded source.
func (r *Runner) LoadExtract(dir string) error {
	var errs []error

	errs = append(errs, r.runSource(string(models.SourceExistJournal), func() (int, error) {
		entries, err := exist.LoadJournal(dir)
		if err != nil {
			return 0, err
		}
		if err := checkJournalMoods(models.SourceExistJournal, entries); err != nil {
			return 0, err
		}
		if err := db.UpsertExistJournal(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	}))

	errs = append(errs, r.runSource("exist_time", func() (int, error) {
		entries, err := exist.LoadTime(dir)
		if err != nil {
			return 0, err
		}
		if err := db.UpsertExistTime(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	}))

	errs = append(errs, r.runSource("exist_tags", func() (int, error) {
		entries, err := exist.LoadTags(dir)
		if err != nil {
			return 0, err
		}
		if err := db.UpsertExistTags(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	}))

	errs = append(errs, r.runSource("exist_fitness", func() (int, error) {
		entries, err := exist.LoadFitness(dir)
		if err != nil {
			return 0, err
		}
		if err := db.UpsertExistFitness(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	}))

	return errors.Join(errs...)
}

// LoadMoodCharts loads the mood chart CSV.
func (r *Runner) LoadMoodCharts(path string) error {
	return r.runSource(string(models.SourceMoodCharts), func() (int, error) {
		entries, err := exist.LoadMoodCharts(path)
		if err != nil {
			return 0, err
		}
		for _, e := range entries {
			if err := checkMood(models.SourceMoodCharts, e.Date, e.Mood); err != nil {
				return 0, err
			}
		}
		if err := db.UpsertMoodCharts(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	})
}

// LoadBulletJournal loads the bullet journal CSV.
func (r *Runner) LoadBulletJournal(path string) error {
	return r.runSource(string(models.SourceBulletJournal), func() (int, error) {
		entries, err := exist.LoadBulletJournal(path)
		if err != nil {
			return 0, err
		}
		for _, e := range entries {
			if err := checkMood(models.SourceBulletJournal, e.Date, e.Mood); err != nil {
				return 0, err
			}
		}
		if err := db.UpsertBulletJournal(r.DB, entries); err != nil {
			return 0, err
		}
		return len(entries), nil
	})
}

// BackfillOptions describes a full historical load.
type BackfillOptions struct {
	From             time.Time
	To               time.Time
	ExtractDir       string
	MoodChartsCSV    string
	BulletJournalCSV string
}

// Backfill runs every configured source over its full history. Sources are
// independent; failures are collected, not fatal mid-run.
func (r *Runner) Backfill(ctx context.Context, opts BackfillOptions) error {
	var errs []error

	if opts.ExtractDir != "" {
		errs = append(errs, r.LoadExtract(opts.ExtractDir))
	}
	if opts.MoodChartsCSV != "" {
		errs = append(errs, r.LoadMoodCharts(opts.MoodChartsCSV))
	}
	if opts.BulletJournalCSV != "" {
		errs = append(errs, r.LoadBulletJournal(opts.BulletJournalCSV))
	}
	if r.Mail != nil {
		// A zero start date would window the search from year 0001, one
		// provider call per window. History has a definite start; make the
		// operator state it.
		if opts.From.IsZero() {
			errs = append(errs, errors.New("backfill needs a start date for email history; set --from or backfill_from"))
		} else {
			windows := gmail.DateWindows(opts.From, opts.To, 0)
			errs = append(errs, r.LoadJournalMail(ctx, windows))
			errs = append(errs, r.LoadReportMail(ctx, windows))
		}
	}
	if r.Feed != nil {
		errs = append(errs, r.LoadRescueTime(ctx))
	}

	return errors.Join(errs...)
}

// Sync runs an incremental load over the recent window: new journal and
// report emails plus the RescueTime feed.
func (r *Runner) Sync(ctx context.Context) error {
	var errs []error

	to := r.now().AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -SyncWindowDays-1)
	windows := gmail.DateWindows(from, to, 0)

	if r.Mail != nil {
		errs = append(errs, r.LoadJournalMail(ctx, windows))
		errs = append(errs, r.LoadReportMail(ctx, windows))
	}
	if r.Feed != nil {
		errs = append(errs, r.LoadRescueTime(ctx))
	}

	return errors.Join(errs...)
}
