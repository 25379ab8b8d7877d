// ABOUTME: Date-keyed upserts for every source table.
// ABOUTME: Each call writes its whole batch in a single transaction.
package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/cbatts/codexvitae/internal/models"
)

// UpsertError reports a failed batch write. The transaction is rolled back,
// so the table holds either the whole batch or none of it.
type UpsertError struct {
	Table string
	Err   error
}

func (e *UpsertError) Error() string {
	return fmt.Sprintf("upsert %s: %v", e.Table, e.Err)
}

func (e *UpsertError) Unwrap() error { return e.Err }

// inTx runs fn inside one transaction and wraps any failure as an UpsertError.
func inTx(db *sql.DB, table string, fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return &UpsertError{Table: table, Err: err}
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return &UpsertError{Table: table, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &UpsertError{Table: table, Err: err}
	}
	return nil
}

// upsertJournal serves both journal tables; they share one shape.
func upsertJournal(db *sql.DB, table string, entries []models.JournalEntry) error {
	stmt := fmt.Sprintf(`
		INSERT INTO %s (date, mood, entry) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			mood = excluded.mood,
			entry = excluded.entry`, table)

	return inTx(db, table, func(tx *sql.Tx) error {
		for _, e := range entries {
			if _, err := tx.Exec(stmt, e.Date, e.Mood, e.Entry); err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertRemarkable writes tablet journal entries in their native 1-9 scale.
func UpsertRemarkable(db *sql.DB, entries []models.JournalEntry) error {
	return upsertJournal(db, "remarkable", entries)
}

// UpsertExistJournal writes Exist journal entries in their native 1-9 scale.
func UpsertExistJournal(db *sql.DB, entries []models.JournalEntry) error {
	return upsertJournal(db, "exist_journal", entries)
}

// UpsertMoodCharts writes mood chart rows in their native 1-7 scale.
func UpsertMoodCharts(db *sql.DB, entries []models.MoodChartEntry) error {
	return inTx(db, "mood_charts", func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO mood_charts (date, mood, sleep, cardio, meditate, mood_note)
				VALUES (?, ?, ?, ?, ?, ?)
				ON CONFLICT(date) DO UPDATE SET
					mood = excluded.mood,
					sleep = excluded.sleep,
					cardio = excluded.cardio,
					meditate = excluded.meditate,
					mood_note = excluded.mood_note`,
				e.Date, e.Mood, e.Sleep, e.Cardio, e.Meditate, e.MoodNote)
			if err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertBulletJournal writes bullet journal rows in their native 1-5 scale.
func UpsertBulletJournal(db *sql.DB, entries []models.BulletJournalEntry) error {
	return inTx(db, "bullet_journal", func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO bullet_journal (date, mood, sleep, steps, cardio, meditate,
					mood_note, fasting, cheat_meals, read, draw, learn, write, guitar)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(date) DO UPDATE SET
					mood = excluded.mood,
					sleep = excluded.sleep,
					steps = excluded.steps,
					cardio = excluded.cardio,
					meditate = excluded.meditate,
					mood_note = excluded.mood_note,
					fasting = excluded.fasting,
					cheat_meals = excluded.cheat_meals,
					read = excluded.read,
					draw = excluded.draw,
					learn = excluded.learn,
					write = excluded.write,
					guitar = excluded.guitar`,
				e.Date, e.Mood, e.Sleep, e.Steps, e.Cardio, e.Meditate,
				e.MoodNote, e.Fasting, e.CheatMeals, e.Read, e.Draw, e.Learn,
				e.Write, e.Guitar)
			if err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertRescueTime writes device time rows, in hours as reported.
func UpsertRescueTime(db *sql.DB, entries []models.TimeEntry) error {
	return inTx(db, "rescuetime", func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO rescuetime (date, productive_hours, distracting_hours, neutral_hours)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(date) DO UPDATE SET
					productive_hours = excluded.productive_hours,
					distracting_hours = excluded.distracting_hours,
					neutral_hours = excluded.neutral_hours`,
				e.Date, e.Productive, e.Distracting, e.Neutral)
			if err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertExistTime writes Exist productivity rows, in minutes as recorded.
// time_view converts to hours on read.
func UpsertExistTime(db *sql.DB, entries []models.ExistTimeEntry) error {
	return inTx(db, "exist_time", func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO exist_time (date, productive_min, distracting_min, neutral_min)
				VALUES (?, ?, ?, ?)
				ON CONFLICT(date) DO UPDATE SET
					productive_min = excluded.productive_min,
					distracting_min = excluded.distracting_min,
					neutral_min = excluded.neutral_min`,
				e.Date, e.ProductiveMin, e.DistractingMin, e.NeutralMin)
			if err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertFitness writes weekly-report measurement rows.
func UpsertFitness(db *sql.DB, entries []models.FitnessEntry) error {
	return inTx(db, "fitness", func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO fitness (date, weight, bmr, pulse, sleep, deep_sleep,
					light_sleep, rem_sleep, awakes, daily_steps, calories_out)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(date) DO UPDATE SET
					weight = excluded.weight,
					bmr = excluded.bmr,
					pulse = excluded.pulse,
					sleep = excluded.sleep,
					deep_sleep = excluded.deep_sleep,
					light_sleep = excluded.light_sleep,
					rem_sleep = excluded.rem_sleep,
					awakes = excluded.awakes,
					daily_steps = excluded.daily_steps,
					calories_out = excluded.calories_out`,
				e.Date, e.Weight, e.BMR, e.Pulse, e.Sleep, e.DeepSleep,
				e.LightSleep, e.RemSleep, e.Awakes, e.DailySteps, e.CaloriesOut)
			if err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertNutrition writes daily-total nutrition rows.
func UpsertNutrition(db *sql.DB, entries []models.NutritionEntry) error {
	return inTx(db, "nutrition", func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO nutrition (date, calories, total_fat, total_carbs,
					protein, sat_fat, sodium, net_carbs)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(date) DO UPDATE SET
					calories = excluded.calories,
					total_fat = excluded.total_fat,
					total_carbs = excluded.total_carbs,
					protein = excluded.protein,
					sat_fat = excluded.sat_fat,
					sodium = excluded.sodium,
					net_carbs = excluded.net_carbs`,
				e.Date, e.Calories, e.TotalFat, e.TotalCarbs,
				e.Protein, e.SatFat, e.Sodium, e.NetCarbs)
			if err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertExistTags writes activity tag rows. The statement is built from the
// canonical tag list so the column set stays in one place.
func UpsertExistTags(db *sql.DB, entries []models.TagEntry) error {
	cols := strings.Join(models.TagNames, ", ")
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(models.TagNames)), ", ")
	sets := strings.Join(lo.Map(models.TagNames, func(name string, _ int) string {
		return fmt.Sprintf("%s = excluded.%s", name, name)
	}), ", ")
	stmt := fmt.Sprintf(`
		INSERT INTO exist_tags (date, %s) VALUES (?, %s)
		ON CONFLICT(date) DO UPDATE SET %s`, cols, marks, sets)

	return inTx(db, "exist_tags", func(tx *sql.Tx) error {
		for _, e := range entries {
			args := make([]any, 0, len(models.TagNames)+1)
			args = append(args, e.Date)
			for _, name := range models.TagNames {
				args = append(args, e.Tag(name))
			}
			if _, err := tx.Exec(stmt, args...); err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}

// UpsertExistFitness writes wearable rows from the Exist extract.
func UpsertExistFitness(db *sql.DB, entries []models.ExistFitnessEntry) error {
	return inTx(db, "exist_fitness", func(tx *sql.Tx) error {
		for _, e := range entries {
			_, err := tx.Exec(`
				INSERT INTO exist_fitness (date, active_cal, pulse, pulse_max,
					pulse_rest, steps, weight, sleep, sleep_end, sleep_start)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(date) DO UPDATE SET
					active_cal = excluded.active_cal,
					pulse = excluded.pulse,
					pulse_max = excluded.pulse_max,
					pulse_rest = excluded.pulse_rest,
					steps = excluded.steps,
					weight = excluded.weight,
					sleep = excluded.sleep,
					sleep_end = excluded.sleep_end,
					sleep_start = excluded.sleep_start`,
				e.Date, e.ActiveCal, e.Pulse, e.PulseMax,
				e.PulseRest, e.Steps, e.Weight, e.Sleep, e.SleepEnd, e.SleepStart)
			if err != nil {
				return fmt.Errorf("date %s: %w", e.Date, err)
			}
		}
		return nil
	})
}
