// ABOUTME: Loaders for the two hand-maintained journal CSVs.
// ABOUTME: mood_charts.csv uses a 1-7 mood scale, bullet_journal.csv 1-5.
package exist

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/cbatts/codexvitae/internal/models"
)

// csvRows reads a CSV file and returns a header-index map plus data rows.
func csvRows(path string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("parse %s: empty file", path)
	}

	header := map[string]int{}
	for i, name := range rows[0] {
		header[strings.TrimSpace(name)] = i
	}
	return header, rows[1:], nil
}

func field(header map[string]int, row []string, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func csvNumber(header map[string]int, row []string, name string) float64 {
	s := field(header, row, name)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func csvDate(header map[string]int, row []string, name string) (string, error) {
	s := field(header, row, name)
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return "", fmt.Errorf("bad date %q: %w", s, err)
	}
	return t.Format(models.DateFormat), nil
}

// LoadMoodCharts reads mood_charts.csv
// (Date,Mood,Sleep,Cardio,Meditate,Mood_Note).
func LoadMoodCharts(path string) ([]models.MoodChartEntry, error) {
	header, rows, err := csvRows(path)
	if err != nil {
		return nil, err
	}

	var entries []models.MoodChartEntry
	for i, row := range rows {
		date, err := csvDate(header, row, "Date")
		if err != nil {
			return nil, fmt.Errorf("mood chart row %d: %w", i+1, err)
		}
		entries = append(entries, models.MoodChartEntry{
			Date:     date,
			Mood:     csvNumber(header, row, "Mood"),
			Sleep:    int(csvNumber(header, row, "Sleep")),
			Cardio:   int(csvNumber(header, row, "Cardio")),
			Meditate: int(csvNumber(header, row, "Meditate")),
			MoodNote: field(header, row, "Mood_Note"),
		})
	}
	return entries, nil
}

// LoadBulletJournal reads bullet_journal.csv (Date,Mood,Sleep,Steps,Cardio,
// Meditate,Mood_Note,Fasting,Cheat Meals,Read,Draw,Learn,Write,Guitar).
func LoadBulletJournal(path string) ([]models.BulletJournalEntry, error) {
	header, rows, err := csvRows(path)
	if err != nil {
		return nil, err
	}

	var entries []models.BulletJournalEntry
	for i, row := range rows {
		date, err := csvDate(header, row, "Date")
		if err != nil {
			return nil, fmt.Errorf("bullet journal row %d: %w", i+1, err)
		}
		entries = append(entries, models.BulletJournalEntry{
			Date:       date,
			Mood:       csvNumber(header, row, "Mood"),
			Sleep:      int(csvNumber(header, row, "Sleep")),
			Steps:      int(csvNumber(header, row, "Steps")),
			Cardio:     int(csvNumber(header, row, "Cardio")),
			Meditate:   int(csvNumber(header, row, "Meditate")),
			MoodNote:   field(header, row, "Mood_Note"),
			Fasting:    int(csvNumber(header, row, "Fasting")),
			CheatMeals: int(csvNumber(header, row, "Cheat Meals")),
			Read:       int(csvNumber(header, row, "Read")),
			Draw:       int(csvNumber(header, row, "Draw")),
			Learn:      int(csvNumber(header, row, "Learn")),
			Write:      int(csvNumber(header, row, "Write")),
			Guitar:     int(csvNumber(header, row, "Guitar")),
		})
	}
	return entries, nil
}
