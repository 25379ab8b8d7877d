// ABOUTME: Tests for the mood chart and bullet journal CSV loaders.
// ABOUTME: Uses t.TempDir fixtures with the real column layouts.
package exist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadMoodCharts(t *testing.T) {
	path := writeCSV(t, `Date,Mood,Sleep,Cardio,Meditate,Mood_Note
1/5/2019,5,7,1,0,"Busy day, felt okay"
1/6/2019,6,8,0,1,
`)

	entries, err := LoadMoodCharts(path)
	if err != nil {
		t.Fatalf("LoadMoodCharts failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2019-01-05" {
		t.Errorf("Date = %q, want 2019-01-05", entries[0].Date)
	}
	if entries[0].Mood != 5 || entries[0].Sleep != 7 || entries[0].Cardio != 1 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[0].MoodNote != "Busy day, felt okay" {
		t.Errorf("MoodNote = %q", entries[0].MoodNote)
	}
	if entries[1].Meditate != 1 || entries[1].MoodNote != "" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestLoadBulletJournal(t *testing.T) {
	path := writeCSV(t, `Date,Mood,Sleep,Steps,Cardio,Meditate,Mood_Note,Fasting,Cheat Meals,Read,Draw,Learn,Write,Guitar
2/1/2020,4,7,9000,1,1,Solid day,1,0,1,0,1,0,1
`)

	entries, err := LoadBulletJournal(path)
	if err != nil {
		t.Fatalf("LoadBulletJournal failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Date != "2020-02-01" {
		t.Errorf("Date = %q, want 2020-02-01", e.Date)
	}
	if e.Mood != 4 || e.Steps != 9000 || e.CheatMeals != 0 || e.Guitar != 1 {
		t.Errorf("entry = %+v", e)
	}
	if e.MoodNote != "Solid day" {
		t.Errorf("MoodNote = %q", e.MoodNote)
	}
}

func TestLoadMoodChartsBadDate(t *testing.T) {
	path := writeCSV(t, `Date,Mood,Sleep,Cardio,Meditate,Mood_Note
not-a-date,5,7,1,0,
`)

	if _, err := LoadMoodCharts(path); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestLoadMoodChartsMissingFile(t *testing.T) {
	if _, err := LoadMoodCharts(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
