// ABOUTME: Tests for the journal email parsing pipeline.
// ABOUTME: Covers cleaning idempotence, date/mood/entry extraction, and batch behavior.
package textproc

import (
	"errors"
	"testing"
)

// rawJournalEmail mirrors a journal email body as it comes off the wire:
// HTML wrapping, CSS boilerplate, literal escape sequences, and the tablet
// footer around the actual entry.
const rawJournalEmail = `<html><head></head>` +
	`<body>b'p, li { white-space: pre-wrap; }` +
	`<p>Sat, Jan 1,2022Mood: 5 This is a sample journal entry for unit testing.\r\n</p>` +
	` --Sent from my reMarkable paper tabletGet yours at www.remarkable.comPS: You cannot reply to this email'` +
	`</body></html>`

func TestCleanEmail(t *testing.T) {
	want := "Sat, Jan 1,2022Mood: 5 This is a sample journal entry for unit testing."

	got := CleanEmail(rawJournalEmail)
	if got != want {
		t.Errorf("CleanEmail = %q, want %q", got, want)
	}
}

func TestCleanEmailIdempotent(t *testing.T) {
	once := CleanEmail(rawJournalEmail)
	twice := CleanEmail(once)
	if once != twice {
		t.Errorf("CleanEmail not idempotent: %q != %q", once, twice)
	}
}

func TestJournalDate(t *testing.T) {
	clean := CleanEmail(rawJournalEmail)

	date, err := JournalDate(clean)
	if err != nil {
		t.Fatalf("JournalDate failed: %v", err)
	}
	if date != "2022-01-01" {
		t.Errorf("JournalDate = %q, want 2022-01-01", date)
	}
}

func TestJournalDateMissing(t *testing.T) {
	_, err := JournalDate("Mood: 5 No date here.")
	if !IsParseError(err, MissingDate) {
		t.Errorf("expected MissingDate, got %v", err)
	}

	_, err = JournalDate("no marker at all")
	if !IsParseError(err, MissingDate) {
		t.Errorf("expected MissingDate, got %v", err)
	}
}

func TestMoodRating(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"Sat, Jan 1,2022Mood: 5 entry text", 5},
		{"Sat, Jan 1,2022Mood:5 entry text", 5},
		{"Sat, Jan 1,2022Mood: 8 entry text", 8},
	}

	for _, tc := range cases {
		got, err := MoodRating(tc.text)
		if err != nil {
			t.Fatalf("MoodRating(%q) failed: %v", tc.text, err)
		}
		if got != tc.want {
			t.Errorf("MoodRating(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestMoodRatingMissing(t *testing.T) {
	_, err := MoodRating("Sat, Jan 1,2022 no rating today")
	if !IsParseError(err, MissingMood) {
		t.Errorf("expected MissingMood, got %v", err)
	}
}

func TestJournalEntry(t *testing.T) {
	want := "This is a sample journal entry for unit testing."
	variants := []string{
		"Sat, Jan 1,2022Mood: 5 This is a sample journal entry for unit testing. ",
		"Sat, Jan 1,2022Mood:5 This is a sample journal entry for unit testing. ",
		"Sat, Jan 1,2022Mood: 5This is a sample journal entry for unit testing. ",
		"Sat, Jan 1,2022Mood:5This is a sample journal entry for unit testing. ",
	}

	for _, text := range variants {
		got, err := JournalEntry(text)
		if err != nil {
			t.Fatalf("JournalEntry(%q) failed: %v", text, err)
		}
		if got != want {
			t.Errorf("JournalEntry(%q) = %q, want %q", text, got, want)
		}
	}
}

func TestJournalEntryWithColons(t *testing.T) {
	text := "Sat, Jan 1,2022Mood: 5 Woke at 6:30, gym at 7:00. Good day."
	want := "Woke at 6:30, gym at 7:00. Good day."

	got, err := JournalEntry(text)
	if err != nil {
		t.Fatalf("JournalEntry failed: %v", err)
	}
	if got != want {
		t.Errorf("JournalEntry = %q, want %q", got, want)
	}
}

func TestParseJournal(t *testing.T) {
	entries, err := ParseJournal([]string{rawJournalEmail})
	if err != nil {
		t.Fatalf("ParseJournal failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Date != "2022-01-01" {
		t.Errorf("Date = %q, want 2022-01-01", e.Date)
	}
	if e.Mood != 5 {
		t.Errorf("Mood = %v, want 5", e.Mood)
	}
	if e.Entry != "This is a sample journal entry for unit testing." {
		t.Errorf("Entry = %q", e.Entry)
	}
}

func TestParseJournalSortsAndFilters(t *testing.T) {
	bodies := []string{
		"Mon, Feb 7, 2022Mood: 6 Later entry.",
		attachmentSentinel,
		"Sat, Jan 1, 2022Mood: 3 Earlier entry.",
	}

	entries, err := ParseJournal(bodies)
	if err != nil {
		t.Fatalf("ParseJournal failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Date != "2022-01-01" || entries[1].Date != "2022-02-07" {
		t.Errorf("entries not sorted by date: %v, %v", entries[0].Date, entries[1].Date)
	}
}

func TestParseJournalPropagatesErrors(t *testing.T) {
	bodies := []string{
		"Sat, Jan 1, 2022Mood: 5 Fine.",
		"gibberish with no markers",
	}

	_, err := ParseJournal(bodies)
	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected ParseError, got %T", err)
	}
}
