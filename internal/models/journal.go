// ABOUTME: Journal entry models for the four mood-journaling sources.
// ABOUTME: Every row is keyed by calendar date; one row per source per day.
package models

// DateFormat is the canonical date key format for every table.
const DateFormat = "2006-01-02"

// JournalSource identifies which journaling system produced an entry.
// Each source has its own native mood scale (see the mood package).
type JournalSource string

const (
	// SourceRemarkable is the handwritten tablet journal delivered by email.
	// Native mood scale 1-9.
	SourceRemarkable JournalSource = "remarkable"
	// SourceExistJournal is the Exist.io mood journal. Native mood scale 1-9.
	SourceExistJournal JournalSource = "exist_journal"
	// SourceMoodCharts is the hand-maintained mood chart CSV. Native mood scale 1-7.
	SourceMoodCharts JournalSource = "mood_charts"
	// SourceBulletJournal is the bullet journal CSV. Native mood scale 1-5.
	SourceBulletJournal JournalSource = "bullet_journal"
)

// AllJournalSources lists every journaling source feeding journal_view.
var AllJournalSources = []JournalSource{
	SourceRemarkable, SourceExistJournal, SourceMoodCharts, SourceBulletJournal,
}

// JournalEntry is one day of journal data in a source's native mood scale.
type JournalEntry struct {
	Date  string
	Mood  float64
	Entry string
}

// MoodChartEntry is one row of the mood chart CSV (mood scale 1-7).
type MoodChartEntry struct {
	Date     string
	Mood     float64
	Sleep    int
	Cardio   int
	Meditate int
	MoodNote string
}

// BulletJournalEntry is one row of the bullet journal CSV (mood scale 1-5).
type BulletJournalEntry struct {
	Date       string
	Mood       float64
	Sleep      int
	Steps      int
	Cardio     int
	Meditate   int
	MoodNote   string
	Fasting    int
	CheatMeals int
	Read       int
	Draw       int
	Learn      int
	Write      int
	Guitar     int
}
