// ABOUTME: Loader for the Exist.io full-extract directory.
// ABOUTME: Merges per-attribute data_<attr>_<year>.json files into daily rows.
package exist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/samber/lo"

	"github.com/cbatts/codexvitae/internal/models"
)

// The extract holds one file per attribute per year, each a JSON array of
// {date, value} records. Attributes a user never tracked simply have no
// files, which loads as an empty series.

type record struct {
	Date  string          `json:"date"`
	Value json.RawMessage `json:"value"`
}

// series is an attribute's values keyed by ISO date.
type series map[string]json.RawMessage

// readAttribute merges every year file for one attribute into a single series.
func readAttribute(dir, attr string) (series, error) {
	pattern := filepath.Join(dir, fmt.Sprintf("data_%s_*.json", attr))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", attr, err)
	}
	sort.Strings(files)

	s := series{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(file), err)
		}
		var records []record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(file), err)
		}
		for _, r := range records {
			if string(r.Value) == "null" || len(r.Value) == 0 {
				continue
			}
			s[r.Date] = r.Value
		}
	}
	return s, nil
}

func (s series) number(date string) float64 {
	raw, ok := s[date]
	if !ok {
		return 0
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return v
}

func (s series) text(date string) string {
	raw, ok := s[date]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// dates returns the sorted union of dates across the given series.
func dates(all ...series) []string {
	var out []string
	for _, s := range all {
		out = append(out, lo.Keys(s)...)
	}
	out = lo.Uniq(out)
	sort.Strings(out)
	return out
}

// LoadJournal reads the mood and journal attributes. A day becomes an entry
// only when a mood was recorded; the note may be empty.
func LoadJournal(dir string) ([]models.JournalEntry, error) {
	moods, err := readAttribute(dir, "mood")
	if err != nil {
		return nil, err
	}
	notes, err := readAttribute(dir, "journal")
	if err != nil {
		return nil, err
	}

	var entries []models.JournalEntry
	for _, date := range dates(moods) {
		entries = append(entries, models.JournalEntry{
			Date:  date,
			Mood:  moods.number(date),
			Entry: notes.text(date),
		})
	}
	return entries, nil
}

// LoadTime reads the productivity attributes, in minutes as recorded.
func LoadTime(dir string) ([]models.ExistTimeEntry, error) {
	productive, err := readAttribute(dir, "productive_min")
	if err != nil {
		return nil, err
	}
	distracting, err := readAttribute(dir, "distracting_min")
	if err != nil {
		return nil, err
	}
	neutral, err := readAttribute(dir, "neutral_min")
	if err != nil {
		return nil, err
	}

	var entries []models.ExistTimeEntry
	for _, date := range dates(productive, distracting, neutral) {
		entries = append(entries, models.ExistTimeEntry{
			Date:           date,
			ProductiveMin:  productive.number(date),
			DistractingMin: distracting.number(date),
			NeutralMin:     neutral.number(date),
		})
	}
	return entries, nil
}

// LoadTags reads every tracked activity tag. Days appear once any tag was
// set; a tag absent that day reads as 0.
func LoadTags(dir string) ([]models.TagEntry, error) {
	byTag := map[string]series{}
	var all []series
	for _, name := range models.TagNames {
		s, err := readAttribute(dir, name)
		if err != nil {
			return nil, err
		}
		byTag[name] = s
		all = append(all, s)
	}

	var entries []models.TagEntry
	for _, date := range dates(all...) {
		tags := map[string]int{}
		for _, name := range models.TagNames {
			if _, ok := byTag[name][date]; ok {
				tags[name] = int(byTag[name].number(date))
			}
		}
		entries = append(entries, models.TagEntry{Date: date, Tags: tags})
	}
	return entries, nil
}

// LoadFitness reads the wearable attributes.
func LoadFitness(dir string) ([]models.ExistFitnessEntry, error) {
	attrs := map[string]series{}
	for _, name := range []string{
		"active_energy", "heartrate", "heartrate_max", "heartrate_resting",
		"steps", "weight", "sleep", "sleep_end", "sleep_start",
	} {
		s, err := readAttribute(dir, name)
		if err != nil {
			return nil, err
		}
		attrs[name] = s
	}

	var entries []models.ExistFitnessEntry
	for _, date := range dates(lo.Values(attrs)...) {
		entries = append(entries, models.ExistFitnessEntry{
			Date:       date,
			ActiveCal:  attrs["active_energy"].number(date),
			Pulse:      int(attrs["heartrate"].number(date)),
			PulseMax:   int(attrs["heartrate_max"].number(date)),
			PulseRest:  int(attrs["heartrate_resting"].number(date)),
			Steps:      int(attrs["steps"].number(date)),
			Weight:     attrs["weight"].number(date),
			Sleep:      attrs["sleep"].number(date),
			SleepEnd:   attrs["sleep_end"].number(date),
			SleepStart: attrs["sleep_start"].number(date),
		})
	}
	return entries, nil
}
