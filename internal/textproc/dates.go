// ABOUTME: Lenient natural-date parsing for journal and report text.
// ABOUTME: Tries known layouts first, then falls back to dateparse heuristics.
package textproc

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// dateLayouts covers the formats the journal and report emails actually use.
var dateLayouts = []string{
	"Mon, Jan 2, 2006",
	"Mon, January 2, 2006",
	"Monday, January 2, 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	"01/02/2006",
}

// dayMonthLayouts are yearless forms used by the weekly nutrition table.
var dayMonthLayouts = []string{
	"Monday, January 2",
	"Mon, January 2",
	"Monday, Jan 2",
	"Mon, Jan 2",
	"January 2",
	"Jan 2",
}

// normalizeDateText tidies comma and whitespace inconsistencies like
// "Sat, Jan 1,2022" before layout matching.
func normalizeDateText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, ",", ", ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// parseLenientDate parses a free-form date string.
func parseLenientDate(s string) (time.Time, error) {
	text := normalizeDateText(s)
	if text == "" {
		return time.Time{}, fmt.Errorf("empty date text")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, nil
		}
	}
	return dateparse.ParseAny(text)
}

// parseWeekdayLabel resolves a weekday-anchored label like
// "Monday, December 27" against today. Yearless labels assume the current
// year; a resolved month/day still ahead of today rolls back one year, which
// keeps year-end reports from landing in the future.
func parseWeekdayLabel(label string, today time.Time) (time.Time, error) {
	text := normalizeDateText(label)

	parsed, err := parseLenientDate(text)
	if err != nil {
		parsed, err = parseYearless(text, today.Year())
		if err != nil {
			return time.Time{}, fmt.Errorf("weekday label %q: %w", label, err)
		}
	}
	if parsed.Year() == 0 {
		parsed = time.Date(today.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	}

	if parsed.Format("0102") > today.Format("0102") {
		parsed = parsed.AddDate(-1, 0, 0)
	}
	return parsed, nil
}

func parseYearless(text string, year int) (time.Time, error) {
	for _, layout := range dayMonthLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date text %q", text)
}
