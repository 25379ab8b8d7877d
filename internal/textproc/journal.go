// ABOUTME: Extracts (date, mood rating, entry text) from raw journal email bodies.
// ABOUTME: State-free pipeline: clean markup, find date before "Mood", match rating, tokenize entry.
package textproc

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/cbatts/codexvitae/internal/models"
)

const (
	// attachmentSentinel is the decoded body of a journal email that carried
	// a PDF attachment instead of inline text. Such messages hold no entry.
	attachmentSentinel = `b'6\x89\xde'`

	cssBoilerplate = "b'p, li { white-space: pre-wrap; }"
	tabletFooter   = " --Sent from my reMarkable paper tabletGet yours at www.remarkable.comPS: You cannot reply to this email'"
)

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

	// The sender is inconsistent about the space after the colon, so two
	// independent match attempts; first match wins.
	moodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`Mood: \d`),
		regexp.MustCompile(`Mood:\d`),
	}
)

// CleanEmail strips HTML tags, literal escape sequences, CSS boilerplate,
// and the tablet footer from a raw email body. Applying it twice yields the
// same result as applying it once.
func CleanEmail(text string) string {
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, `\r\n`, "")
	text = strings.ReplaceAll(text, `\'`, "")
	text = strings.ReplaceAll(text, cssBoilerplate, "")
	text = strings.ReplaceAll(text, tabletFooter, "")
	return text
}

// JournalDate extracts the entry date from cleaned text. The date is
// whatever text precedes the literal "Mood" marker.
func JournalDate(text string) (string, error) {
	prefix, _, found := strings.Cut(text, "Mood")
	if !found || strings.TrimSpace(prefix) == "" {
		return "", &ParseError{Kind: MissingDate, Detail: "no text before Mood marker"}
	}
	t, err := parseLenientDate(prefix)
	if err != nil {
		return "", &ParseError{Kind: MissingDate, Detail: err.Error()}
	}
	return t.Format(models.DateFormat), nil
}

// MoodRating extracts the single-digit mood rating from cleaned text,
// tolerating both "Mood: 5" and "Mood:5".
func MoodRating(text string) (float64, error) {
	for _, p := range moodPatterns {
		m := p.FindString(text)
		if m == "" {
			continue
		}
		rating, err := strconv.ParseFloat(m[len(m)-1:], 64)
		if err != nil {
			return 0, &ParseError{Kind: MissingMood, Detail: err.Error()}
		}
		return rating, nil
	}
	return 0, &ParseError{Kind: MissingMood, Detail: "no mood marker found"}
}

// JournalEntry extracts the free-text entry from cleaned text: everything
// after the matched mood rating, with surrounding whitespace trimmed. The
// entry keeps any colons of its own, so a two-stage tokenization (locate the
// rating, then trim the separator) replaces positional slicing.
func JournalEntry(text string) (string, error) {
	for _, p := range moodPatterns {
		loc := p.FindStringIndex(text)
		if loc == nil {
			continue
		}
		return strings.TrimSpace(text[loc[1]:]), nil
	}
	return "", &ParseError{Kind: MissingMood, Detail: "no mood marker found"}
}

// ParseJournal runs the full pipeline over a batch of raw email bodies:
// attachment-only sentinels are dropped, each remaining body is cleaned and
// parsed, and the results are sorted ascending by date. A malformed body
// fails the batch with its position so a human can inspect and backfill.
func ParseJournal(bodies []string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry

	for i, body := range bodies {
		if body == attachmentSentinel {
			continue
		}
		clean := CleanEmail(body)

		date, err := JournalDate(clean)
		if err != nil {
			return nil, fmt.Errorf("journal email %d: %w", i, err)
		}
		mood, err := MoodRating(clean)
		if err != nil {
			return nil, fmt.Errorf("journal email %d: %w", i, err)
		}
		entry, err := JournalEntry(clean)
		if err != nil {
			return nil, fmt.Errorf("journal email %d: %w", i, err)
		}

		entries = append(entries, models.JournalEntry{Date: date, Mood: mood, Entry: entry})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries, nil
}
