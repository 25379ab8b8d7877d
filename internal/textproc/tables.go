// ABOUTME: Extracts fitness and nutrition rows from weekly HTML report emails.
// ABOUTME: Sub-tables are located by string anchors; nutrition rows are weekday-anchored.
package textproc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/cbatts/codexvitae/internal/models"
)

const (
	anchorMeasurements = "Measurements"
	anchorNutrition    = "Nutrition"
	anchorActivities   = "Activities"
)

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// fitnessSection returns the HTML between the Measurements and Nutrition
// anchors. Absent anchors mean the report carried no fitness table.
func fitnessSection(body string) (string, bool) {
	_, rest, ok := strings.Cut(body, anchorMeasurements)
	if !ok {
		return "", false
	}
	rest = strings.ReplaceAll(rest, `\r\n`, "")
	section, _, ok := strings.Cut(rest, anchorNutrition)
	if !ok {
		return "", false
	}
	return section, true
}

// nutritionSection returns the HTML between the Nutrition and Activities
// anchors that follow the Measurements anchor.
func nutritionSection(body string) (string, bool) {
	_, rest, ok := strings.Cut(body, anchorMeasurements)
	if !ok {
		return "", false
	}
	rest = strings.ReplaceAll(rest, `\r\n`, "")
	_, rest, ok = strings.Cut(rest, anchorNutrition)
	if !ok {
		return "", false
	}
	section, _, ok := strings.Cut(rest, anchorActivities)
	if !ok {
		return "", false
	}
	return section, true
}

// ParseFitness extracts one FitnessEntry per row of the Measurements table
// in a raw report email. A body without the anchors yields no rows and no
// error, since not every report carries the table.
//
// The provider mislabels the "Awakes" and "Deep Sleep" columns, so the two
// are swapped back here, and REM sleep is derived as sleep - deep - light.
// The subtraction is kept exact: a negative result signals bad upstream data
// and should stay visible.
func ParseFitness(body string) ([]models.FitnessEntry, error) {
	section, ok := fitnessSection(body)
	if !ok {
		return nil, nil
	}

	grid, ok := firstTable(section)
	if !ok {
		return nil, &ParseError{Kind: MissingTable, Detail: "no table between Measurements and Nutrition"}
	}
	headerIdx, col := findHeader(grid, "Date")
	if headerIdx < 0 {
		return nil, &ParseError{Kind: MissingTable, Detail: "measurements table has no Date header"}
	}

	var entries []models.FitnessEntry
	for _, row := range grid[headerIdx+1:] {
		dateText := cell(row, col["Date"])
		if dateText == "" {
			continue
		}
		t, err := parseLenientDate(dateText)
		if err != nil {
			return nil, &ParseError{Kind: MissingDate, Detail: err.Error()}
		}

		nums := &rowNumbers{row: row, col: col}
		sleep := nums.get("Sleep")
		deep := nums.get("Awakes")       // mislabeled upstream
		awakes := nums.get("Deep Sleep") // mislabeled upstream
		light := nums.get("Light Sleep")

		entry := models.FitnessEntry{
			Date:        t.Format(models.DateFormat),
			Weight:      nums.get("Weight"),
			BMR:         nums.get("BMR"),
			Pulse:       int(nums.get("Pulse")),
			Sleep:       sleep,
			DeepSleep:   deep,
			LightSleep:  light,
			RemSleep:    sleep - deep - light,
			Awakes:      awakes,
			DailySteps:  int(nums.get("Daily Steps")),
			CaloriesOut: int(nums.get("Calories Out")),
		}
		if nums.err != nil {
			return nil, fmt.Errorf("date %s: %w", entry.Date, nums.err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ParseNutrition extracts the daily-total rows of the Nutrition table in a
// raw report email. The table is laid out per weekday, so each weekday label
// found in the section is resolved to a calendar date against today (see
// parseWeekdayLabel for the year-end rollback). Rows carrying a leading
// per-meal index are food-item detail and are discarded; only the totals
// rows, whose leading cell is empty, survive. One row per unique date.
func ParseNutrition(body string, today time.Time) ([]models.NutritionEntry, error) {
	section, ok := nutritionSection(body)
	if !ok {
		return nil, nil
	}

	var dates []string
	for _, day := range weekdayNames {
		idx := strings.Index(section, day)
		if idx == -1 {
			continue
		}
		label, _, _ := strings.Cut(section[idx:], "</span")
		t, err := parseWeekdayLabel(stripTags(label), today)
		if err != nil {
			return nil, &ParseError{Kind: MissingDate, Detail: err.Error()}
		}
		dates = append(dates, t.Format(models.DateFormat))
	}

	grid, ok := firstTable(section)
	if !ok {
		return nil, &ParseError{Kind: MissingTable, Detail: "no table between Nutrition and Activities"}
	}
	headerIdx, col := findHeader(grid, "Calories")
	if headerIdx < 0 {
		return nil, &ParseError{Kind: MissingTable, Detail: "nutrition table has no Calories header"}
	}

	var entries []models.NutritionEntry
	seen := make(map[string]bool)
	for _, row := range grid[headerIdx+1:] {
		if cell(row, 0) != "" {
			continue
		}
		if len(entries) >= len(dates) {
			break
		}
		date := dates[len(entries)]
		if seen[date] {
			continue
		}
		seen[date] = true

		nums := &rowNumbers{row: row, col: col}
		entry := models.NutritionEntry{
			Date:       date,
			Calories:   nums.get("Calories"),
			TotalFat:   nums.get("Total Fat"),
			TotalCarbs: nums.get("Total Carbs"),
			Protein:    nums.get("Protein"),
			SatFat:     nums.get("Saturated Fat"),
			Sodium:     nums.get("Sodium"),
			NetCarbs:   nums.get("Net Carbs"),
		}
		if nums.err != nil {
			return nil, fmt.Errorf("date %s: %w", date, nums.err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// firstTable parses an HTML fragment and returns the first table as a grid
// of cell texts.
func firstTable(fragment string) ([][]string, bool) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, false
	}

	var table *html.Node
	var findTable func(*html.Node)
	findTable = func(n *html.Node) {
		if table != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "table" {
			table = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findTable(c)
		}
	}
	findTable(doc)
	if table == nil {
		return nil, false
	}

	var grid [][]string
	var findRows func(*html.Node)
	findRows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var row []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					row = append(row, nodeText(c))
				}
			}
			grid = append(grid, row)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findRows(c)
		}
	}
	findRows(table)
	return grid, len(grid) > 0
}

// findHeader locates the row containing the given label and maps normalized
// header names to column indices.
func findHeader(grid [][]string, label string) (int, map[string]int) {
	for i, row := range grid {
		col := make(map[string]int, len(row))
		for j, c := range row {
			name := headerKey(c)
			if _, dup := col[name]; !dup {
				col[name] = j
			}
		}
		if _, ok := col[label]; ok {
			return i, col
		}
	}
	return -1, nil
}

// headerKey normalizes a header cell like "Weight, lbs" or "Total Fat, g"
// down to its column name.
func headerKey(cell string) string {
	name, _, _ := strings.Cut(cell, ",")
	return strings.TrimSpace(name)
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// number parses a table value, tolerating thousands separators and blank or
// dash placeholders (which read as 0). Any other cell that fails to parse is
// a malformed report, not a zero.
func number(s string) (float64, error) {
	cleaned := strings.ReplaceAll(s, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" || cleaned == "-" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &ParseError{Kind: BadNumber, Detail: strconv.Quote(s)}
	}
	return f, nil
}

// rowNumbers reads numeric cells from one table row, keeping the first
// malformed cell as the row's error so callers can fail the whole row.
type rowNumbers struct {
	row []string
	col map[string]int
	err error
}

func (r *rowNumbers) get(name string) float64 {
	f, err := number(cell(r.row, r.col[name]))
	if err != nil && r.err == nil {
		r.err = err
	}
	return f
}

// nodeText collects the text content of a node with whitespace collapsed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	s := strings.ReplaceAll(sb.String(), "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// stripTags removes markup from a label fragment before date parsing.
func stripTags(s string) string {
	return strings.Join(strings.Fields(htmlTagPattern.ReplaceAllString(s, " ")), " ")
}
