// ABOUTME: Activity tag model for the Exist custom-tag extract.
// ABOUTME: Tags are sparse; a day without a tag stores 0.
package models

// TagNames lists the tracked activity tags in their column order.
var TagNames = []string{
	"alcohol", "bedsheets", "cardio", "cleaning", "drawing", "eating_out",
	"fasting", "guitar", "laundry", "learning", "meal_prep", "meditation",
	"nap", "nutribullet", "piano", "powerdrive", "reading", "shopping",
	"tech", "travel", "tv", "walk", "writing",
}

// TagEntry is one day of activity tags, keyed by tag name. Absent tags
// read as 0 through the map's zero value.
type TagEntry struct {
	Date string
	Tags map[string]int
}

// Tag returns the flag for name, 0 if the tag was not set that day.
func (t TagEntry) Tag(name string) int {
	return t.Tags[name]
}
