// ABOUTME: Mood scale normalization across journaling sources.
// ABOUTME: Maps each source's native scale onto [-1, 1] with a fixed affine transform.
package mood

import (
	"fmt"

	"github.com/cbatts/codexvitae/internal/models"
)

// Scale describes a source's native mood range and its affine transform.
// Normalized mood is (raw - Offset) / Div, which maps Min to -1 and Max to +1.
type Scale struct {
	Min    float64
	Max    float64
	Offset float64
	Div    float64
}

// Scales holds the documented native scale for each journaling source.
var Scales = map[models.JournalSource]Scale{
	models.SourceRemarkable:    {Min: 1, Max: 9, Offset: 5, Div: 4},
	models.SourceExistJournal:  {Min: 1, Max: 9, Offset: 5, Div: 4},
	models.SourceMoodCharts:    {Min: 1, Max: 7, Offset: 4, Div: 3},
	models.SourceBulletJournal: {Min: 1, Max: 5, Offset: 3, Div: 2},
}

// RangeError reports a raw mood outside its source's documented scale.
// Out-of-range moods indicate an upstream data bug and are never clamped.
type RangeError struct {
	Source models.JournalSource
	Raw    float64
}

func (e *RangeError) Error() string {
	s := Scales[e.Source]
	return fmt.Sprintf("mood %v out of range [%v, %v] for source %s",
		e.Raw, s.Min, s.Max, e.Source)
}

// Normalize maps a raw mood in the source's native scale onto [-1, 1].
func Normalize(raw float64, source models.JournalSource) (float64, error) {
	s, ok := Scales[source]
	if !ok {
		return 0, fmt.Errorf("unknown journal source: %s", source)
	}
	if raw < s.Min || raw > s.Max {
		return 0, &RangeError{Source: source, Raw: raw}
	}
	return (raw - s.Offset) / s.Div, nil
}
