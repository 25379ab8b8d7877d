// ABOUTME: Time-tracking models for the two productivity sources.
// ABOUTME: RescueTime reports hours; Exist reports minutes.
package models

// TimeEntry is one day of RescueTime device time, in hours.
type TimeEntry struct {
	Date        string
	Productive  float64
	Distracting float64
	Neutral     float64
}

// ExistTimeEntry is one day of Exist productivity time, in minutes.
// The time_view converts to hours on read; rows stay in native units.
type ExistTimeEntry struct {
	Date           string
	ProductiveMin  float64
	DistractingMin float64
	NeutralMin     float64
}
