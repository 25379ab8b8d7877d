// ABOUTME: Fitness models for the MyNetDiary weekly report and Exist extract.
// ABOUTME: RemSleep is derived as sleep - deep - light, never reported upstream.
package models

// FitnessEntry is one day of the Measurements table from a weekly report email.
type FitnessEntry struct {
	Date        string
	Weight      float64
	BMR         float64
	Pulse       int
	Sleep       float64
	DeepSleep   float64
	LightSleep  float64
	RemSleep    float64
	Awakes      float64
	DailySteps  int
	CaloriesOut int
}

// ExistFitnessEntry is one day of wearable data from the Exist extract.
type ExistFitnessEntry struct {
	Date       string
	ActiveCal  float64
	Pulse      int
	PulseMax   int
	PulseRest  int
	Steps      int
	Weight     float64
	Sleep      float64
	SleepEnd   float64
	SleepStart float64
}
