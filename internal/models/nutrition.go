// ABOUTME: Nutrition model for the daily-total rows of a weekly report email.
package models

// NutritionEntry is one day of nutrition totals.
type NutritionEntry struct {
	Date       string
	Calories   float64
	TotalFat   float64
	TotalCarbs float64
	Protein    float64
	SatFat     float64
	Sodium     float64
	NetCarbs   float64
}
