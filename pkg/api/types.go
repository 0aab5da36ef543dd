package api

import (
	"time"

	"tableflip.dev/vita/pkg/timeutil"
)

// User is the resolved identity behind a session token.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UpdateFields is a partial entry update. Nil fields are left unchanged
// server-side.
type UpdateFields struct {
	Text *string        `json:"entry_text,omitempty"`
	On   *timeutil.Date `json:"target_date_str,omitempty"`
}

// DailySummary aggregates one local calendar day.
type DailySummary struct {
	Date          timeutil.Date `json:"date"`
	TotalCalories *float64      `json:"total_calories"`
	TotalSteps    *float64      `json:"total_steps"`
	LastWeightKg  *float64      `json:"last_weight_kg"`
}

// WeeklySummary aggregates the week containing the target date.
type WeeklySummary struct {
	WeekStartDate    timeutil.Date `json:"week_start_date"`
	WeekEndDate      timeutil.Date `json:"week_end_date"`
	AvgDailyCalories *float64      `json:"avg_daily_calories"`
	AvgDailyProteinG *float64      `json:"avg_daily_protein_g"`
	AvgDailyCarbsG   *float64      `json:"avg_daily_carbs_g"`
	AvgDailyFatG     *float64      `json:"avg_daily_fat_g"`
	AvgWeightKg      *float64      `json:"avg_weight_kg"`
	AvgDailySteps    *float64      `json:"avg_daily_steps"`
	TotalSteps       *int64        `json:"total_steps"`
}

// TrendPoint is one sample in a trend series.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TrendReport carries the weight and steps series for a date range.
type TrendReport struct {
	StartDate    timeutil.Date `json:"start_date"`
	EndDate      timeutil.Date `json:"end_date"`
	WeightTrends []TrendPoint  `json:"weight_trends"`
	StepsTrends  []TrendPoint  `json:"steps_trends"`
}
