package dto

import (
	"time"

	"github.com/google/uuid"
)

// CheckinRequest is the body of both create and update.
type CheckinRequest struct {
	Mood   int      `json:"mood" validate:"min=1,max=5"`
	Stress int      `json:"stress" validate:"min=1,max=5"`
	Sleep  int      `json:"sleep" validate:"min=1,max=5"`
	Notes  *string  `json:"notes" validate:"omitempty,max=500"`
	Tags   []string `json:"tags" validate:"omitempty,max=10,dive,required,max=50"`
}

type CheckinResponse struct {
	ID        uuid.UUID  `json:"id"`
	Mood      int        `json:"mood"`
	Stress    int        `json:"stress"`
	Sleep     int        `json:"sleep"`
	Notes     *string    `json:"notes"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Averages holds per-metric means.
type Averages struct {
	Mood   float64 `json:"mood"`
	Stress float64 `json:"stress"`
	Sleep  float64 `json:"sleep"`
}

type DailyData struct {
	Date   string `json:"date"`
	Mood   int    `json:"mood"`
	Stress int    `json:"stress"`
	Sleep  int    `json:"sleep"`
	Count  int    `json:"count"`
}

type WeeklyReport struct {
	WeekStart     string      `json:"weekStart"`
	WeekEnd       string      `json:"weekEnd"`
	TotalCheckins int         `json:"totalCheckins"`
	Averages      Averages    `json:"averages"`
	DailyData     []DailyData `json:"dailyData"`
}

type WeekSummary struct {
	WeekNumber   int      `json:"weekNumber"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	CheckinCount int      `json:"checkinCount"`
	Averages     Averages `json:"averages"`
}

type DaySummary struct {
	Date         string  `json:"date"`
	Mood         float64 `json:"mood"`
	Stress       float64 `json:"stress"`
	Sleep        float64 `json:"sleep"`
	OverallScore float64 `json:"overallScore"`
}

type MonthlyReport struct {
	Year                    int           `json:"year"`
	Month                   int           `json:"month"`
	MonthStart              string        `json:"monthStart"`
	MonthEnd                string        `json:"monthEnd"`
	TotalCheckins           int           `json:"totalCheckins"`
	Averages                Averages      `json:"averages"`
	PreviousMonthAverages   *Averages     `json:"previousMonthAverages"`
	ChangeFromPreviousMonth *Averages     `json:"changeFromPreviousMonth"`
	WeeklyBreakdown         []WeekSummary `json:"weeklyBreakdown"`
	BestDay                 *DaySummary   `json:"bestDay"`
	WorstDay                *DaySummary   `json:"worstDay"`
	CheckinFrequency        float64       `json:"checkinFrequency"`
}
