package dto

import (
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/stats"
)

type Alert struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// TrendsResponse carries only Message when the window has no check-ins.
type TrendsResponse struct {
	Period        string             `json:"period,omitempty"`
	StartDate     string             `json:"startDate,omitempty"`
	EndDate       string             `json:"endDate,omitempty"`
	TotalCheckins int                `json:"totalCheckins,omitempty"`
	Mood          *stats.TrendResult `json:"mood,omitempty"`
	Stress        *stats.TrendResult `json:"stress,omitempty"`
	Sleep         *stats.TrendResult `json:"sleep,omitempty"`
	Insights      []string           `json:"insights,omitempty"`
	Alerts        []Alert            `json:"alerts,omitempty"`
	Message       string             `json:"message,omitempty"`
}

type StreakResponse struct {
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
	LastCheckinDate *string `json:"lastCheckinDate"`
	IsActive        bool    `json:"isActive"`
}

type PeriodStats struct {
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	CheckinCount int      `json:"checkinCount"`
	Averages     Averages `json:"averages"`
}

type ComparisonResponse struct {
	Period1      PeriodStats `json:"period1"`
	Period2      PeriodStats `json:"period2"`
	Changes      Averages    `json:"changes"`
	OverallTrend string      `json:"overallTrend"`
	Summary      string      `json:"summary"`
}

type RecommendedTipsResponse struct {
	Categories []string      `json:"categories"`
	Tips       []TipResponse `json:"tips"`
}
