// Package stats holds the pure aggregation helpers behind reports and insights.
package stats

import (
	"math"
	"sort"
	"time"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendThreshold is the percentage change that separates stable from moving.
const trendThreshold = 5.0

// TrendResult describes one metric over a period.
type TrendResult struct {
	Average          float64 `json:"average"`
	Trend            Trend   `json:"trend"`
	ChangePercentage float64 `json:"changePercentage"`
}

// Average returns the arithmetic mean of values, or 0 when there are none.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0
	for _, v := range values {
		total += v
	}
	return float64(total) / float64(len(values))
}

// Round2 rounds x to two decimal places, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// PercentageChange returns (newer-older)/older*100 rounded to two decimals.
// A zero baseline yields 0.
func PercentageChange(older, newer float64) float64 {
	if older == 0 {
		return 0
	}
	return Round2((newer - older) / older * 100)
}

// AnalyzeTrend compares the mean of the first half of values with the mean of
// the second half. Values must be ordered oldest first. For odd lengths the
// middle element belongs to the second half.
//
// The label only says which way the numbers moved: a rising stress series is
// reported as improving even though higher stress is worse for the user.
func AnalyzeTrend(values []int) TrendResult {
	if len(values) == 0 {
		return TrendResult{Trend: TrendStable}
	}

	mid := len(values) / 2
	firstAvg := Average(values[:mid])
	secondAvg := Average(values[mid:])

	change := 0.0
	if firstAvg != 0 {
		change = (secondAvg - firstAvg) / firstAvg * 100
	}

	trend := TrendStable
	switch {
	case change > trendThreshold:
		trend = TrendImproving
	case change < -trendThreshold:
		trend = TrendDeclining
	}

	return TrendResult{
		Average:          Round2(Average(values)),
		Trend:            trend,
		ChangePercentage: Round2(change),
	}
}

// DateOf truncates t to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DistinctDays returns the distinct UTC calendar dates of times, newest first.
func DistinctDays(times []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(times))
	days := make([]time.Time, 0, len(times))
	for _, t := range times {
		d := DateOf(t)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// CurrentStreak counts consecutive days ending at the most recent date in times.
func CurrentStreak(times []time.Time) int {
	days := DistinctDays(times)
	if len(days) == 0 {
		return 0
	}
	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive days found in times.
func LongestStreak(times []time.Time) int {
	days := DistinctDays(times)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
