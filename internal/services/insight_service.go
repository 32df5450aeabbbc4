package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/stats"
	"github.com/google/uuid"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"

	maxRecommendedTips = 5
	recentCheckinLimit = 7

	// changeThreshold is the raw point difference a comparison summary reports.
	changeThreshold = 0.3

	AlertWarning = "warning"
	AlertSuccess = "success"

	MsgInsufficientData = "Not enough data to analyze trends yet. Keep checking in!"
	MsgMinimalChanges   = "Your wellness metrics showed minimal changes between the two periods."
)

var periodDays = map[string]int{
	PeriodWeek:  7,
	PeriodMonth: 30,
	PeriodYear:  365,
}

type InsightService struct {
	checkins CheckinStore
	tips     TipStore
	now      Clock
}

func NewInsightService(checkins CheckinStore, tips TipStore) *InsightService {
	return &InsightService{checkins: checkins, tips: tips, now: systemClock}
}

// WithClock replaces the time source used to resolve windows.
func (s *InsightService) WithClock(clock Clock) *InsightService {
	s.now = clock
	return s
}

// ResolvePeriod maps a period name to the window ending today. Unknown names
// fall back to week. The returned end is exclusive (start of tomorrow).
func ResolvePeriod(period string, now time.Time) (string, time.Time, time.Time) {
	days, ok := periodDays[strings.ToLower(period)]
	if !ok {
		period, days = PeriodWeek, periodDays[PeriodWeek]
	}
	today := stats.DateOf(now)
	return strings.ToLower(period), today.AddDate(0, 0, -days), today.AddDate(0, 0, 1)
}

func (s *InsightService) Trends(ctx context.Context, userID uuid.UUID, period string) (*dto.TrendsResponse, error) {
	name, from, to := ResolvePeriod(period, s.now())

	entries, err := s.checkins.CheckinsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	if len(entries) == 0 {
		return &dto.TrendsResponse{Message: MsgInsufficientData}, nil
	}

	series := seriesOf(entries)
	mood := stats.AnalyzeTrend(series.mood)
	stress := stats.AnalyzeTrend(series.stress)
	sleep := stats.AnalyzeTrend(series.sleep)

	return &dto.TrendsResponse{
		Period:        name,
		StartDate:     from.Format(dateLayout),
		EndDate:       to.AddDate(0, 0, -1).Format(dateLayout),
		TotalCheckins: len(entries),
		Mood:          &mood,
		Stress:        &stress,
		Sleep:         &sleep,
		Insights:      buildInsights(mood, stress, sleep, series.stress),
		Alerts:        buildAlerts(mood, stress, sleep),
	}, nil
}

func buildInsights(mood, stress, sleep stats.TrendResult, stressValues []int) []string {
	insights := []string{}

	switch mood.Trend {
	case stats.TrendImproving:
		insights = append(insights, "Your mood has been improving. Keep up the good habits!")
	case stats.TrendDeclining:
		insights = append(insights, "Your mood has been declining lately. Consider reaching out to someone you trust or seeking support.")
	}

	// A rising stress series is labelled improving.
	switch {
	case stress.Trend == stats.TrendDeclining:
		insights = append(insights, "Your stress levels are going down. Great job managing stress!")
	case stress.Trend == stats.TrendImproving && stress.Average > 3:
		insights = append(insights, "Your stress levels have been rising. Try relaxation techniques such as deep breathing or meditation.")
	}

	switch sleep.Trend {
	case stats.TrendImproving:
		insights = append(insights, "Your sleep quality is getting better. Keep your sleep routine consistent!")
	case stats.TrendDeclining:
		insights = append(insights, "Your sleep quality has been declining and needs attention. Review your sleep schedule and habits.")
	}

	if len(stressValues) >= 7 {
		high := 0
		for _, v := range stressValues {
			if v >= 4 {
				high++
			}
		}
		if high*2 > len(stressValues) {
			insights = append(insights, "You reported high stress in more than half of your check-ins. Consider planning regular breaks.")
		}
	}

	return insights
}

func buildAlerts(mood, stress, sleep stats.TrendResult) []dto.Alert {
	alerts := []dto.Alert{}

	if mood.Average <= 2 {
		alerts = append(alerts, dto.Alert{
			Type: AlertWarning, Category: "mood",
			Message: "Your average mood is low. Consider talking to a friend or a professional.",
		})
	}
	if stress.Average >= 4 {
		alerts = append(alerts, dto.Alert{
			Type: AlertWarning, Category: "stress",
			Message: "Your average stress level is high. Make time to rest and unwind.",
		})
	}
	if sleep.Average <= 2 {
		alerts = append(alerts, dto.Alert{
			Type: AlertWarning, Category: "sleep",
			Message: "Your average sleep quality is poor. Try to improve your sleep routine.",
		})
	}
	if mood.Average >= 4 && stress.Average <= 2 && sleep.Average >= 4 {
		alerts = append(alerts, dto.Alert{
			Type: AlertSuccess, Category: "overall",
			Message: "You're doing great! Your mood, stress and sleep are all in a healthy range.",
		})
	}

	return alerts
}

func (s *InsightService) Streak(ctx context.Context, userID uuid.UUID) (*dto.StreakResponse, error) {
	times, err := s.checkins.CheckinTimes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-in dates: %w", err)
	}

	resp := &dto.StreakResponse{
		CurrentStreak: stats.CurrentStreak(times),
		LongestStreak: stats.LongestStreak(times),
	}

	if days := stats.DistinctDays(times); len(days) > 0 {
		last := days[0].Format(dateLayout)
		resp.LastCheckinDate = &last
		resp.IsActive = days[0].Equal(stats.DateOf(s.now()))
	}
	return resp, nil
}

// Compare contrasts two inclusive date ranges. Period 1 is the baseline.
func (s *InsightService) Compare(ctx context.Context, userID uuid.UUID, p1Start, p1End, p2Start, p2End time.Time) (*dto.ComparisonResponse, error) {
	first, err := s.periodStats(ctx, userID, p1Start, p1End)
	if err != nil {
		return nil, err
	}
	second, err := s.periodStats(ctx, userID, p2Start, p2End)
	if err != nil {
		return nil, err
	}

	a, b := first.Averages, second.Averages

	better := 0
	if b.Mood > a.Mood {
		better++
	}
	if b.Stress < a.Stress {
		better++
	}
	if b.Sleep > a.Sleep {
		better++
	}

	trend := "similar"
	switch {
	case better >= 2:
		trend = "better"
	case better == 0:
		trend = "worse"
	}

	return &dto.ComparisonResponse{
		Period1: *first,
		Period2: *second,
		Changes: dto.Averages{
			Mood:   stats.PercentageChange(a.Mood, b.Mood),
			Stress: stats.PercentageChange(a.Stress, b.Stress),
			Sleep:  stats.PercentageChange(a.Sleep, b.Sleep),
		},
		OverallTrend: trend,
		Summary:      comparisonSummary(a, b),
	}, nil
}

func (s *InsightService) periodStats(ctx context.Context, userID uuid.UUID, start, end time.Time) (*dto.PeriodStats, error) {
	start, end = stats.DateOf(start), stats.DateOf(end)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	entries, err := s.checkins.CheckinsBetween(ctx, userID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	return &dto.PeriodStats{
		StartDate:    start.Format(dateLayout),
		EndDate:      end.Format(dateLayout),
		CheckinCount: len(entries),
		Averages:     averagesOf(entries),
	}, nil
}

func describeChange(metric string, delta float64, higherIsBetter bool) string {
	verb := "improved"
	if (delta > 0) != higherIsBetter {
		verb = "worsened"
	}
	return fmt.Sprintf("%s %s by %.2f points", metric, verb, math.Abs(delta))
}

func comparisonSummary(a, b dto.Averages) string {
	var parts []string
	if d := b.Mood - a.Mood; math.Abs(d) > changeThreshold {
		parts = append(parts, describeChange("mood", d, true))
	}
	if d := b.Stress - a.Stress; math.Abs(d) > changeThreshold {
		parts = append(parts, describeChange("stress", d, false))
	}
	if d := b.Sleep - a.Sleep; math.Abs(d) > changeThreshold {
		parts = append(parts, describeChange("sleep", d, true))
	}

	switch len(parts) {
	case 0:
		return MsgMinimalChanges
	case 1:
		return "Compared to the first period, your " + parts[0] + "."
	default:
		return "Compared to the first period, your " +
			strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1] + "."
	}
}

// RecommendedTips picks tip categories from the last seven days of check-ins
// and fills up to five tips from them.
func (s *InsightService) RecommendedTips(ctx context.Context, userID uuid.UUID) (*dto.RecommendedTipsResponse, error) {
	_, from, to := ResolvePeriod(PeriodWeek, s.now())

	entries, err := s.checkins.CheckinsBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	if len(entries) == 0 {
		recent, err := s.checkins.RecentCheckins(ctx, userID, recentCheckinLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load recent check-ins: %w", err)
		}
		// newest first -> oldest first for trend analysis
		for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
			recent[i], recent[j] = recent[j], recent[i]
		}
		entries = recent
	}

	categories := []models.TipCategory{models.CategoryWellness}
	if len(entries) > 0 {
		series := seriesOf(entries)
		categories = SelectCategories(
			stats.AnalyzeTrend(series.mood),
			stats.AnalyzeTrend(series.stress),
			stats.AnalyzeTrend(series.sleep),
		)
	}

	tips, err := s.collectTips(ctx, categories)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return &dto.RecommendedTipsResponse{Categories: names, Tips: tips}, nil
}

// SelectCategories applies the recommendation decision table. It always
// returns at least one category.
func SelectCategories(mood, stress, sleep stats.TrendResult) []models.TipCategory {
	var categories []models.TipCategory

	if (sleep.Trend == stats.TrendDeclining && sleep.Average <= 3.5) || sleep.Average <= 3.0 {
		categories = append(categories, models.CategorySleep)
	}
	if (mood.Trend == stats.TrendDeclining && mood.Average <= 3.5) || mood.Average <= 3.0 {
		categories = append(categories, models.CategoryMood)
	}
	// improving on stress means the values went up
	if stress.Average >= 3.5 || (stress.Trend == stats.TrendImproving && stress.Average >= 3.0) {
		categories = append(categories, models.CategoryStress)
	}

	if len(categories) == 0 &&
		mood.Average >= 3.5 && stress.Average < 3.5 && sleep.Average >= 3.5 &&
		mood.Trend != stats.TrendDeclining &&
		stress.Trend != stats.TrendImproving &&
		sleep.Trend != stats.TrendDeclining {
		categories = append(categories, models.CategoryWellness)
	}

	if len(categories) == 0 {
		categories = append(categories, models.CategoryWellness)
	}
	return categories
}

func tipQuota(categories int) int {
	switch categories {
	case 1:
		return 5
	case 2:
		return 3
	default:
		return 2
	}
}

func (s *InsightService) collectTips(ctx context.Context, categories []models.TipCategory) ([]dto.TipResponse, error) {
	seen := make(map[uuid.UUID]struct{})
	out := make([]dto.TipResponse, 0, maxRecommendedTips)

	add := func(tips []models.Tip) {
		for i := range tips {
			if len(out) >= maxRecommendedTips {
				return
			}
			if _, dup := seen[tips[i].ID]; dup {
				continue
			}
			seen[tips[i].ID] = struct{}{}
			out = append(out, toTipResponse(&tips[i]))
		}
	}

	quota := tipQuota(len(categories))
	for _, c := range categories {
		tips, err := s.tips.TipsByCategory(ctx, c, quota)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s tips: %w", c, err)
		}
		add(tips)
	}

	if len(out) < maxRecommendedTips {
		tips, err := s.tips.TipsByCategory(ctx, models.CategoryWellness, maxRecommendedTips+len(out))
		if err != nil {
			return nil, fmt.Errorf("failed to load wellness tips: %w", err)
		}
		add(tips)
	}

	return out, nil
}
