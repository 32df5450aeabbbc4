package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/stats"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CheckinService struct {
	checkins CheckinStore
	now      Clock
}

func NewCheckinService(checkins CheckinStore) *CheckinService {
	return &CheckinService{checkins: checkins, now: systemClock}
}

// WithClock replaces the time source used for timestamps and default windows.
func (s *CheckinService) WithClock(clock Clock) *CheckinService {
	s.now = clock
	return s
}

func validateRatings(req *dto.CheckinRequest) error {
	if !models.ValidRating(req.Mood) || !models.ValidRating(req.Stress) || !models.ValidRating(req.Sleep) {
		return ErrInvalidRating
	}
	return nil
}

func (s *CheckinService) Create(ctx context.Context, userID uuid.UUID, req *dto.CheckinRequest) (*dto.CheckinResponse, error) {
	if err := validateRatings(req); err != nil {
		return nil, err
	}

	entry := models.CheckinEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Mood:      req.Mood,
		Stress:    req.Stress,
		Sleep:     req.Sleep,
		Notes:     req.Notes,
		Tags:      cleanTags(req.Tags),
		CreatedAt: s.now(),
	}
	if err := s.checkins.CreateCheckin(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to create check-in: %w", err)
	}

	resp := toCheckinResponse(&entry)
	return &resp, nil
}

func (s *CheckinService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.CheckinResponse, error) {
	entry, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := toCheckinResponse(entry)
	return &resp, nil
}

func (s *CheckinService) List(ctx context.Context, userID uuid.UUID, f repository.CheckinFilter, p repository.Page) ([]dto.CheckinResponse, int64, error) {
	entries, total, err := s.checkins.ListCheckins(ctx, userID, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list check-ins: %w", err)
	}

	out := make([]dto.CheckinResponse, len(entries))
	for i := range entries {
		out[i] = toCheckinResponse(&entries[i])
	}
	return out, total, nil
}

func (s *CheckinService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.CheckinRequest) (*dto.CheckinResponse, error) {
	if err := validateRatings(req); err != nil {
		return nil, err
	}

	entry, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry.Mood = req.Mood
	entry.Stress = req.Stress
	entry.Sleep = req.Sleep
	entry.Notes = req.Notes
	entry.Tags = cleanTags(req.Tags)
	entry.UpdatedAt = &now

	if err := s.checkins.UpdateCheckin(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("failed to update check-in: %w", err)
	}

	resp := toCheckinResponse(entry)
	return &resp, nil
}

func (s *CheckinService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.checkins.DeleteCheckin(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCheckinNotFound
		}
		return fmt.Errorf("failed to delete check-in: %w", err)
	}
	return nil
}

// WeeklyReport covers [weekStart, weekStart+7d). A zero weekStart selects the
// Monday of the current week.
func (s *CheckinService) WeeklyReport(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*dto.WeeklyReport, error) {
	if weekStart.IsZero() {
		weekStart = startOfWeek(s.now())
	}
	weekStart = stats.DateOf(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)

	entries, err := s.checkins.CheckinsBetween(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly check-ins: %w", err)
	}

	days := groupByDay(entries)
	daily := make([]dto.DailyData, 0, len(days))
	for _, d := range days {
		avg := d.averages()
		daily = append(daily, dto.DailyData{
			Date:   d.date.Format(dateLayout),
			Mood:   int(math.Round(avg.Mood)),
			Stress: int(math.Round(avg.Stress)),
			Sleep:  int(math.Round(avg.Sleep)),
			Count:  len(d.entries),
		})
	}

	return &dto.WeeklyReport{
		WeekStart:     weekStart.Format(dateLayout),
		WeekEnd:       weekEnd.AddDate(0, 0, -1).Format(dateLayout),
		TotalCheckins: len(entries),
		Averages:      averagesOf(entries),
		DailyData:     daily,
	}, nil
}

// MonthlyReport covers one calendar month. Zero year or month select the
// current one.
func (s *CheckinService) MonthlyReport(ctx context.Context, userID uuid.UUID, year, month int) (*dto.MonthlyReport, error) {
	now := s.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonth.AddDate(0, 0, -1)
	daysInMonth := monthEnd.Day()

	entries, err := s.checkins.CheckinsBetween(ctx, userID, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly check-ins: %w", err)
	}
	previous, err := s.checkins.CheckinsBetween(ctx, userID, monthStart.AddDate(0, -1, 0), monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous month check-ins: %w", err)
	}

	report := &dto.MonthlyReport{
		Year:            year,
		Month:           month,
		MonthStart:      monthStart.Format(dateLayout),
		MonthEnd:        monthEnd.Format(dateLayout),
		TotalCheckins:   len(entries),
		Averages:        averagesOf(entries),
		WeeklyBreakdown: weeklyBreakdown(entries, monthStart, monthEnd),
	}

	if len(previous) > 0 {
		prev := averagesOf(previous)
		report.PreviousMonthAverages = &prev
		report.ChangeFromPreviousMonth = &dto.Averages{
			Mood:   stats.PercentageChange(prev.Mood, report.Averages.Mood),
			Stress: stats.PercentageChange(prev.Stress, report.Averages.Stress),
			Sleep:  stats.PercentageChange(prev.Sleep, report.Averages.Sleep),
		}
	}

	days := groupByDay(entries)
	if len(days) > 0 {
		ranked := make([]dto.DaySummary, len(days))
		for i, d := range days {
			avg := d.averages()
			ranked[i] = dto.DaySummary{
				Date:         d.date.Format(dateLayout),
				Mood:         avg.Mood,
				Stress:       avg.Stress,
				Sleep:        avg.Sleep,
				OverallScore: overallScore(avg),
			}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].OverallScore > ranked[j].OverallScore
		})
		best, worst := ranked[0], ranked[len(ranked)-1]
		report.BestDay = &best
		report.WorstDay = &worst
	}

	report.CheckinFrequency = stats.Round2(float64(len(days)) / float64(daysInMonth) * 100)
	return report, nil
}

func (s *CheckinService) get(ctx context.Context, userID, id uuid.UUID) (*models.CheckinEntry, error) {
	entry, err := s.checkins.GetCheckin(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCheckinNotFound
		}
		return nil, fmt.Errorf("failed to load check-in: %w", err)
	}
	return entry, nil
}

// overallScore inverts stress so that a higher score is always better.
func overallScore(a dto.Averages) float64 {
	return stats.Round2((a.Mood + (5 - a.Stress) + a.Sleep) / 3)
}

func weeklyBreakdown(entries []models.CheckinEntry, monthStart, monthEnd time.Time) []dto.WeekSummary {
	var weeks []dto.WeekSummary
	number := 1
	for start := monthStart; !start.After(monthEnd); start = start.AddDate(0, 0, 7) {
		end := start.AddDate(0, 0, 6)
		if end.After(monthEnd) {
			end = monthEnd
		}
		upper := end.AddDate(0, 0, 1)

		var chunk []models.CheckinEntry
		for _, e := range entries {
			if !e.CreatedAt.Before(start) && e.CreatedAt.Before(upper) {
				chunk = append(chunk, e)
			}
		}

		weeks = append(weeks, dto.WeekSummary{
			WeekNumber:   number,
			StartDate:    start.Format(dateLayout),
			EndDate:      end.Format(dateLayout),
			CheckinCount: len(chunk),
			Averages:     averagesOf(chunk),
		})
		number++
	}
	return weeks
}

type dayGroup struct {
	date    time.Time
	entries []models.CheckinEntry
}

func (d dayGroup) averages() dto.Averages { return averagesOf(d.entries) }

// groupByDay buckets entries by UTC calendar date, oldest day first.
func groupByDay(entries []models.CheckinEntry) []dayGroup {
	index := make(map[time.Time]int)
	var days []dayGroup
	for _, e := range entries {
		date := stats.DateOf(e.CreatedAt)
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, dayGroup{date: date})
		}
		days[i].entries = append(days[i].entries, e)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].date.Before(days[j].date) })
	return days
}

type metricSeries struct {
	mood, stress, sleep []int
}

func seriesOf(entries []models.CheckinEntry) metricSeries {
	s := metricSeries{
		mood:   make([]int, len(entries)),
		stress: make([]int, len(entries)),
		sleep:  make([]int, len(entries)),
	}
	for i, e := range entries {
		s.mood[i], s.stress[i], s.sleep[i] = e.Mood, e.Stress, e.Sleep
	}
	return s
}

func averagesOf(entries []models.CheckinEntry) dto.Averages {
	s := seriesOf(entries)
	return dto.Averages{
		Mood:   stats.Average(s.mood),
		Stress: stats.Average(s.stress),
		Sleep:  stats.Average(s.sleep),
	}
}

func startOfWeek(t time.Time) time.Time {
	d := stats.DateOf(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func toCheckinResponse(e *models.CheckinEntry) dto.CheckinResponse {
	tags := []string(e.Tags)
	if tags == nil {
		tags = []string{}
	}
	return dto.CheckinResponse{
		ID:        e.ID,
		Mood:      e.Mood,
		Stress:    e.Stress,
		Sleep:     e.Sleep,
		Notes:     e.Notes,
		Tags:      tags,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
