package service

import (
	"database/sql"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

// SummarizeDay folds one date's sleep record and sessions into a
// DaySummary. It is a pure function of its inputs: a day with no sleep
// and no sessions yields the canonical empty summary.
func SummarizeDay(date string, sleep *model.SleepNight, sessions []model.Session) model.DaySummary {
	if sleep == nil && len(sessions) == 0 {
		return model.EmptyDaySummary(date)
	}

	summary := model.DaySummary{
		Date:            date,
		TotalSessions:   len(sessions),
		MinutesByDomain: map[model.Domain]int{},
	}

	var focus, progress, quality []float64
	for i := range sessions {
		s := &sessions[i]

		// Open and zero-length sessions count toward the session total
		// but contribute no minutes.
		if duration := s.DurationMinutes(); duration != nil && *duration > 0 {
			switch s.Context.WorkType {
			case model.WorkTypeDeep:
				summary.DeepMinutes += *duration
			case model.WorkTypeShallow:
				summary.ShallowMinutes += *duration
			case model.WorkTypeMaintenance:
				summary.MaintenanceMinutes += *duration
			}
			summary.MinutesByDomain[s.Context.Domain] += *duration
		}

		if s.Outcome != nil {
			focus = append(focus, float64(s.Outcome.FocusQuality))
			progress = append(progress, float64(s.Outcome.ProgressRating))
			quality = append(quality, float64(s.Outcome.QualityRating))
		}
	}

	summary.AvgFocusQuality = safeMean(focus)
	summary.AvgProgressRating = safeMean(progress)
	summary.AvgQualityRating = safeMean(quality)

	if sleep != nil {
		duration := sleep.DurationMinutes()
		sleepQuality := sleep.SleepQuality
		energy := sleep.EnergyMorning
		summary.SleepDurationMinutes = &duration
		summary.SleepQuality = &sleepQuality
		summary.EnergyMorning = &energy
	}

	return summary
}

// DaySummaryFor fetches a date's records and summarizes them.
func DaySummaryFor(db *sql.DB, day time.Time) (model.DaySummary, error) {
	sleep, err := GetSleepByDate(db, day)
	if err != nil {
		return model.DaySummary{}, err
	}
	sessions, err := SessionsForDate(db, day)
	if err != nil {
		return model.DaySummary{}, err
	}
	return SummarizeDay(formatDate(day), sleep, sessions), nil
}

// DaySummaries builds one summary per date in the inclusive range, in
// ascending date order. A reversed range is swapped, not rejected.
func DaySummaries(db *sql.DB, start, end time.Time) ([]model.DaySummary, error) {
	start = beginningOfDay(start)
	end = beginningOfDay(end)
	if end.Before(start) {
		start, end = end, start
	}

	summaries := make([]model.DaySummary, 0)
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		summary, err := DaySummaryFor(db, current)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
