package service

import (
	"database/sql"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

// RollupWeek folds day summaries into WeeklyStats. Minute totals are
// plain sums; every average is taken only over the days where the field
// is present, so days without outcomes or sleep never drag the mean down.
func RollupWeek(weekStart, weekEnd string, days []model.DaySummary) model.WeeklyStats {
	stats := model.WeeklyStats{
		WeekStart:       weekStart,
		WeekEnd:         weekEnd,
		MinutesByDomain: map[model.Domain]int{},
	}

	var focus, progress, quality, sleepDur, sleepQual, energy []float64
	for i := range days {
		d := &days[i]
		stats.TotalSessions += d.TotalSessions
		stats.DeepMinutes += d.DeepMinutes
		stats.ShallowMinutes += d.ShallowMinutes
		stats.MaintenanceMinutes += d.MaintenanceMinutes
		for domain, minutes := range d.MinutesByDomain {
			stats.MinutesByDomain[domain] += minutes
		}

		if d.AvgFocusQuality != nil {
			focus = append(focus, *d.AvgFocusQuality)
		}
		if d.AvgProgressRating != nil {
			progress = append(progress, *d.AvgProgressRating)
		}
		if d.AvgQualityRating != nil {
			quality = append(quality, *d.AvgQualityRating)
		}
		if d.SleepDurationMinutes != nil {
			sleepDur = append(sleepDur, float64(*d.SleepDurationMinutes))
		}
		if d.SleepQuality != nil {
			sleepQual = append(sleepQual, float64(*d.SleepQuality))
		}
		if d.EnergyMorning != nil {
			energy = append(energy, float64(*d.EnergyMorning))
		}
	}

	stats.AvgFocusQuality = safeMean(focus)
	stats.AvgProgressRating = safeMean(progress)
	stats.AvgQualityRating = safeMean(quality)
	stats.AvgSleepDurationMinutes = safeMean(sleepDur)
	stats.AvgSleepQuality = safeMean(sleepQual)
	stats.AvgEnergyMorning = safeMean(energy)

	return stats
}

// WeeklyStatsFor computes stats for the 7-day window starting at weekStart.
func WeeklyStatsFor(db *sql.DB, weekStart time.Time) (model.WeeklyStats, error) {
	weekStart = beginningOfDay(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)
	days, err := DaySummaries(db, weekStart, weekEnd)
	if err != nil {
		return model.WeeklyStats{}, err
	}
	return RollupWeek(formatDate(weekStart), formatDate(weekEnd), days), nil
}
