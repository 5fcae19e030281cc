package service

import (
	"database/sql"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

const (
	maxOutputScore = 60
	maxTotalScore  = 100

	goodSleepMinutes = 420 // 7h
	okSleepMinutes   = 360 // 6h
)

// ScoreSummary maps a day summary to a 0-100 performance score.
//
//   - Output (max 60): one point per 5 minutes of deep work.
//   - Input (max 20): +10 for >= 7h sleep (or +5 for >= 6h), plus an
//     independent +10 for sleep quality >= 4.
//   - Efficiency (max 20): average focus quality * 4, truncated.
//
// Absent inputs contribute nothing; the total is capped at 100.
func ScoreSummary(summary model.DaySummary) int {
	score := 0

	output := summary.DeepMinutes / 5
	if output > maxOutputScore {
		output = maxOutputScore
	}
	score += output

	if summary.SleepDurationMinutes != nil {
		switch {
		case *summary.SleepDurationMinutes >= goodSleepMinutes:
			score += 10
		case *summary.SleepDurationMinutes >= okSleepMinutes:
			score += 5
		}
	}
	if summary.SleepQuality != nil && *summary.SleepQuality >= 4 {
		score += 10
	}

	if summary.AvgFocusQuality != nil {
		score += int(*summary.AvgFocusQuality * 4)
	}

	if score > maxTotalScore {
		score = maxTotalScore
	}
	return score
}

// DailyScore computes the performance score for one date.
func DailyScore(db *sql.DB, day time.Time) (int, error) {
	summary, err := DaySummaryFor(db, day)
	if err != nil {
		return 0, err
	}
	return ScoreSummary(summary), nil
}

// AggregateScore is the truncated integer mean of per-day scores over the
// inclusive range, or 0 when the range contains no days.
func AggregateScore(db *sql.DB, from, to time.Time) (int, error) {
	days, err := DaySummaries(db, from, to)
	if err != nil {
		return 0, err
	}
	return averageScore(days), nil
}

func averageScore(days []model.DaySummary) int {
	if len(days) == 0 {
		return 0
	}
	total := 0
	for i := range days {
		total += ScoreSummary(days[i])
	}
	return total / len(days)
}
