package service

import (
	"database/sql"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

// ChronotypeProfile builds an hour-of-day histogram of focus quality.
// Each finished, outcome-bearing session attributes its focus value to
// every hour it overlaps, inclusive of both the starting and ending hour.
// For a session that crosses midnight the end hour is extended past 23
// and reduced modulo 24 only at bucket-write time, so a 23:50-00:10
// session feeds buckets 23 and 0. The result is dense: all 24 hours are
// present, with 0.0 for hours nothing touched.
func ChronotypeProfile(sessions []model.Session) map[int]float64 {
	sums := make([]float64, 24)
	counts := make([]int, 24)

	for i := range sessions {
		s := &sessions[i]
		if s.Outcome == nil || s.EndTime == nil {
			continue
		}

		startHour := s.StartTime.Hour()
		endHour := s.EndTime.Hour()
		if dateOnly(*s.EndTime).After(dateOnly(s.StartTime)) {
			endHour += 24
		}

		focus := float64(s.Outcome.FocusQuality)
		for h := startHour; h <= endHour; h++ {
			bucket := h % 24
			sums[bucket] += focus
			counts[bucket]++
		}
	}

	profile := make(map[int]float64, 24)
	for h := 0; h < 24; h++ {
		if counts[h] > 0 {
			profile[h] = sums[h] / float64(counts[h])
		} else {
			profile[h] = 0.0
		}
	}
	return profile
}

// ChronotypeBetween profiles all sessions in the inclusive date range.
func ChronotypeBetween(db *sql.DB, from, to time.Time) (map[int]float64, error) {
	sessions, err := SessionsBetween(db, from, to)
	if err != nil {
		return nil, err
	}
	return ChronotypeProfile(sessions), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
