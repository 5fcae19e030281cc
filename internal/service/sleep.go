package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

type SleepInput struct {
	Date       time.Time
	SleepStart time.Time
	SleepEnd   time.Time

	SleepQuality    int
	AwakeningsCount int

	EnergyMorning int
	MoodMorning   int

	ScreenLastHour    *bool
	CaffeineAfter17   *bool
	BedtimeConsistent *bool
}

// LogSleep validates the input and creates or replaces the sleep record
// for the given date.
func LogSleep(db *sql.DB, in SleepInput) (*model.SleepNight, error) {
	night := &model.SleepNight{
		Date:              formatDate(in.Date),
		SleepStart:        in.SleepStart,
		SleepEnd:          in.SleepEnd,
		SleepQuality:      in.SleepQuality,
		AwakeningsCount:   in.AwakeningsCount,
		EnergyMorning:     in.EnergyMorning,
		MoodMorning:       in.MoodMorning,
		ScreenLastHour:    in.ScreenLastHour,
		CaffeineAfter17:   in.CaffeineAfter17,
		BedtimeConsistent: in.BedtimeConsistent,
	}
	if err := validateSleep(night); err != nil {
		return nil, err
	}

	_, err := db.Exec(`
INSERT INTO sleep_nights (
  date, sleep_start, sleep_end, sleep_quality, awakenings_count,
  energy_morning, mood_morning, screen_last_hour, caffeine_after_17, bedtime_consistent
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
  sleep_start = excluded.sleep_start,
  sleep_end = excluded.sleep_end,
  sleep_quality = excluded.sleep_quality,
  awakenings_count = excluded.awakenings_count,
  energy_morning = excluded.energy_morning,
  mood_morning = excluded.mood_morning,
  screen_last_hour = excluded.screen_last_hour,
  caffeine_after_17 = excluded.caffeine_after_17,
  bedtime_consistent = excluded.bedtime_consistent,
  updated_at = CURRENT_TIMESTAMP
`,
		night.Date,
		formatDateTime(night.SleepStart),
		formatDateTime(night.SleepEnd),
		night.SleepQuality,
		night.AwakeningsCount,
		night.EnergyMorning,
		night.MoodMorning,
		boolToNullInt(night.ScreenLastHour),
		boolToNullInt(night.CaffeineAfter17),
		boolToNullInt(night.BedtimeConsistent),
	)
	if err != nil {
		return nil, fmt.Errorf("save sleep for %s: %w", night.Date, err)
	}
	return night, nil
}

// GetSleepByDate returns the sleep record for the date, or nil if none.
func GetSleepByDate(db *sql.DB, day time.Time) (*model.SleepNight, error) {
	row := db.QueryRow(`
SELECT date, sleep_start, sleep_end, sleep_quality, awakenings_count,
       energy_morning, mood_morning, screen_last_hour, caffeine_after_17, bedtime_consistent
FROM sleep_nights
WHERE date = ?
`, formatDate(day))
	night, err := scanSleepNight(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sleep for %s: %w", formatDate(day), err)
	}
	return night, nil
}

// ListSleepRange returns sleep records in the inclusive date range,
// ascending by date.
func ListSleepRange(db *sql.DB, from, to time.Time) ([]model.SleepNight, error) {
	if to.Before(from) {
		from, to = to, from
	}
	rows, err := db.Query(`
SELECT date, sleep_start, sleep_end, sleep_quality, awakenings_count,
       energy_morning, mood_morning, screen_last_hour, caffeine_after_17, bedtime_consistent
FROM sleep_nights
WHERE date >= ? AND date <= ?
ORDER BY date ASC
`, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("query sleep range: %w", err)
	}
	defer rows.Close()

	nights := make([]model.SleepNight, 0)
	for rows.Next() {
		night, err := scanSleepNight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sleep night: %w", err)
		}
		nights = append(nights, *night)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sleep nights: %w", err)
	}
	return nights, nil
}

// RecentSleep returns sleep records for the most recent n days ending today.
func RecentSleep(db *sql.DB, days int) ([]model.SleepNight, error) {
	if days <= 0 {
		return []model.SleepNight{}, nil
	}
	end := beginningOfDay(time.Now())
	start := end.AddDate(0, 0, -(days - 1))
	return ListSleepRange(db, start, end)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSleepNight(row rowScanner) (*model.SleepNight, error) {
	var (
		night            model.SleepNight
		startStr, endStr string
		screen, caff, bt *int64
	)
	if err := row.Scan(
		&night.Date, &startStr, &endStr, &night.SleepQuality, &night.AwakeningsCount,
		&night.EnergyMorning, &night.MoodMorning, &screen, &caff, &bt,
	); err != nil {
		return nil, err
	}
	var err error
	if night.SleepStart, err = parseDateTime(startStr); err != nil {
		return nil, err
	}
	if night.SleepEnd, err = parseDateTime(endStr); err != nil {
		return nil, err
	}
	night.ScreenLastHour = nullIntToBool(screen)
	night.CaffeineAfter17 = nullIntToBool(caff)
	night.BedtimeConsistent = nullIntToBool(bt)
	return &night, nil
}

func validateSleep(night *model.SleepNight) error {
	var errs []string

	if !night.SleepEnd.After(night.SleepStart) {
		errs = append(errs, "sleep end must be after sleep start")
	} else {
		duration := night.DurationMinutes()
		if duration < 60 {
			errs = append(errs, "sleep duration appears too short (< 1 hour)")
		}
		if duration > 14*60 {
			errs = append(errs, "sleep duration appears too long (> 14 hours)")
		}
	}

	validateRange("sleep quality", night.SleepQuality, 1, 5, &errs)
	if night.AwakeningsCount < 0 {
		errs = append(errs, "awakenings count must be >= 0")
	}
	validateRange("morning energy", night.EnergyMorning, 1, 10, &errs)
	validateRange("morning mood", night.MoodMorning, 1, 10, &errs)

	return validationError(errs)
}
