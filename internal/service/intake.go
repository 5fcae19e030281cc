package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

var mealColumns = map[string]string{
	"breakfast": "breakfast_time",
	"lunch":     "lunch_time",
	"dinner":    "dinner_time",
}

// GetIntake returns the day's intake row, or a zero-valued record when
// nothing has been logged yet.
func GetIntake(db *sql.DB, day time.Time) (model.DailyIntake, error) {
	date := formatDate(day)
	intake := model.DailyIntake{Date: date}

	var breakfast, lunch, dinner *string
	err := db.QueryRow(`
SELECT water_count, breakfast_time, lunch_time, dinner_time
FROM daily_intake
WHERE date = ?
`, date).Scan(&intake.WaterCount, &breakfast, &lunch, &dinner)
	if err == sql.ErrNoRows {
		return intake, nil
	}
	if err != nil {
		return model.DailyIntake{}, fmt.Errorf("get intake for %s: %w", date, err)
	}

	if intake.BreakfastTime, err = parseOptionalDateTime(breakfast); err != nil {
		return model.DailyIntake{}, err
	}
	if intake.LunchTime, err = parseOptionalDateTime(lunch); err != nil {
		return model.DailyIntake{}, err
	}
	if intake.DinnerTime, err = parseOptionalDateTime(dinner); err != nil {
		return model.DailyIntake{}, err
	}
	return intake, nil
}

// AddWater increments the day's water count by one.
func AddWater(db *sql.DB, day time.Time) (model.DailyIntake, error) {
	date := formatDate(day)
	_, err := db.Exec(`
INSERT INTO daily_intake (date, water_count)
VALUES (?, 1)
ON CONFLICT(date) DO UPDATE SET
  water_count = water_count + 1,
  updated_at = CURRENT_TIMESTAMP
`, date)
	if err != nil {
		return model.DailyIntake{}, fmt.Errorf("add water for %s: %w", date, err)
	}
	return GetIntake(db, day)
}

// LogMeal stamps the given meal (breakfast, lunch, or dinner) with the
// current time.
func LogMeal(db *sql.DB, day time.Time, meal string) (model.DailyIntake, error) {
	column, ok := mealColumns[meal]
	if !ok {
		return model.DailyIntake{}, fmt.Errorf("invalid meal %q (use breakfast|lunch|dinner)", meal)
	}

	date := formatDate(day)
	now := formatDateTime(time.Now())
	// Column name comes from the fixed mealColumns table, never from input.
	query := fmt.Sprintf(`
INSERT INTO daily_intake (date, %s)
VALUES (?, ?)
ON CONFLICT(date) DO UPDATE SET
  %s = excluded.%s,
  updated_at = CURRENT_TIMESTAMP
`, column, column, column)
	if _, err := db.Exec(query, date, now); err != nil {
		return model.DailyIntake{}, fmt.Errorf("log %s for %s: %w", meal, date, err)
	}
	return GetIntake(db, day)
}

func parseOptionalDateTime(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDateTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
