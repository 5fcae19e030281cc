package service

import (
	"database/sql"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

type CalendarPoint struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

// CalendarData holds the year-in-pixels series: one point per day for the
// performance score and one for sleep minutes (0 when unrecorded).
type CalendarData struct {
	Performance []CalendarPoint `json:"performance"`
	Sleep       []CalendarPoint `json:"sleep"`
}

// CalendarDataAsOf builds both series for the 52 weeks ending at the
// given day, inclusive.
func CalendarDataAsOf(db *sql.DB, today time.Time) (CalendarData, error) {
	end := beginningOfDay(today)
	start := end.AddDate(0, 0, -52*7)

	days, err := DaySummaries(db, start, end)
	if err != nil {
		return CalendarData{}, err
	}
	return buildCalendarData(days), nil
}

func buildCalendarData(days []model.DaySummary) CalendarData {
	data := CalendarData{
		Performance: make([]CalendarPoint, 0, len(days)),
		Sleep:       make([]CalendarPoint, 0, len(days)),
	}
	for i := range days {
		d := &days[i]
		data.Performance = append(data.Performance, CalendarPoint{Date: d.Date, Value: ScoreSummary(*d)})

		sleepMinutes := 0
		if d.SleepDurationMinutes != nil {
			sleepMinutes = *d.SleepDurationMinutes
		}
		data.Sleep = append(data.Sleep, CalendarPoint{Date: d.Date, Value: sleepMinutes})
	}
	return data
}
