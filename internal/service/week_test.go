package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func TestRollupWeekAveragesPresentDaysOnly(t *testing.T) {
	t.Parallel()

	days := make([]model.DaySummary, 7)
	for i := range days {
		days[i] = model.EmptyDaySummary(fmt.Sprintf("2026-03-%02d", 2+i))
	}
	days[2].TotalSessions = 2
	days[2].DeepMinutes = 120
	days[2].MinutesByDomain = map[model.Domain]int{model.DomainWork: 120}
	days[2].AvgFocusQuality = floatPtr(4)
	days[2].AvgProgressRating = floatPtr(3)
	days[2].AvgQualityRating = floatPtr(5)

	stats := service.RollupWeek("2026-03-02", "2026-03-08", days)

	if stats.TotalSessions != 2 || stats.DeepMinutes != 120 {
		t.Fatalf("expected totals 2 sessions / 120 deep, got %d / %d",
			stats.TotalSessions, stats.DeepMinutes)
	}
	// One outcome-bearing day: the weekly average equals that day's value.
	if stats.AvgFocusQuality == nil || *stats.AvgFocusQuality != 4 {
		t.Fatalf("expected avg focus 4, got %v", stats.AvgFocusQuality)
	}
	if stats.AvgSleepDurationMinutes != nil {
		t.Fatalf("expected nil sleep average with no sleep records")
	}
}

func TestWeeklyStatsForCoversSevenDays(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	seedManualSession(t, db, monday.Add(9*time.Hour), 60, model.WorkTypeDeep)
	seedManualSession(t, db, monday.AddDate(0, 0, 6).Add(20*time.Hour), 30, model.WorkTypeShallow)
	// Day after the window must not leak in.
	seedManualSession(t, db, monday.AddDate(0, 0, 7).Add(9*time.Hour), 500, model.WorkTypeDeep)

	seedSleep(t, db, monday.Add(7*time.Hour), 420, 4, 8)
	seedSleep(t, db, monday.AddDate(0, 0, 1).Add(7*time.Hour), 360, 2, 5)

	stats, err := service.WeeklyStatsFor(db, monday)
	if err != nil {
		t.Fatalf("weekly stats: %v", err)
	}
	if stats.WeekStart != "2026-03-02" || stats.WeekEnd != "2026-03-08" {
		t.Fatalf("unexpected window %s .. %s", stats.WeekStart, stats.WeekEnd)
	}
	if stats.TotalSessions != 2 {
		t.Fatalf("expected 2 sessions in window, got %d", stats.TotalSessions)
	}
	if stats.DeepMinutes != 60 || stats.ShallowMinutes != 30 {
		t.Fatalf("unexpected minutes: deep %d shallow %d", stats.DeepMinutes, stats.ShallowMinutes)
	}
	if stats.AvgSleepDurationMinutes == nil || *stats.AvgSleepDurationMinutes != 390 {
		t.Fatalf("expected avg sleep 390, got %v", stats.AvgSleepDurationMinutes)
	}
}
