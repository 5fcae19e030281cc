package service_test

import (
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func TestSummarizeDayEmpty(t *testing.T) {
	t.Parallel()

	summary := service.SummarizeDay("2026-03-10", nil, nil)

	if summary.Date != "2026-03-10" {
		t.Fatalf("expected date 2026-03-10, got %s", summary.Date)
	}
	if summary.TotalSessions != 0 {
		t.Fatalf("expected 0 sessions, got %d", summary.TotalSessions)
	}
	if summary.MinutesByDomain == nil || len(summary.MinutesByDomain) != 0 {
		t.Fatalf("expected empty non-nil domain map, got %v", summary.MinutesByDomain)
	}
	if summary.AvgFocusQuality != nil {
		t.Fatalf("expected nil avg focus for empty day, got %v", *summary.AvgFocusQuality)
	}
	if summary.SleepDurationMinutes != nil {
		t.Fatalf("expected nil sleep duration for empty day")
	}
}

func TestSummarizeDayMinutesByWorkType(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	sessions := []model.Session{
		finishedSession(start, 90, model.WorkTypeDeep),
		finishedSession(start.Add(2*time.Hour), 30, model.WorkTypeShallow),
		finishedSession(start.Add(4*time.Hour), 20, model.WorkTypeMaintenance),
		finishedSession(start.Add(6*time.Hour), 45, model.WorkTypeDeep),
	}

	summary := service.SummarizeDay("2026-03-10", nil, sessions)

	if summary.TotalSessions != 4 {
		t.Fatalf("expected 4 sessions, got %d", summary.TotalSessions)
	}
	if summary.DeepMinutes != 135 {
		t.Fatalf("expected 135 deep minutes, got %d", summary.DeepMinutes)
	}
	if summary.ShallowMinutes != 30 {
		t.Fatalf("expected 30 shallow minutes, got %d", summary.ShallowMinutes)
	}
	if summary.MaintenanceMinutes != 20 {
		t.Fatalf("expected 20 maintenance minutes, got %d", summary.MaintenanceMinutes)
	}
	if summary.MinutesByDomain[model.DomainWork] != 185 {
		t.Fatalf("expected 185 minutes for Work, got %d", summary.MinutesByDomain[model.DomainWork])
	}
}

func TestSummarizeDayOpenAndZeroLengthSessions(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	open := model.Session{
		StartTime: start,
		Context: model.SessionContext{
			Domain:              model.DomainCollege,
			ProjectName:         "thesis",
			ActivityDescription: "writing",
			WorkType:            model.WorkTypeDeep,
		},
		Before: model.BeforeState{Energy: 7, Stress: 3, Resistance: 2},
	}
	// 40 seconds: floors to 0 minutes, still a session.
	shortEnd := start.Add(40 * time.Second)
	short := open
	short.EndTime = &shortEnd

	summary := service.SummarizeDay("2026-03-10", nil, []model.Session{open, short})

	if summary.TotalSessions != 2 {
		t.Fatalf("expected both sessions counted, got %d", summary.TotalSessions)
	}
	if summary.DeepMinutes != 0 {
		t.Fatalf("expected 0 deep minutes, got %d", summary.DeepMinutes)
	}
	if len(summary.MinutesByDomain) != 0 {
		t.Fatalf("expected no domain minutes, got %v", summary.MinutesByDomain)
	}
	if summary.AvgFocusQuality != nil {
		t.Fatalf("expected nil avg focus without outcomes")
	}
}

func TestSummarizeDayAveragesOnlyOverOutcomeSessions(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	withOutcome := finishedSession(start, 60, model.WorkTypeDeep)
	withOutcome.Outcome.FocusQuality = 5
	withOutcome.Outcome.ProgressRating = 4
	withOutcome.Outcome.QualityRating = 2

	open := model.Session{
		StartTime: start.Add(3 * time.Hour),
		Context:   withOutcome.Context,
		Before:    withOutcome.Before,
	}

	summary := service.SummarizeDay("2026-03-10", nil, []model.Session{withOutcome, open})

	if summary.AvgFocusQuality == nil || *summary.AvgFocusQuality != 5 {
		t.Fatalf("expected avg focus 5, got %v", summary.AvgFocusQuality)
	}
	if summary.AvgProgressRating == nil || *summary.AvgProgressRating != 4 {
		t.Fatalf("expected avg progress 4, got %v", summary.AvgProgressRating)
	}
	if summary.AvgQualityRating == nil || *summary.AvgQualityRating != 2 {
		t.Fatalf("expected avg quality 2, got %v", summary.AvgQualityRating)
	}
}

func TestDaySummaryForReadsSleepAndSessions(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	seedSleep(t, db, day.Add(7*time.Hour), 450, 4, 8)
	seedManualSession(t, db, day.Add(9*time.Hour), 60, model.WorkTypeDeep)

	summary, err := service.DaySummaryFor(db, day)
	if err != nil {
		t.Fatalf("day summary: %v", err)
	}
	if summary.TotalSessions != 1 || summary.DeepMinutes != 60 {
		t.Fatalf("expected 1 session / 60 deep minutes, got %d / %d",
			summary.TotalSessions, summary.DeepMinutes)
	}
	if summary.SleepDurationMinutes == nil || *summary.SleepDurationMinutes != 450 {
		t.Fatalf("expected 450 sleep minutes, got %v", summary.SleepDurationMinutes)
	}
	if summary.SleepQuality == nil || *summary.SleepQuality != 4 {
		t.Fatalf("expected sleep quality 4, got %v", summary.SleepQuality)
	}
}

func TestDaySummariesSwapsReversedRange(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 0, 2)

	days, err := service.DaySummaries(db, end, start)
	if err != nil {
		t.Fatalf("day summaries: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Date != "2026-03-10" || days[2].Date != "2026-03-12" {
		t.Fatalf("expected ascending dates, got %s .. %s", days[0].Date, days[2].Date)
	}
}
