package service_test

import (
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func summaryWith(deep int, sleepMin, sleepQual *int, focus *float64) model.DaySummary {
	s := model.EmptyDaySummary("2026-03-10")
	s.DeepMinutes = deep
	s.SleepDurationMinutes = sleepMin
	s.SleepQuality = sleepQual
	s.AvgFocusQuality = focus
	return s
}

func floatPtr(v float64) *float64 { return &v }

func TestScoreSummary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		summary model.DaySummary
		want    int
	}{
		{"empty day", summaryWith(0, nil, nil, nil), 0},
		{"deep work only", summaryWith(150, nil, nil, nil), 30},
		{"deep work capped at 60", summaryWith(600, nil, nil, nil), 60},
		{"good sleep bonus", summaryWith(0, intPtr(420), nil, nil), 10},
		{"ok sleep bonus", summaryWith(0, intPtr(360), nil, nil), 5},
		{"short sleep no bonus", summaryWith(0, intPtr(300), nil, nil), 0},
		{"quality bonus without duration bonus", summaryWith(0, intPtr(300), intPtr(5), nil), 10},
		{"quality below threshold", summaryWith(0, intPtr(450), intPtr(3), nil), 10},
		{"both sleep bonuses", summaryWith(0, intPtr(450), intPtr(4), nil), 20},
		{"focus bonus truncates", summaryWith(0, nil, nil, floatPtr(3.7)), 14},
		{"zero focus still counted", summaryWith(0, nil, nil, floatPtr(0)), 0},
		{"full day capped at 100", summaryWith(600, intPtr(480), intPtr(5), floatPtr(5)), 100},
	}
	for _, tc := range cases {
		if got := service.ScoreSummary(tc.summary); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestScoreSummaryMonotonicInDeepMinutes(t *testing.T) {
	t.Parallel()

	prev := -1
	for deep := 0; deep <= 600; deep += 25 {
		score := service.ScoreSummary(summaryWith(deep, nil, nil, nil))
		if score < prev {
			t.Fatalf("score decreased at %d deep minutes: %d -> %d", deep, prev, score)
		}
		if score < 0 || score > 100 {
			t.Fatalf("score out of range at %d deep minutes: %d", deep, score)
		}
		prev = score
	}
}

func TestAggregateScoreAveragesDays(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	// 100 deep minutes -> output 20 on one of the two days.
	seedManualSession(t, db, day.Add(9*time.Hour), 100, model.WorkTypeDeep)

	daily, err := service.DailyScore(db, day)
	if err != nil {
		t.Fatalf("daily score: %v", err)
	}
	// Seeded session carries focus quality 3 -> +12.
	if daily != 32 {
		t.Fatalf("expected daily score 32, got %d", daily)
	}

	avg, err := service.AggregateScore(db, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("aggregate score: %v", err)
	}
	if avg != 16 {
		t.Fatalf("expected average score 16 over two days, got %d", avg)
	}
}
