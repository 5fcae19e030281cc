package service_test

import (
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func TestClassifyPatternsBuckets(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	cleanWin := finishedSession(start, 60, model.WorkTypeDeep)
	cleanWin.Outcome.ProgressRating = 5
	cleanWin.After.FeelTag = "energized"

	overclockedFeel := finishedSession(start, 60, model.WorkTypeDeep)
	overclockedFeel.Outcome.ProgressRating = 4
	overclockedFeel.After.FeelTag = "completely drained"

	overclockedDelta := finishedSession(start, 60, model.WorkTypeDeep)
	overclockedDelta.Outcome.ProgressRating = 4
	overclockedDelta.After.FeelTag = "fine"
	overclockedDelta.Before.Energy = 8
	overclockedDelta.After.Energy = 5

	maintenance := finishedSession(start, 60, model.WorkTypeMaintenance)
	maintenance.Outcome.ProgressRating = 5

	grind := finishedSession(start, 60, model.WorkTypeDeep)
	grind.Outcome.ProgressRating = 2
	grind.Outcome.FocusQuality = 4

	drift := finishedSession(start, 60, model.WorkTypeShallow)
	drift.Outcome.ProgressRating = 2
	drift.Outcome.FocusQuality = 2

	open := model.Session{StartTime: start, Context: cleanWin.Context, Before: cleanWin.Before}

	counts := service.ClassifyPatterns([]model.Session{
		cleanWin, overclockedFeel, overclockedDelta, maintenance, grind, drift, open,
	})

	want := map[string]int{
		service.PatternCleanWin:    1,
		service.PatternOverclocked: 2,
		service.PatternMaintenance: 1,
		service.PatternGrind:       1,
		service.PatternDrift:       1,
	}
	for name, expected := range want {
		if counts[name] != expected {
			t.Errorf("%s: expected %d, got %d", name, expected, counts[name])
		}
	}
}

func TestClassifyPatternsMaintenanceWinsOverRatings(t *testing.T) {
	t.Parallel()

	s := finishedSession(time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 60, model.WorkTypeMaintenance)
	s.Outcome.ProgressRating = 5
	s.Outcome.FocusQuality = 5
	s.After.FeelTag = "drained"

	counts := service.ClassifyPatterns([]model.Session{s})
	if counts[service.PatternMaintenance] != 1 {
		t.Fatalf("expected maintenance bucket, got %v", counts)
	}
	if counts[service.PatternOverclocked] != 0 || counts[service.PatternCleanWin] != 0 {
		t.Fatalf("maintenance session leaked into other buckets: %v", counts)
	}
}

func TestClassifyPatternsEmptyKeepsAllKeys(t *testing.T) {
	t.Parallel()

	counts := service.ClassifyPatterns(nil)
	if len(counts) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(counts))
	}
	for name, count := range counts {
		if count != 0 {
			t.Fatalf("expected %s to be 0, got %d", name, count)
		}
	}
}
