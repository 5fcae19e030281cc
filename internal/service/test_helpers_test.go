package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/db"
	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icarus.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

// finishedSession builds an in-memory finished session without touching
// the database. Ratings default to the middle of their scales.
func finishedSession(start time.Time, minutes int, workType model.WorkType) model.Session {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return model.Session{
		StartTime: start,
		EndTime:   &end,
		Context: model.SessionContext{
			Domain:              model.DomainWork,
			ProjectName:         "project",
			ActivityDescription: "activity",
			WorkType:            workType,
		},
		Before: model.BeforeState{Energy: 6, Stress: 4, Resistance: 2},
		After:  &model.AfterState{Energy: 6, Stress: 4, FeelTag: "calm"},
		Outcome: &model.SessionOutcome{
			CompletionStatus: model.StatusGoodProgress,
			ProgressRating:   3,
			QualityRating:    3,
			FocusQuality:     3,
		},
	}
}

func seedManualSession(t *testing.T, sqldb *sql.DB, start time.Time, minutes int, workType model.WorkType) *model.Session {
	t.Helper()
	session, err := service.LogManualSession(sqldb, service.ManualSessionInput{
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
		StartSessionInput: service.StartSessionInput{
			Domain:              model.DomainWork,
			ProjectName:         "project",
			ActivityDescription: "activity",
			WorkType:            workType,
			EnergyBefore:        6,
			StressBefore:        4,
			ResistanceBefore:    2,
		},
		EndSessionInput: service.EndSessionInput{
			CompletionStatus: model.StatusGoodProgress,
			ProgressRating:   3,
			QualityRating:    3,
			FocusQuality:     3,
			EnergyAfter:      6,
			StressAfter:      4,
			FeelTag:          "calm",
		},
	})
	if err != nil {
		t.Fatalf("seed session at %s: %v", start.Format("2006-01-02 15:04"), err)
	}
	return session
}

func seedSleep(t *testing.T, sqldb *sql.DB, wake time.Time, minutes, quality, energy int) *model.SleepNight {
	t.Helper()
	night, err := service.LogSleep(sqldb, service.SleepInput{
		Date:            wake,
		SleepStart:      wake.Add(-time.Duration(minutes) * time.Minute),
		SleepEnd:        wake,
		SleepQuality:    quality,
		AwakeningsCount: 1,
		EnergyMorning:   energy,
		MoodMorning:     7,
	})
	if err != nil {
		t.Fatalf("seed sleep for %s: %v", wake.Format("2006-01-02"), err)
	}
	return night
}
