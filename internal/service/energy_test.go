package service_test

import (
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func TestEnergyLedgerPerDomainMean(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	workDrain := finishedSession(start, 60, model.WorkTypeDeep)
	workDrain.Before.Energy = 8
	workDrain.After.Energy = 5 // -3

	workLift := finishedSession(start.Add(3*time.Hour), 60, model.WorkTypeDeep)
	workLift.Before.Energy = 5
	workLift.After.Energy = 6 // +1

	health := finishedSession(start.Add(6*time.Hour), 45, model.WorkTypeMaintenance)
	health.Context.Domain = model.DomainHealth
	health.Before.Energy = 4
	health.After.Energy = 8 // +4

	ledger := service.EnergyLedger([]model.Session{workDrain, workLift, health})

	if got := ledger[model.DomainWork]; got != -1 {
		t.Fatalf("expected Work mean -1, got %f", got)
	}
	if got := ledger[model.DomainHealth]; got != 4 {
		t.Fatalf("expected Health mean 4, got %f", got)
	}
	if len(ledger) != 2 {
		t.Fatalf("expected 2 domains, got %v", ledger)
	}
}

func TestEnergyLedgerSkipsOpenSessions(t *testing.T) {
	t.Parallel()

	open := model.Session{
		StartTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		Context: model.SessionContext{
			Domain:              model.DomainWork,
			ProjectName:         "project",
			ActivityDescription: "activity",
			WorkType:            model.WorkTypeDeep,
		},
		Before: model.BeforeState{Energy: 6, Stress: 4, Resistance: 2},
	}

	ledger := service.EnergyLedger([]model.Session{open})
	if len(ledger) != 0 {
		t.Fatalf("expected empty ledger for open sessions, got %v", ledger)
	}
}
