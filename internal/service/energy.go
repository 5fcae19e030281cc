package service

import (
	"database/sql"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

// EnergyLedger computes the mean energy delta (after minus before) per
// domain. Only sessions with an after-state contribute; domains with no
// contributing sessions are absent from the result.
func EnergyLedger(sessions []model.Session) map[model.Domain]float64 {
	sums := map[model.Domain]int{}
	counts := map[model.Domain]int{}

	for i := range sessions {
		delta := sessions[i].EnergyDelta()
		if delta == nil {
			continue
		}
		domain := sessions[i].Context.Domain
		sums[domain] += *delta
		counts[domain]++
	}

	ledger := make(map[model.Domain]float64, len(sums))
	for domain, sum := range sums {
		ledger[domain] = float64(sum) / float64(counts[domain])
	}
	return ledger
}

// EnergyLedgerBetween builds the ledger over the inclusive date range.
func EnergyLedgerBetween(db *sql.DB, from, to time.Time) (map[model.Domain]float64, error) {
	sessions, err := SessionsBetween(db, from, to)
	if err != nil {
		return nil, err
	}
	return EnergyLedger(sessions), nil
}
