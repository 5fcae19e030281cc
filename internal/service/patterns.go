package service

import (
	"database/sql"
	"strings"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

// Pattern bucket names. Every result map carries all five keys.
const (
	PatternCleanWin    = "Clean Win"
	PatternOverclocked = "Overclocked"
	PatternMaintenance = "Maintenance"
	PatternGrind       = "Grind"
	PatternDrift       = "Drift"
)

// Feel tags that mark a high-progress session as bought with strain.
var negativeFeelTags = []string{"drained", "anxious", "tired", "wired", "frustrated", "stress"}

// ClassifyPatterns buckets outcome-bearing sessions into qualitative
// archetypes. Sessions without an outcome are skipped; maintenance-typed
// sessions land in the Maintenance bucket regardless of their ratings.
func ClassifyPatterns(sessions []model.Session) map[string]int {
	counts := map[string]int{
		PatternCleanWin:    0,
		PatternOverclocked: 0,
		PatternMaintenance: 0,
		PatternGrind:       0,
		PatternDrift:       0,
	}

	for i := range sessions {
		s := &sessions[i]
		if s.Outcome == nil {
			continue
		}
		if s.Context.WorkType == model.WorkTypeMaintenance {
			counts[PatternMaintenance]++
			continue
		}

		progress := s.Outcome.ProgressRating
		focus := s.Outcome.FocusQuality

		switch {
		case progress >= 4:
			if hasNegativeFeel(s) || drainedHard(s) {
				counts[PatternOverclocked]++
			} else {
				counts[PatternCleanWin]++
			}
		case focus >= 4:
			counts[PatternGrind]++
		default:
			counts[PatternDrift]++
		}
	}
	return counts
}

// SessionPatterns classifies all sessions in the inclusive date range.
func SessionPatterns(db *sql.DB, from, to time.Time) (map[string]int, error) {
	sessions, err := SessionsBetween(db, from, to)
	if err != nil {
		return nil, err
	}
	return ClassifyPatterns(sessions), nil
}

func hasNegativeFeel(s *model.Session) bool {
	if s.After == nil {
		return false
	}
	feel := strings.ToLower(s.After.FeelTag)
	for _, tag := range negativeFeelTags {
		if strings.Contains(feel, tag) {
			return true
		}
	}
	return false
}

func drainedHard(s *model.Session) bool {
	delta := s.EnergyDelta()
	return delta != nil && *delta <= -2
}
