package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
)

const maxSessionMinutes = 16 * 60

type StartSessionInput struct {
	Domain              model.Domain
	ProjectName         string
	ActivityDescription string
	WorkType            model.WorkType
	PlannedDurationMin  *int

	EnergyBefore     int
	StressBefore     int
	ResistanceBefore int
}

type EndSessionInput struct {
	CompletionStatus model.CompletionStatus
	ProgressRating   int
	QualityRating    int
	FocusQuality     int
	MovesMainGoal    bool
	EvidenceNote     string

	EnergyAfter int
	StressAfter int
	FeelTag     string
}

// ManualSessionInput logs an already-finished session in one step, with
// explicit start and end times.
type ManualSessionInput struct {
	StartTime time.Time
	EndTime   time.Time

	StartSessionInput
	EndSessionInput
}

// StartSession creates and persists a new open session starting now.
func StartSession(db *sql.DB, in StartSessionInput) (*model.Session, error) {
	session := &model.Session{
		StartTime: time.Now(),
		Context:   buildContext(in),
		Before: model.BeforeState{
			Energy:     in.EnergyBefore,
			Stress:     in.StressBefore,
			Resistance: in.ResistanceBefore,
		},
	}
	if err := validateSessionStart(session); err != nil {
		return nil, err
	}
	return insertSession(db, session)
}

// EndSession finishes an open session, attaching its after-state and
// outcome at the current time.
func EndSession(db *sql.DB, id int64, in EndSessionInput) (*model.Session, error) {
	session, err := GetSession(db, id)
	if err != nil {
		return nil, err
	}
	if session.IsFinished() {
		return nil, fmt.Errorf("session %d is already finished", id)
	}

	now := time.Now()
	session.EndTime = &now
	session.After = buildAfterState(in)
	session.Outcome = buildOutcome(in)

	if err := validateFullSession(session); err != nil {
		return nil, err
	}
	if err := updateSession(db, session); err != nil {
		return nil, err
	}
	return session, nil
}

// LogManualSession persists a fully-formed session that already happened.
func LogManualSession(db *sql.DB, in ManualSessionInput) (*model.Session, error) {
	end := in.EndTime
	session := &model.Session{
		StartTime: in.StartTime,
		EndTime:   &end,
		Context:   buildContext(in.StartSessionInput),
		Before: model.BeforeState{
			Energy:     in.EnergyBefore,
			Stress:     in.StressBefore,
			Resistance: in.ResistanceBefore,
		},
		After:   buildAfterState(in.EndSessionInput),
		Outcome: buildOutcome(in.EndSessionInput),
	}
	if err := validateFullSession(session); err != nil {
		return nil, err
	}
	return insertSession(db, session)
}

// UpdateSessionWorkType changes the work-type tag of an existing session.
func UpdateSessionWorkType(db *sql.DB, id int64, workType model.WorkType) (*model.Session, error) {
	session, err := GetSession(db, id)
	if err != nil {
		return nil, err
	}
	session.Context.WorkType = workType
	if _, err := db.Exec(`UPDATE sessions SET work_type = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		string(workType), id); err != nil {
		return nil, fmt.Errorf("update session %d work type: %w", id, err)
	}
	return session, nil
}

func DeleteSession(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("session %d not found", id)
	}
	return nil
}

// GetSession retrieves one session by id, or errors if it does not exist.
func GetSession(db *sql.DB, id int64) (*model.Session, error) {
	row := db.QueryRow(sessionSelect+` WHERE id = ?`, id)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	return session, nil
}

// SessionsForDate lists sessions whose start date matches the given day,
// ascending by start time.
func SessionsForDate(db *sql.DB, day time.Time) ([]model.Session, error) {
	return querySessions(db, sessionSelect+` WHERE date = ? ORDER BY start_time ASC`, formatDate(day))
}

// SessionsBetween lists sessions whose start date falls in the inclusive
// range, ascending by start time.
func SessionsBetween(db *sql.DB, from, to time.Time) ([]model.Session, error) {
	if to.Before(from) {
		from, to = to, from
	}
	return querySessions(db,
		sessionSelect+` WHERE date >= ? AND date <= ? ORDER BY start_time ASC`,
		formatDate(from), formatDate(to))
}

func AllSessions(db *sql.DB) ([]model.Session, error) {
	return querySessions(db, sessionSelect+` ORDER BY start_time ASC`)
}

// LatestOpenSession returns the most recently started unfinished session,
// or nil if every session is finished. Multiple open sessions are allowed;
// the newest one wins.
func LatestOpenSession(db *sql.DB) (*model.Session, error) {
	row := db.QueryRow(sessionSelect + ` WHERE end_time IS NULL ORDER BY start_time DESC LIMIT 1`)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest open session: %w", err)
	}
	return session, nil
}

const sessionSelect = `
SELECT id, start_time, end_time,
       domain, project_name, activity_description, work_type, planned_duration_min,
       energy_before, stress_before, resistance_before,
       completion_status, progress_rating, quality_rating, focus_quality,
       moves_main_goal, evidence_note,
       energy_after, stress_after, feel_tag
FROM sessions`

func insertSession(db *sql.DB, session *model.Session) (*model.Session, error) {
	var (
		endTime any
		outcome = session.Outcome
		after   = session.After
	)
	if session.EndTime != nil {
		endTime = formatDateTime(*session.EndTime)
	}

	var completionStatus, evidenceNote, feelTag any
	var progress, quality, focus, movesMain, energyAfter, stressAfter any
	if outcome != nil {
		completionStatus = string(outcome.CompletionStatus)
		progress = outcome.ProgressRating
		quality = outcome.QualityRating
		focus = outcome.FocusQuality
		if outcome.MovesMainGoal {
			movesMain = 1
		} else {
			movesMain = 0
		}
		if outcome.EvidenceNote != "" {
			evidenceNote = outcome.EvidenceNote
		}
	}
	if after != nil {
		energyAfter = after.Energy
		stressAfter = after.Stress
		feelTag = after.FeelTag
	}

	res, err := db.Exec(`
INSERT INTO sessions (
  date, start_time, end_time,
  domain, project_name, activity_description, work_type, planned_duration_min,
  energy_before, stress_before, resistance_before,
  completion_status, progress_rating, quality_rating, focus_quality,
  moves_main_goal, evidence_note,
  energy_after, stress_after, feel_tag
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		session.Date(),
		formatDateTime(session.StartTime),
		endTime,
		string(session.Context.Domain),
		session.Context.ProjectName,
		session.Context.ActivityDescription,
		string(session.Context.WorkType),
		session.Context.PlannedDurationMin,
		session.Before.Energy,
		session.Before.Stress,
		session.Before.Resistance,
		completionStatus, progress, quality, focus,
		movesMain, evidenceNote,
		energyAfter, stressAfter, feelTag,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read session id: %w", err)
	}
	session.ID = id
	return session, nil
}

func updateSession(db *sql.DB, session *model.Session) error {
	var endTime any
	if session.EndTime != nil {
		endTime = formatDateTime(*session.EndTime)
	}
	var completionStatus, evidenceNote, feelTag any
	var progress, quality, focus, movesMain, energyAfter, stressAfter any
	if session.Outcome != nil {
		completionStatus = string(session.Outcome.CompletionStatus)
		progress = session.Outcome.ProgressRating
		quality = session.Outcome.QualityRating
		focus = session.Outcome.FocusQuality
		if session.Outcome.MovesMainGoal {
			movesMain = 1
		} else {
			movesMain = 0
		}
		if session.Outcome.EvidenceNote != "" {
			evidenceNote = session.Outcome.EvidenceNote
		}
	}
	if session.After != nil {
		energyAfter = session.After.Energy
		stressAfter = session.After.Stress
		feelTag = session.After.FeelTag
	}

	_, err := db.Exec(`
UPDATE sessions SET
  end_time = ?,
  work_type = ?,
  completion_status = ?, progress_rating = ?, quality_rating = ?, focus_quality = ?,
  moves_main_goal = ?, evidence_note = ?,
  energy_after = ?, stress_after = ?, feel_tag = ?,
  updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`,
		endTime,
		string(session.Context.WorkType),
		completionStatus, progress, quality, focus,
		movesMain, evidenceNote,
		energyAfter, stressAfter, feelTag,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("update session %d: %w", session.ID, err)
	}
	return nil
}

func querySessions(db *sql.DB, query string, args ...any) ([]model.Session, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]model.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(row rowScanner) (*model.Session, error) {
	var (
		session            model.Session
		startStr           string
		endStr             *string
		domain, workType   string
		planned            *int
		completionStatus   *string
		progress, quality  *int
		focus, movesMain   *int
		evidenceNote       *string
		energyA, stressA   *int
		feelTag            *string
	)
	if err := row.Scan(
		&session.ID, &startStr, &endStr,
		&domain, &session.Context.ProjectName, &session.Context.ActivityDescription, &workType, &planned,
		&session.Before.Energy, &session.Before.Stress, &session.Before.Resistance,
		&completionStatus, &progress, &quality, &focus,
		&movesMain, &evidenceNote,
		&energyA, &stressA, &feelTag,
	); err != nil {
		return nil, err
	}

	session.Context.Domain = model.Domain(domain)
	session.Context.WorkType = model.WorkType(workType)
	session.Context.PlannedDurationMin = planned

	var err error
	if session.StartTime, err = parseDateTime(startStr); err != nil {
		return nil, err
	}
	if endStr != nil {
		end, err := parseDateTime(*endStr)
		if err != nil {
			return nil, err
		}
		session.EndTime = &end
	}

	if energyA != nil && stressA != nil {
		after := model.AfterState{Energy: *energyA, Stress: *stressA}
		if feelTag != nil {
			after.FeelTag = *feelTag
		}
		session.After = &after
	}
	if completionStatus != nil && progress != nil && quality != nil && focus != nil {
		outcome := model.SessionOutcome{
			CompletionStatus: model.CompletionStatus(*completionStatus),
			ProgressRating:   *progress,
			QualityRating:    *quality,
			FocusQuality:     *focus,
			MovesMainGoal:    movesMain != nil && *movesMain != 0,
		}
		if evidenceNote != nil {
			outcome.EvidenceNote = *evidenceNote
		}
		session.Outcome = &outcome
	}
	return &session, nil
}

func buildContext(in StartSessionInput) model.SessionContext {
	return model.SessionContext{
		Domain:              in.Domain,
		ProjectName:         strings.TrimSpace(in.ProjectName),
		ActivityDescription: strings.TrimSpace(in.ActivityDescription),
		WorkType:            in.WorkType,
		PlannedDurationMin:  in.PlannedDurationMin,
	}
}

func buildAfterState(in EndSessionInput) *model.AfterState {
	return &model.AfterState{
		Energy:  in.EnergyAfter,
		Stress:  in.StressAfter,
		FeelTag: strings.TrimSpace(in.FeelTag),
	}
}

func buildOutcome(in EndSessionInput) *model.SessionOutcome {
	return &model.SessionOutcome{
		CompletionStatus: in.CompletionStatus,
		ProgressRating:   in.ProgressRating,
		QualityRating:    in.QualityRating,
		FocusQuality:     in.FocusQuality,
		MovesMainGoal:    in.MovesMainGoal,
		EvidenceNote:     strings.TrimSpace(in.EvidenceNote),
	}
}

func validateSessionStart(session *model.Session) error {
	var errs []string

	if session.Context.ProjectName == "" {
		errs = append(errs, "project name cannot be empty")
	}
	if session.Context.ActivityDescription == "" {
		errs = append(errs, "activity description cannot be empty")
	}
	if planned := session.Context.PlannedDurationMin; planned != nil {
		if *planned <= 0 {
			errs = append(errs, "planned duration must be positive if provided")
		}
		if *planned > maxSessionMinutes {
			errs = append(errs, "planned duration appears unrealistically large (> 16 hours)")
		}
	}

	validateRange("energy before", session.Before.Energy, 1, 10, &errs)
	validateRange("stress before", session.Before.Stress, 1, 10, &errs)
	validateRange("resistance before", session.Before.Resistance, 1, 5, &errs)

	return validationError(errs)
}

func validateFullSession(session *model.Session) error {
	var errs []string

	if err := validateSessionStart(session); err != nil {
		errs = append(errs, err.Error())
	}

	if session.EndTime == nil {
		errs = append(errs, "end time must be set when ending a session")
	} else {
		if !session.EndTime.After(session.StartTime) {
			errs = append(errs, "end time must be after start time")
		} else if duration := session.DurationMinutes(); duration != nil {
			if *duration < 5 {
				errs = append(errs, "session duration appears too short (< 5 minutes)")
			}
			if *duration > maxSessionMinutes {
				errs = append(errs, "session duration appears unrealistically long (> 16 hours)")
			}
		}
	}

	if session.After == nil {
		errs = append(errs, "after-state must be provided when ending a session")
	} else {
		validateRange("energy after", session.After.Energy, 1, 10, &errs)
		validateRange("stress after", session.After.Stress, 1, 10, &errs)
		if session.After.FeelTag == "" {
			errs = append(errs, "feel tag cannot be empty")
		}
	}

	if session.Outcome == nil {
		errs = append(errs, "outcome must be provided when ending a session")
	} else {
		validateRange("progress rating", session.Outcome.ProgressRating, 1, 5, &errs)
		validateRange("quality rating", session.Outcome.QualityRating, 1, 5, &errs)
		validateRange("focus quality", session.Outcome.FocusQuality, 1, 5, &errs)
	}

	return validationError(errs)
}
