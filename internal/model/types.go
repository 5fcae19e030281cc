package model

import "time"

// Domain is a high-level life area a session belongs to.
type Domain string

const (
	DomainCollege         Domain = "College"
	DomainWork            Domain = "Work"
	DomainPersonalProject Domain = "Personal Project"
	DomainHealth          Domain = "Health"
	DomainRelationships   Domain = "Relationships"
	DomainAdmin           Domain = "Admin"
	DomainLearning        Domain = "Learning"
)

// WorkType classifies the kind of effort a session required.
type WorkType string

const (
	WorkTypeDeep        WorkType = "Deep"
	WorkTypeShallow     WorkType = "Shallow"
	WorkTypeMaintenance WorkType = "Maintenance"
	WorkTypeRecovery    WorkType = "Recovery"
	WorkTypeUnknown     WorkType = "Unknown"
)

// CompletionStatus describes how a session ended.
type CompletionStatus string

const (
	StatusCompleted     CompletionStatus = "Completed"
	StatusGoodProgress  CompletionStatus = "Good progress"
	StatusMinorProgress CompletionStatus = "Minor progress"
	StatusBlocked       CompletionStatus = "Blocked"
	StatusAbandoned     CompletionStatus = "Abandoned"
)

// SleepNight is one night of sleep keyed by the wake-up date.
type SleepNight struct {
	Date       string
	SleepStart time.Time
	SleepEnd   time.Time

	SleepQuality    int // 1-5
	AwakeningsCount int

	EnergyMorning int // 1-10
	MoodMorning   int // 1-10

	ScreenLastHour    *bool
	CaffeineAfter17   *bool
	BedtimeConsistent *bool
}

// DurationMinutes is the total sleep duration in whole minutes.
func (s *SleepNight) DurationMinutes() int {
	return int(s.SleepEnd.Sub(s.SleepStart).Seconds()) / 60
}

// BeforeState is the self-reported state at session start.
type BeforeState struct {
	Energy     int // 1-10
	Stress     int // 1-10
	Resistance int // 1-5, how hard it was to start
}

// AfterState is the self-reported state at session end.
type AfterState struct {
	Energy  int // 1-10
	Stress  int // 1-10
	FeelTag string
}

// SessionContext is the intent and framing of a session.
type SessionContext struct {
	Domain              Domain
	ProjectName         string
	ActivityDescription string
	WorkType            WorkType
	PlannedDurationMin  *int
}

// SessionOutcome is the self-evaluation recorded when a session ends.
type SessionOutcome struct {
	CompletionStatus CompletionStatus
	ProgressRating   int // 1-5
	QualityRating    int // 1-5
	FocusQuality     int // 1-5
	MovesMainGoal    bool
	EvidenceNote     string
}

// Session is one intentional block of work. After and Outcome stay nil
// until the session is finished.
type Session struct {
	ID        int64
	StartTime time.Time
	EndTime   *time.Time

	Context SessionContext
	Before  BeforeState
	After   *AfterState
	Outcome *SessionOutcome
}

// Date is the calendar date of the session, taken from its start time.
func (s *Session) Date() string {
	return s.StartTime.Format("2006-01-02")
}

// IsFinished reports whether the session has an end time.
func (s *Session) IsFinished() bool {
	return s.EndTime != nil
}

// DurationMinutes returns the whole-minute duration, or nil while the
// session is still open.
func (s *Session) DurationMinutes() *int {
	if s.EndTime == nil {
		return nil
	}
	m := int(s.EndTime.Sub(s.StartTime).Seconds()) / 60
	return &m
}

// EnergyDelta is after minus before energy, or nil without an after-state.
func (s *Session) EnergyDelta() *int {
	if s.After == nil {
		return nil
	}
	d := s.After.Energy - s.Before.Energy
	return &d
}

// StressDelta is after minus before stress, or nil without an after-state.
func (s *Session) StressDelta() *int {
	if s.After == nil {
		return nil
	}
	d := s.After.Stress - s.Before.Stress
	return &d
}

// DaySummary is the derived aggregate for one calendar date. It is
// recomputed per query and never persisted. Average and sleep fields are
// nil when no data contributes to them, never zero.
type DaySummary struct {
	Date string `json:"date"`

	TotalSessions      int `json:"total_sessions"`
	DeepMinutes        int `json:"deep_minutes"`
	ShallowMinutes     int `json:"shallow_minutes"`
	MaintenanceMinutes int `json:"maintenance_minutes"`

	MinutesByDomain map[Domain]int `json:"minutes_by_domain"`

	AvgFocusQuality   *float64 `json:"avg_focus_quality,omitempty"`
	AvgProgressRating *float64 `json:"avg_progress_rating,omitempty"`
	AvgQualityRating  *float64 `json:"avg_quality_rating,omitempty"`

	SleepDurationMinutes *int `json:"sleep_duration_minutes,omitempty"`
	SleepQuality         *int `json:"sleep_quality,omitempty"`
	EnergyMorning        *int `json:"energy_morning,omitempty"`
}

// EmptyDaySummary is the canonical summary for a day with no records.
func EmptyDaySummary(date string) DaySummary {
	return DaySummary{
		Date:            date,
		MinutesByDomain: map[Domain]int{},
	}
}

// WeeklyStats aggregates day summaries over a 7-day window.
type WeeklyStats struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`

	TotalSessions      int `json:"total_sessions"`
	DeepMinutes        int `json:"deep_minutes"`
	ShallowMinutes     int `json:"shallow_minutes"`
	MaintenanceMinutes int `json:"maintenance_minutes"`

	MinutesByDomain map[Domain]int `json:"minutes_by_domain"`

	AvgFocusQuality   *float64 `json:"avg_focus_quality,omitempty"`
	AvgProgressRating *float64 `json:"avg_progress_rating,omitempty"`
	AvgQualityRating  *float64 `json:"avg_quality_rating,omitempty"`

	AvgSleepDurationMinutes *float64 `json:"avg_sleep_duration_minutes,omitempty"`
	AvgSleepQuality         *float64 `json:"avg_sleep_quality,omitempty"`
	AvgEnergyMorning        *float64 `json:"avg_energy_morning,omitempty"`
}

// Task is a planned activity that has not happened yet.
type Task struct {
	ID                  int64
	Domain              Domain
	ProjectName         string
	ActivityDescription string
	WorkType            WorkType
	CreatedAt           time.Time
}

// DailyIntake tracks water and meal times for one date.
type DailyIntake struct {
	Date          string
	WaterCount    int
	BreakfastTime *time.Time
	LunchTime     *time.Time
	DinnerTime    *time.Time
}
