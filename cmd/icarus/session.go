package icarus

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start, end, and review work sessions",
}

var (
	sessDomain     string
	sessProject    string
	sessActivity   string
	sessWorkType   string
	sessPlannedMin int

	sessEnergyBefore     int
	sessStressBefore     int
	sessResistanceBefore int

	sessStatus      string
	sessProgress    int
	sessQuality     int
	sessFocus       int
	sessMovesGoal   bool
	sessEvidence    string
	sessEnergyAfter int
	sessStressAfter int
	sessFeelTag     string

	sessStartAt string
	sessEndAt   string
)

func startInputFromFlags(cmd *cobra.Command, sqldb *sql.DB) (service.StartSessionInput, error) {
	in := service.StartSessionInput{
		Domain:              model.Domain(sessDomain),
		ProjectName:         sessProject,
		ActivityDescription: sessActivity,
		WorkType:            model.WorkType(sessWorkType),
		EnergyBefore:        sessEnergyBefore,
		StressBefore:        sessStressBefore,
		ResistanceBefore:    sessResistanceBefore,
	}
	if cmd.Flags().Changed("planned") {
		planned := sessPlannedMin
		in.PlannedDurationMin = &planned
	}

	// Unset flags fall back to configured defaults.
	fallbacks := []struct {
		flag string
		key  string
		dest *string
	}{
		{"domain", service.ConfigDefaultDomain, &sessDomain},
		{"type", service.ConfigDefaultWorkType, &sessWorkType},
		{"project", service.ConfigDefaultProject, &sessProject},
	}
	for _, fb := range fallbacks {
		if strings.TrimSpace(*fb.dest) != "" {
			continue
		}
		value, ok, err := service.GetConfig(sqldb, fb.key)
		if err != nil {
			return service.StartSessionInput{}, err
		}
		if ok {
			*fb.dest = value
		}
	}
	in.Domain = model.Domain(sessDomain)
	in.WorkType = model.WorkType(sessWorkType)
	in.ProjectName = sessProject
	return in, nil
}

func endInputFromFlags() service.EndSessionInput {
	return service.EndSessionInput{
		CompletionStatus: model.CompletionStatus(sessStatus),
		ProgressRating:   sessProgress,
		QualityRating:    sessQuality,
		FocusQuality:     sessFocus,
		MovesMainGoal:    sessMovesGoal,
		EvidenceNote:     sessEvidence,
		EnergyAfter:      sessEnergyAfter,
		StressAfter:      sessStressAfter,
		FeelTag:          sessFeelTag,
	}
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new work session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			in, err := startInputFromFlags(cmd, sqldb)
			if err != nil {
				return err
			}
			session, err := service.StartSession(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started session %d: %s [%s/%s] at %s\n",
				session.ID, session.Context.ActivityDescription,
				session.Context.Domain, session.Context.WorkType,
				session.StartTime.Format("15:04"))
			return nil
		})
	},
}

var endSessionID string

var sessionEndCmd = &cobra.Command{
	Use:   "end",
	Short: "Finish a session with its outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			var id int64
			if endSessionID != "" {
				parsed, err := parseInt64Arg("session id", endSessionID)
				if err != nil {
					return err
				}
				id = parsed
			} else {
				open, err := service.LatestOpenSession(sqldb)
				if err != nil {
					return err
				}
				if open == nil {
					return fmt.Errorf("no open session to end")
				}
				id = open.ID
			}
			session, err := service.EndSession(sqldb, id, endInputFromFlags())
			if err != nil {
				return err
			}
			minutes := session.DurationMinutes()
			fmt.Fprintf(cmd.OutOrStdout(), "Ended session %d: %s (%s)\n",
				session.ID, session.Outcome.CompletionStatus, formatMinutes(*minutes))
			return nil
		})
	},
}

var sessionLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log an already-finished session",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateTimeArg("--start", sessStartAt)
		if err != nil {
			return err
		}
		end, err := parseDateTimeArg("--end", sessEndAt)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			startIn, err := startInputFromFlags(cmd, sqldb)
			if err != nil {
				return err
			}
			session, err := service.LogManualSession(sqldb, service.ManualSessionInput{
				StartTime:         start,
				EndTime:           end,
				StartSessionInput: startIn,
				EndSessionInput:   endInputFromFlags(),
			})
			if err != nil {
				return err
			}
			minutes := session.DurationMinutes()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged session %d: %s (%s)\n",
				session.ID, session.Context.ActivityDescription, formatMinutes(*minutes))
			return nil
		})
	},
}

var (
	sessionListDate string
	sessionListFrom string
	sessionListTo   string
)

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions for a date or range",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			var sessions []model.Session
			var err error
			if sessionListFrom != "" {
				var start, end time.Time
				start, end, err = resolveRange(sessionListFrom, sessionListTo)
				if err != nil {
					return err
				}
				sessions, err = service.SessionsBetween(sqldb, start, end)
			} else {
				var day time.Time
				day, err = parseDateOrNow(sessionListDate)
				if err != nil {
					return err
				}
				sessions, err = service.SessionsForDate(sqldb, day)
			}
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tSTART\tDURATION\tDOMAIN\tTYPE\tACTIVITY\tSTATUS")
			for i := range sessions {
				s := &sessions[i]
				duration := "open"
				status := "-"
				if m := s.DurationMinutes(); m != nil {
					duration = formatMinutes(*m)
				}
				if s.Outcome != nil {
					status = string(s.Outcome.CompletionStatus)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.StartTime.Format("2006-01-02 15:04"), duration,
					s.Context.Domain, s.Context.WorkType, s.Context.ActivityDescription, status)
			}
			return nil
		})
	},
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one session in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("session id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			session, err := service.GetSession(sqldb, id)
			if err != nil {
				return err
			}
			printSession(cmd, session)
			return nil
		})
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the most recently started open session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			session, err := service.LatestOpenSession(sqldb)
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No open session")
				return nil
			}
			elapsed := int(time.Since(session.StartTime).Seconds()) / 60
			fmt.Fprintf(cmd.OutOrStdout(), "Session %d: %s [%s/%s]\n",
				session.ID, session.Context.ActivityDescription,
				session.Context.Domain, session.Context.WorkType)
			fmt.Fprintf(cmd.OutOrStdout(), "Running since %s (%s elapsed)\n",
				session.StartTime.Format("15:04"), formatMinutes(elapsed))
			return nil
		})
	},
}

var setTypeWorkType string

var sessionSetTypeCmd = &cobra.Command{
	Use:   "set-type <id>",
	Short: "Correct the work type of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("session id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			session, err := service.UpdateSessionWorkType(sqldb, id, model.WorkType(setTypeWorkType))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %d is now %s\n", session.ID, session.Context.WorkType)
			return nil
		})
	},
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("session id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteSession(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted session %d\n", id)
			return nil
		})
	},
}

func printSession(cmd *cobra.Command, s *model.Session) {
	fmt.Fprintf(cmd.OutOrStdout(), "Session %d: %s\n", s.ID, s.Context.ActivityDescription)
	fmt.Fprintf(cmd.OutOrStdout(), "Domain: %s | Type: %s | Project: %s\n",
		s.Context.Domain, s.Context.WorkType, s.Context.ProjectName)
	fmt.Fprintf(cmd.OutOrStdout(), "Started: %s\n", s.StartTime.Format("2006-01-02 15:04"))
	if s.EndTime != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Ended: %s (%s)\n",
			s.EndTime.Format("2006-01-02 15:04"), formatMinutes(*s.DurationMinutes()))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Ended: still open")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Before: energy %d/10, stress %d/10, resistance %d/5\n",
		s.Before.Energy, s.Before.Stress, s.Before.Resistance)
	if s.After != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "After: energy %d/10, stress %d/10", s.After.Energy, s.After.Stress)
		if s.After.FeelTag != "" {
			fmt.Fprintf(cmd.OutOrStdout(), ", feeling %q", s.After.FeelTag)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if s.Outcome != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Outcome: %s | progress %d/5 | quality %d/5 | focus %d/5\n",
			s.Outcome.CompletionStatus, s.Outcome.ProgressRating,
			s.Outcome.QualityRating, s.Outcome.FocusQuality)
		if s.Outcome.MovesMainGoal {
			fmt.Fprintln(cmd.OutOrStdout(), "Moves main goal: yes")
		}
		if s.Outcome.EvidenceNote != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Evidence: %s\n", s.Outcome.EvidenceNote)
		}
	}
}

func addStartFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sessDomain, "domain", "", "Life domain (College, Work, Personal Project, ...)")
	cmd.Flags().StringVar(&sessProject, "project", "", "Project name")
	cmd.Flags().StringVar(&sessActivity, "activity", "", "What you are about to do")
	cmd.Flags().StringVar(&sessWorkType, "type", "", "Work type (Deep, Shallow, Maintenance, Recovery)")
	cmd.Flags().IntVar(&sessPlannedMin, "planned", 0, "Planned duration in minutes")
	cmd.Flags().IntVar(&sessEnergyBefore, "energy", 0, "Energy before 1-10")
	cmd.Flags().IntVar(&sessStressBefore, "stress", 0, "Stress before 1-10")
	cmd.Flags().IntVar(&sessResistanceBefore, "resistance", 0, "Resistance to starting 1-5")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("energy")
	_ = cmd.MarkFlagRequired("stress")
	_ = cmd.MarkFlagRequired("resistance")
}

func addEndFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sessStatus, "status", "", "Completion status (Completed, Good progress, ...)")
	cmd.Flags().IntVar(&sessProgress, "progress", 0, "Progress rating 1-5")
	cmd.Flags().IntVar(&sessQuality, "quality", 0, "Quality rating 1-5")
	cmd.Flags().IntVar(&sessFocus, "focus", 0, "Focus quality 1-5")
	cmd.Flags().BoolVar(&sessMovesGoal, "moves-goal", false, "Session moved the main goal forward")
	cmd.Flags().StringVar(&sessEvidence, "evidence", "", "Evidence note")
	cmd.Flags().IntVar(&sessEnergyAfter, "energy-after", 0, "Energy after 1-10")
	cmd.Flags().IntVar(&sessStressAfter, "stress-after", 0, "Stress after 1-10")
	cmd.Flags().StringVar(&sessFeelTag, "feel", "", "One-word feeling tag")
	_ = cmd.MarkFlagRequired("status")
	_ = cmd.MarkFlagRequired("progress")
	_ = cmd.MarkFlagRequired("quality")
	_ = cmd.MarkFlagRequired("focus")
	_ = cmd.MarkFlagRequired("energy-after")
	_ = cmd.MarkFlagRequired("stress-after")
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionStartCmd, sessionEndCmd, sessionLogCmd, sessionListCmd,
		sessionShowCmd, sessionStatusCmd, sessionSetTypeCmd, sessionDeleteCmd)

	addStartFlags(sessionStartCmd)

	addEndFlags(sessionEndCmd)
	sessionEndCmd.Flags().StringVar(&endSessionID, "id", "", "Session id (default: latest open session)")

	addStartFlags(sessionLogCmd)
	addEndFlags(sessionLogCmd)
	sessionLogCmd.Flags().StringVar(&sessStartAt, "start", "", "Start \"YYYY-MM-DD HH:MM\"")
	sessionLogCmd.Flags().StringVar(&sessEndAt, "end", "", "End \"YYYY-MM-DD HH:MM\"")
	_ = sessionLogCmd.MarkFlagRequired("start")
	_ = sessionLogCmd.MarkFlagRequired("end")

	sessionListCmd.Flags().StringVar(&sessionListDate, "date", "", "Date YYYY-MM-DD (default today)")
	sessionListCmd.Flags().StringVar(&sessionListFrom, "from", "", "Range start YYYY-MM-DD")
	sessionListCmd.Flags().StringVar(&sessionListTo, "to", "", "Range end YYYY-MM-DD (default today)")

	sessionSetTypeCmd.Flags().StringVar(&setTypeWorkType, "type", "", "New work type")
	_ = sessionSetTypeCmd.MarkFlagRequired("type")
}
