package icarus

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var (
	weekStartArg string
	weekJSON     bool
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the weekly rollup",
	RunE: func(cmd *cobra.Command, args []string) error {
		start := defaultWeekStart(time.Now())
		if weekStartArg != "" {
			parsed, err := parseDateArg("--start", weekStartArg)
			if err != nil {
				return err
			}
			start = parsed
		}
		return withDB(func(sqldb *sql.DB) error {
			stats, err := service.WeeklyStatsFor(sqldb, start)
			if err != nil {
				return err
			}
			if weekJSON {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			printWeeklyStats(cmd, stats)
			return nil
		})
	},
}

// defaultWeekStart is the Monday of the week containing the given day.
func defaultWeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func printWeeklyStats(cmd *cobra.Command, s model.WeeklyStats) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Week %s to %s", s.WeekStart, s.WeekEnd)))
	fmt.Fprintf(out, "Sessions: %d\n", s.TotalSessions)
	fmt.Fprintf(out, "Deep: %s | Shallow: %s | Maintenance: %s\n",
		formatMinutes(s.DeepMinutes), formatMinutes(s.ShallowMinutes), formatMinutes(s.MaintenanceMinutes))
	if len(s.MinutesByDomain) > 0 {
		domains := make([]string, 0, len(s.MinutesByDomain))
		for d := range s.MinutesByDomain {
			domains = append(domains, string(d))
		}
		sort.Strings(domains)
		fmt.Fprintln(out, labelStyle.Render("By domain:"))
		for _, d := range domains {
			fmt.Fprintf(out, "  %s: %s\n", d, formatMinutes(s.MinutesByDomain[model.Domain(d)]))
		}
	}
	fmt.Fprintf(out, "Focus: %s | Progress: %s | Quality: %s\n",
		formatOptionalFloat(s.AvgFocusQuality), formatOptionalFloat(s.AvgProgressRating),
		formatOptionalFloat(s.AvgQualityRating))
	if s.AvgSleepDurationMinutes != nil {
		fmt.Fprintf(out, "Avg sleep: %.0f min | Avg quality: %s | Avg morning energy: %s\n",
			*s.AvgSleepDurationMinutes, formatOptionalFloat(s.AvgSleepQuality),
			formatOptionalFloat(s.AvgEnergyMorning))
	} else {
		fmt.Fprintln(out, "Sleep: not recorded this week")
	}
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekStartArg, "start", "", "Week start YYYY-MM-DD (default: Monday of this week)")
	weekCmd.Flags().BoolVar(&weekJSON, "json", false, "Output as JSON")
}
