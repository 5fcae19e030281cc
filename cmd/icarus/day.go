package icarus

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var (
	dayDate string
	dayJSON bool
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the daily summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(dayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.DaySummaryFor(sqldb, day)
			if err != nil {
				return err
			}
			if dayJSON {
				return printJSON(cmd.OutOrStdout(), summary)
			}
			printDaySummary(cmd, summary)
			return nil
		})
	},
}

func printDaySummary(cmd *cobra.Command, s model.DaySummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Day "+s.Date))
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
	if s.SleepDurationMinutes != nil {
		fmt.Fprintf(out, "Sleep: %s (quality %d/5, morning energy %d/10)\n",
			formatMinutes(*s.SleepDurationMinutes), *s.SleepQuality, *s.EnergyMorning)
	} else {
		fmt.Fprintln(out, "Sleep: not recorded")
	}
	fmt.Fprintf(out, "Score: %s\n", renderScore(service.ScoreSummary(s)))
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
	dayCmd.Flags().BoolVar(&dayJSON, "json", false, "Output as JSON")
}
