package icarus

import (
	"database/sql"
	"fmt"

	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inverted sessions: %d\n", report.InvertedSessions)
			fmt.Fprintf(cmd.OutOrStdout(), "Finished without outcome: %d\n", report.FinishedMissingOutcome)
			fmt.Fprintf(cmd.OutOrStdout(), "Open with outcome: %d\n", report.OpenWithOutcome)
			fmt.Fprintf(cmd.OutOrStdout(), "Open sessions: %d\n", report.OpenSessions)
			fmt.Fprintf(cmd.OutOrStdout(), "Inverted sleep nights: %d\n", report.InvertedSleepNights)
			if report.HasIssues() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
