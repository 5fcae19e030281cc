package icarus

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var (
	calendarAsOf string
	calendarJSON bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Year-in-pixels data: daily score and sleep minutes for 52 weeks",
	RunE: func(cmd *cobra.Command, args []string) error {
		today := time.Now()
		if calendarAsOf != "" {
			parsed, err := parseDateArg("--as-of", calendarAsOf)
			if err != nil {
				return err
			}
			today = parsed
		}
		return withDB(func(sqldb *sql.DB) error {
			data, err := service.CalendarDataAsOf(sqldb, today)
			if err != nil {
				return err
			}
			if calendarJSON {
				return printJSON(cmd.OutOrStdout(), data)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tSCORE\tSLEEP_MIN")
			for i := range data.Performance {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%d\n",
					data.Performance[i].Date, data.Performance[i].Value, data.Sleep[i].Value)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().StringVar(&calendarAsOf, "as-of", "", "End date YYYY-MM-DD (default today)")
	calendarCmd.Flags().BoolVar(&calendarJSON, "json", false, "Output as JSON")
}
