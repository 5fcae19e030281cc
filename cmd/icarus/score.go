package icarus

import (
	"database/sql"
	"fmt"

	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Daily and range performance scores",
}

var scoreDayDate string

var scoreDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Score one day 0-100",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(scoreDayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			score, err := service.DailyScore(sqldb, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Score for %s: %s\n", day.Format("2006-01-02"), renderScore(score))
			return nil
		})
	},
}

var (
	scoreRangeFrom string
	scoreRangeTo   string
)

var scoreRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Average score over a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveRange(scoreRangeFrom, scoreRangeTo)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			score, err := service.AggregateScore(sqldb, start, end)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average score %s to %s: %s\n",
				start.Format("2006-01-02"), end.Format("2006-01-02"), renderScore(score))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.AddCommand(scoreDayCmd, scoreRangeCmd)

	scoreDayCmd.Flags().StringVar(&scoreDayDate, "date", "", "Date YYYY-MM-DD (default today)")
	scoreRangeCmd.Flags().StringVar(&scoreRangeFrom, "from", "", "Range start YYYY-MM-DD")
	scoreRangeCmd.Flags().StringVar(&scoreRangeTo, "to", "", "Range end YYYY-MM-DD (default today)")
}
