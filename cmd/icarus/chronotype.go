package icarus

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var (
	chronoFrom string
	chronoTo   string
	chronoJSON bool
)

var chronotypeCmd = &cobra.Command{
	Use:   "chronotype",
	Short: "Average focus quality per hour of day",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveRange(chronoFrom, chronoTo)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.ChronotypeBetween(sqldb, start, end)
			if err != nil {
				return err
			}
			if chronoJSON {
				return printJSON(cmd.OutOrStdout(), profile)
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Focus by hour"))
			for hour := 0; hour < 24; hour++ {
				value := profile[hour]
				bar := strings.Repeat("#", int(value*4))
				fmt.Fprintf(cmd.OutOrStdout(), "%02d:00  %.1f  %s\n", hour, value, bar)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(chronotypeCmd)
	chronotypeCmd.Flags().StringVar(&chronoFrom, "from", "", "Range start YYYY-MM-DD")
	chronotypeCmd.Flags().StringVar(&chronoTo, "to", "", "Range end YYYY-MM-DD (default today)")
	chronotypeCmd.Flags().BoolVar(&chronoJSON, "json", false, "Output as JSON")
}
