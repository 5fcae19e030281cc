package icarus

import (
	"database/sql"
	"fmt"

	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var (
	patternsFrom string
	patternsTo   string
	patternsJSON bool
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Bucket finished sessions into outcome patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveRange(patternsFrom, patternsTo)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			counts, err := service.SessionPatterns(sqldb, start, end)
			if err != nil {
				return err
			}
			if patternsJSON {
				return printJSON(cmd.OutOrStdout(), counts)
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Session patterns"))
			order := []string{
				service.PatternCleanWin, service.PatternOverclocked,
				service.PatternMaintenance, service.PatternGrind, service.PatternDrift,
			}
			for _, name := range order {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", name, counts[name])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.Flags().StringVar(&patternsFrom, "from", "", "Range start YYYY-MM-DD")
	patternsCmd.Flags().StringVar(&patternsTo, "to", "", "Range end YYYY-MM-DD (default today)")
	patternsCmd.Flags().BoolVar(&patternsJSON, "json", false, "Output as JSON")
}
