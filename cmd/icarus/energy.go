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
	energyFrom string
	energyTo   string
	energyJSON bool
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Average energy delta per domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := resolveRange(energyFrom, energyTo)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			ledger, err := service.EnergyLedgerBetween(sqldb, start, end)
			if err != nil {
				return err
			}
			if energyJSON {
				return printJSON(cmd.OutOrStdout(), ledger)
			}
			if len(ledger) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No finished sessions in range")
				return nil
			}
			domains := make([]string, 0, len(ledger))
			for d := range ledger {
				domains = append(domains, string(d))
			}
			sort.Strings(domains)
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render("Energy ledger"))
			for _, d := range domains {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %+.1f\n", d, ledger[model.Domain(d)])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(energyCmd)
	energyCmd.Flags().StringVar(&energyFrom, "from", "", "Range start YYYY-MM-DD")
	energyCmd.Flags().StringVar(&energyTo, "to", "", "Range end YYYY-MM-DD (default today)")
	energyCmd.Flags().BoolVar(&energyJSON, "json", false, "Output as JSON")
}
