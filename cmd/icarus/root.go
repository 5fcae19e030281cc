package icarus

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "icarus",
	Short: "icarus tracks work sessions, sleep, and daily performance from your terminal",
	Long:  "icarus is a local-first personal performance CLI with work sessions, sleep logging, daily scoring, pattern analysis, and a learning work-type classifier.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
