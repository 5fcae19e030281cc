package icarus

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var intakeCmd = &cobra.Command{
	Use:   "intake",
	Short: "Track daily water and meals",
}

var intakeDate string

var intakeWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log one glass of water",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(intakeDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			intake, err := service.AddWater(sqldb, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water count for %s: %d\n", intake.Date, intake.WaterCount)
			return nil
		})
	},
}

var intakeMealCmd = &cobra.Command{
	Use:   "meal <breakfast|lunch|dinner>",
	Short: "Stamp a meal with the current time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(intakeDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			intake, err := service.LogMeal(sqldb, day, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for %s\n", args[0], intake.Date)
			return nil
		})
	},
}

var intakeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the day's intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(intakeDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			intake, err := service.GetIntake(sqldb, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", intake.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d\n", intake.WaterCount)
			fmt.Fprintf(cmd.OutOrStdout(), "Breakfast: %s\n", formatMealTime(intake.BreakfastTime))
			fmt.Fprintf(cmd.OutOrStdout(), "Lunch: %s\n", formatMealTime(intake.LunchTime))
			fmt.Fprintf(cmd.OutOrStdout(), "Dinner: %s\n", formatMealTime(intake.DinnerTime))
			return nil
		})
	},
}

func formatMealTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}

func init() {
	rootCmd.AddCommand(intakeCmd)
	intakeCmd.AddCommand(intakeWaterCmd, intakeMealCmd, intakeShowCmd)

	intakeCmd.PersistentFlags().StringVar(&intakeDate, "date", "", "Date YYYY-MM-DD (default today)")
}
