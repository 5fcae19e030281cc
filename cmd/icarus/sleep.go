package icarus

import (
	"database/sql"
	"fmt"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Log and review sleep",
}

var (
	sleepStart      string
	sleepEnd        string
	sleepQuality    int
	sleepAwakenings int
	sleepEnergy     int
	sleepMood       int
	sleepScreen     bool
	sleepCaffeine   bool
	sleepConsistent bool
)

var sleepLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a night of sleep (keyed by wake-up date)",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateTimeArg("--start", sleepStart)
		if err != nil {
			return err
		}
		end, err := parseDateTimeArg("--end", sleepEnd)
		if err != nil {
			return err
		}
		in := service.SleepInput{
			Date:            end,
			SleepStart:      start,
			SleepEnd:        end,
			SleepQuality:    sleepQuality,
			AwakeningsCount: sleepAwakenings,
			EnergyMorning:   sleepEnergy,
			MoodMorning:     sleepMood,

			ScreenLastHour:    optionalBoolFlag(cmd.Flags().Changed("screen"), sleepScreen),
			CaffeineAfter17:   optionalBoolFlag(cmd.Flags().Changed("caffeine"), sleepCaffeine),
			BedtimeConsistent: optionalBoolFlag(cmd.Flags().Changed("consistent"), sleepConsistent),
		}
		return withDB(func(sqldb *sql.DB) error {
			night, err := service.LogSleep(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged sleep for %s: %s (quality %d/5)\n",
				night.Date, formatMinutes(night.DurationMinutes()), night.SleepQuality)
			return nil
		})
	},
}

var sleepShowDate string

var sleepShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the sleep record for one date",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrNow(sleepShowDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			night, err := service.GetSleepByDate(sqldb, day)
			if err != nil {
				return err
			}
			if night == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No sleep record for %s\n", day.Format("2006-01-02"))
				return nil
			}
			printSleepNight(cmd, night)
			return nil
		})
	},
}

var sleepRecentDays int

var sleepRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent sleep records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			nights, err := service.RecentSleep(sqldb, sleepRecentDays)
			if err != nil {
				return err
			}
			if len(nights) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sleep records")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tDURATION\tQUALITY\tAWAKENINGS\tENERGY\tMOOD")
			for i := range nights {
				n := &nights[i]
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d/5\t%d\t%d/10\t%d/10\n",
					n.Date, formatMinutes(n.DurationMinutes()), n.SleepQuality,
					n.AwakeningsCount, n.EnergyMorning, n.MoodMorning)
			}
			return nil
		})
	},
}

func printSleepNight(cmd *cobra.Command, night *model.SleepNight) {
	fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", night.Date)
	fmt.Fprintf(cmd.OutOrStdout(), "Slept: %s to %s (%s)\n",
		night.SleepStart.Format("2006-01-02 15:04"), night.SleepEnd.Format("2006-01-02 15:04"),
		formatMinutes(night.DurationMinutes()))
	fmt.Fprintf(cmd.OutOrStdout(), "Quality: %d/5 | Awakenings: %d\n", night.SleepQuality, night.AwakeningsCount)
	fmt.Fprintf(cmd.OutOrStdout(), "Morning energy: %d/10 | Morning mood: %d/10\n", night.EnergyMorning, night.MoodMorning)
	if night.ScreenLastHour != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Screen in last hour: %t\n", *night.ScreenLastHour)
	}
	if night.CaffeineAfter17 != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Caffeine after 17:00: %t\n", *night.CaffeineAfter17)
	}
	if night.BedtimeConsistent != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Consistent bedtime: %t\n", *night.BedtimeConsistent)
	}
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	sleepCmd.AddCommand(sleepLogCmd, sleepShowCmd, sleepRecentCmd)

	sleepLogCmd.Flags().StringVar(&sleepStart, "start", "", "Fell asleep at \"YYYY-MM-DD HH:MM\"")
	sleepLogCmd.Flags().StringVar(&sleepEnd, "end", "", "Woke up at \"YYYY-MM-DD HH:MM\"")
	sleepLogCmd.Flags().IntVar(&sleepQuality, "quality", 0, "Sleep quality 1-5")
	sleepLogCmd.Flags().IntVar(&sleepAwakenings, "awakenings", 0, "Number of awakenings")
	sleepLogCmd.Flags().IntVar(&sleepEnergy, "energy", 0, "Morning energy 1-10")
	sleepLogCmd.Flags().IntVar(&sleepMood, "mood", 0, "Morning mood 1-10")
	sleepLogCmd.Flags().BoolVar(&sleepScreen, "screen", false, "Screen used in the last hour before bed")
	sleepLogCmd.Flags().BoolVar(&sleepCaffeine, "caffeine", false, "Caffeine consumed after 17:00")
	sleepLogCmd.Flags().BoolVar(&sleepConsistent, "consistent", false, "Bedtime consistent with recent nights")
	_ = sleepLogCmd.MarkFlagRequired("start")
	_ = sleepLogCmd.MarkFlagRequired("end")
	_ = sleepLogCmd.MarkFlagRequired("quality")
	_ = sleepLogCmd.MarkFlagRequired("energy")
	_ = sleepLogCmd.MarkFlagRequired("mood")

	sleepShowCmd.Flags().StringVar(&sleepShowDate, "date", "", "Date YYYY-MM-DD (default today)")
	sleepRecentCmd.Flags().IntVar(&sleepRecentDays, "days", 7, "How many days back to list")
}
