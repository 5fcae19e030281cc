package icarus

import (
	"database/sql"
	"fmt"

	"github.com/fikryfauzn/icarus/internal/app"
	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var (
	classifyLearn   string
	classifyWeights string
	classifyJSON    bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <description>",
	Short: "Suggest a work type for an activity description",
	Long: "classify suggests Deep, Shallow, or Maintenance for an activity description " +
		"using keyword weights blended with similar past sessions. Pass --learn with the " +
		"correct type to adjust the weights when the suggestion is wrong.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weightsPath := classifyWeights
		if weightsPath == "" {
			path, err := app.DefaultWeightsPath()
			if err != nil {
				return err
			}
			weightsPath = path
		}
		classifier, err := service.LoadClassifier(weightsPath)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			history, err := service.AllSessions(sqldb)
			if err != nil {
				return err
			}
			suggestion := classifier.Suggest(args[0], history)

			if classifyLearn != "" {
				corrected := model.WorkType(classifyLearn)
				classifier.LearnFromCorrection(suggestion, corrected, args[0])
				if err := app.EnsureDir(weightsPath); err != nil {
					return err
				}
				if err := classifier.SaveWeights(weightsPath); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Learned: %q is %s (was %s)\n",
					args[0], corrected, suggestion.WorkType)
				return nil
			}

			if classifyJSON {
				return printJSON(cmd.OutOrStdout(), suggestion)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Suggestion: %s (%s confidence)\n",
				suggestion.WorkType, suggestion.Confidence)
			for _, reason := range suggestion.Reasons {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", reason)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().StringVar(&classifyLearn, "learn", "", "Correct work type to learn from")
	classifyCmd.Flags().StringVar(&classifyWeights, "weights", "", "Path to classifier weights file")
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Output as JSON")
}
