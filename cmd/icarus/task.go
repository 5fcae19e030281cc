package icarus

import (
	"database/sql"
	"fmt"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage planned activities",
}

var (
	taskDomain   string
	taskProject  string
	taskActivity string
	taskWorkType string
)

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a planned activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			task, err := service.CreateTask(sqldb, service.CreateTaskInput{
				Domain:              model.Domain(taskDomain),
				ProjectName:         taskProject,
				ActivityDescription: taskActivity,
				WorkType:            model.WorkType(taskWorkType),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s [%s/%s]\n",
				task.ID, task.ActivityDescription, task.Domain, task.WorkType)
			return nil
		})
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List planned activities",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			tasks, err := service.ListTasks(sqldb)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDOMAIN\tTYPE\tPROJECT\tACTIVITY")
			for _, t := range tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n",
					t.ID, t.Domain, t.WorkType, t.ProjectName, t.ActivityDescription)
			}
			return nil
		})
	},
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a planned activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("task id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteTask(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskDeleteCmd)

	taskAddCmd.Flags().StringVar(&taskDomain, "domain", "", "Life domain")
	taskAddCmd.Flags().StringVar(&taskProject, "project", "", "Project name")
	taskAddCmd.Flags().StringVar(&taskActivity, "activity", "", "What the task is")
	taskAddCmd.Flags().StringVar(&taskWorkType, "type", "", "Work type")
	_ = taskAddCmd.MarkFlagRequired("activity")
}
