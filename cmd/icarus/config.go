package icarus

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/fikryfauzn/icarus/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage icarus local configuration",
}

var (
	cfgDefaultDomain   string
	cfgDefaultWorkType string
	cfgDefaultProject  string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("default-domain") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultDomain, cfgDefaultDomain); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("default-work-type") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultWorkType, cfgDefaultWorkType); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("default-project") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultProject, cfgDefaultProject); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			value, ok, err := service.GetConfig(sqldb, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("config key %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			values, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, values[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd, configListCmd)

	configSetCmd.Flags().StringVar(&cfgDefaultDomain, "default-domain", "", "Default session domain")
	configSetCmd.Flags().StringVar(&cfgDefaultWorkType, "default-work-type", "", "Default session work type")
	configSetCmd.Flags().StringVar(&cfgDefaultProject, "default-project", "", "Default project name")
}
