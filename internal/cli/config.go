package cli

import (
	"fmt"
	"strings"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/config"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/errors"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.overleaf-sync/config.yaml.

Keys: ` + strings.Join(config.Keys(), ", ") + `.`,
}

func requireKnownKey(key string) error {
	if !config.IsKnownKey(key) {
		return errors.New(errors.EUsage, fmt.Sprintf("unknown config key %q (known: %s)", key, strings.Join(config.Keys(), ", ")))
	}
	return nil
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := requireKnownKey(key); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return errors.Wrap(errors.EConfig, fmt.Sprintf("setting config key %q", key), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireKnownKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every configuration value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, config.Get(key))
		}
		return nil
	},
}
