package cmd

import (
	"fmt"

	"github.com/Luis23345432/Ingesta-Hotel2/actions"
	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/spf13/cobra"
)

var configFileTxt = fmt.Sprintf("~/%v/%v", constants.ConfigDir, constants.ConfigFileName)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure default settings",
	Long: fmt.Sprintf(`Configure default settings, where:

- Defaults are stored in config file %q
- Environment variables %v_<KEY> take priority over the file`, configFileTxt, constants.EnvVarPrefix),
}

var defaultAddCfg = actions.DefaultAddConfig{}

var defaultAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or set a default value",
	Long:  fmt.Sprintf("Add a default value to config file %q", configFileTxt),
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newMainConfig()
		if err != nil {
			return err
		}
		defaultAddCfg.ConfigFile = f
		return actions.RunDefaultAdd(&defaultAddCfg, stdout)
	},
}

var defaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all settings and where their values come from",
	Long: fmt.Sprintf(`List every setting with its effective value and its source:
env, file (%q) or default`, configFileTxt),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newMainConfig()
		if err != nil {
			return err
		}
		return actions.RunDefaultList(&actions.DefaultListConfig{ConfigFile: f}, stdout)
	},
}

var defaultRemoveCfg = actions.DefaultRemoveConfig{}

var defaultRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm", "del", "delete"},
	Short:   "Remove a default value",
	Long:    fmt.Sprintf("Remove a default value from config file %q", configFileTxt),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newMainConfig()
		if err != nil {
			return err
		}
		defaultRemoveCfg.ConfigFile = f
		return actions.RunDefaultRemove(&defaultRemoveCfg, stdout)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(defaultAddCmd, defaultListCmd, defaultRemoveCmd)
	defaultAddCmd.Flags().SortFlags = false
	switches.addFlag(defaultAddCmd, &defaultAddCfg.Key, "key", "", true, "")
	switches.addFlag(defaultAddCmd, &defaultAddCfg.Value, "value", "", true, "")
	switches.addFlag(defaultAddCmd, &defaultAddCfg.Force, "force", "", false, "")
	switches.addFlag(defaultRemoveCmd, &defaultRemoveCfg.Key, "key", "", true, "")
}
