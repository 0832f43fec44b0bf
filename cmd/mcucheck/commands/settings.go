package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mcucheck/internal/config"
	"github.com/thoreinstein/mcucheck/internal/errors"
)

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the effective settings",
	Long: `Show the settings mcucheck would use, after merging mcucheck.yaml,
MCUCHECK_ environment variables and defaults.

The first line names the settings file in use, if any.`,
	Example: `  # List all settings
  mcucheck settings

  # Get a single value
  mcucheck settings get output

See Also: mcucheck init --write-settings`,
	Args: cobra.NoArgs,
	RunE: runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Print one setting",
	Long:      `Print the effective value of one setting: ` + strings.Join(config.Keys(), ", ") + `.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE:      runSettingsGet,
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	source := settings.ConfigFileUsed()
	if source == "" {
		source = "defaults"
	}

	data, err := yaml.Marshal(current)
	if err != nil {
		return errors.Wrap(err, "encoding settings")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return errors.Wrap(err, "writing settings")
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	if !slices.Contains(config.Keys(), key) {
		return errors.NewUserError(
			errors.Newf("unknown setting %q", args[0]),
			"valid settings: "+strings.Join(config.Keys(), ", "))
	}

	fmt.Fprintln(cmd.OutOrStdout(), settings.Get(key))
	return nil
}
