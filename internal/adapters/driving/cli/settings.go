package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the configuration stored in config.toml.

Keys:
  output.dir                output root for published menus
  output.openmensa          also write OpenMensa feeds (true/false)
  fetch.base_url            Studentenwerk schedule base URL
  fetch.rate                requests per second
  fetch.timeout_seconds     HTTP timeout
  fetch.user_agent          HTTP User-Agent
  fetch.pdftotext           pdftotext binary
  fetch.urls.<source>       PDF URL template with {year} and {week}`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Stores a setting. Values are stored as booleans, integers or floats when
they parse as such, otherwise as strings.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func settingsApp() (*App, error) {
	app, err := newApp(Options{})
	if err != nil {
		return nil, err
	}
	if app.Config == nil {
		return nil, errors.New("config store not configured")
	}
	return app, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	app, err := settingsApp()
	if err != nil {
		return err
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Config file: %s\n", app.Config.Path())
	cmd.Printf("  Output dir:  %s\n", app.OutputDir)
	cmd.Println()

	keys := app.Config.Keys()
	if len(keys) == 0 {
		cmd.Println("No settings configured, defaults apply.")
		return nil
	}
	for _, key := range keys {
		v, _ := app.Config.Get(key)
		cmd.Printf("  %s = %v\n", key, v)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	app, err := settingsApp()
	if err != nil {
		return err
	}
	v, ok := app.Config.Get(args[0])
	if !ok {
		return fmt.Errorf("setting %q is not configured", args[0])
	}
	cmd.Println(v)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key := strings.TrimSpace(args[0])
	if key == "" {
		return errors.New("key must not be empty")
	}

	app, err := settingsApp()
	if err != nil {
		return err
	}

	value := parseSettingValue(args[1])
	if err := app.Config.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	cmd.Printf("Set %s = %v\n", key, value)
	return nil
}

// parseSettingValue types a command line value for the config file.
func parseSettingValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
