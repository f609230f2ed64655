// Package cli provides the eat command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/eat-cli/internal/core/ports/driving"
	"github.com/custodia-labs/eat-cli/internal/logger"
)

// Options carries per-invocation settings to the bootstrap function.
type Options struct {
	// ConfigDir is the --config flag. Empty means the default directory.
	ConfigDir string

	// OutputDir overrides the configured output root when set.
	OutputDir string

	// OpenMensa enables the OpenMensa feed next to the published JSON.
	OpenMensa bool
}

// App bundles what commands need.
type App struct {
	Menu      driving.MenuService
	Config    driven.ConfigStore
	OutputDir string
}

// Bootstrap builds the application for one command invocation.
type Bootstrap func(opts Options) (*App, error)

var (
	version   = "dev"
	verbose   bool
	configDir string
	bootstrap Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "eat",
	Short: "Normalise weekly cafeteria menus",
	Long: `eat reads the weekly menu publications of the Munich university canteens
(Studentenwerk HTML pages, FMI Bistro, IPP Bistro and Mediziner Mensa text
layouts) and publishes them as one weekly JSON schema.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.eat)")
}

// SetVersion sets the version reported by "eat version".
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the function wiring the application.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newApp builds the application with the global flags applied.
func newApp(opts Options) (*App, error) {
	if bootstrap == nil {
		return nil, errors.New("application not configured")
	}
	opts.ConfigDir = configDir
	app, err := bootstrap(opts)
	if err != nil {
		return nil, err
	}
	if app.Menu == nil {
		return nil, errors.New("menu service not configured")
	}
	return app, nil
}
