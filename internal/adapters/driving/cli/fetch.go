package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eat-cli/internal/core/services"
)

var (
	fetchOut       string
	fetchOpenMensa bool
	fetchEvery     time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <location>...",
	Short: "Download and publish current menus",
	Long: `Downloads the current publication of each catalogued location, parses it
and publishes the weeks below the output directory.

Studentenwerk canteens are fetched from their schedule page. The bistros
publish weekly PDFs; their URL templates are configured under
fetch.urls.<source> and the text is extracted with pdftotext.

With --every the locations are refreshed on an interval until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "output directory (default from config)")
	fetchCmd.Flags().BoolVar(&fetchOpenMensa, "openmensa", false, "also write an OpenMensa feed")
	fetchCmd.Flags().DurationVar(&fetchEvery, "every", 0, "refresh interval, e.g. 6h (0 = once)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	app, err := newApp(Options{OutputDir: fetchOut, OpenMensa: fetchOpenMensa})
	if err != nil {
		return err
	}

	refresher := services.NewRefresher(app.Menu, args, fetchEvery)
	refresher.OnResult(func(res services.RefreshResult) {
		if res.Err != nil {
			cmd.PrintErrf("Failed %s: %v\n", res.Location, res.Err)
			return
		}
		cmd.Printf("Published %d weeks of %s to %s\n", res.Weeks, res.Location, app.OutputDir)
	})

	if fetchEvery > 0 {
		cmd.Printf("Refreshing %d locations every %s (Ctrl+C to stop)\n", len(args), fetchEvery)
		err := refresher.Start(cmd.Context())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	for _, res := range refresher.RunOnce(cmd.Context()) {
		if res.Err != nil {
			return fmt.Errorf("%s: %w", res.Location, res.Err)
		}
	}
	return nil
}
