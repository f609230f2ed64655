package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eat-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

var (
	menuOut  string
	menuJSON bool

	// now is replaced in tests.
	now = time.Now
)

var menuCmd = &cobra.Command{
	Use:   "menu <location> [date]",
	Short: "Show the published menu of a day",
	Long: `Reads the published menus and shows what a canteen serves on a day.
The date is given as YYYY-MM-DD and defaults to today.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVarP(&menuOut, "out", "o", "", "published menu directory (default from config)")
	menuCmd.Flags().BoolVar(&menuJSON, "json", false, "output the dishes as JSON")
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	location := args[0]
	date := domain.CivilDate(now())
	if len(args) > 1 {
		d, err := time.Parse(domain.DateLayout, args[1])
		if err != nil {
			return fmt.Errorf("date %q: %w", args[1], domain.ErrInvalidDate)
		}
		date = d
	}

	app, err := newApp(Options{OutputDir: menuOut})
	if err != nil {
		return err
	}

	day, err := app.Menu.Menu(cmd.Context(), location, date)
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Printf("No menu for %s on %s.\n", location, date.Format(domain.DateLayout))
		return nil
	}
	if err != nil {
		return err
	}

	if menuJSON {
		return writeJSON(cmd.OutOrStdout(), day.Dishes())
	}
	return render.NewRenderer(cmd.OutOrStdout()).Day(location, day)
}
