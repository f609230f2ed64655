package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/eat-cli/internal/adapters/driving/render"
)

var showInput inputFlags

var showCmd = &cobra.Command{
	Use:   "show <source> <file>",
	Short: "Show a menu publication as tables",
	Long:  `Parses a local menu publication and renders each week in the terminal.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runShow,
}

func init() {
	showInput.register(showCmd)
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	raw, err := readDocument(args[0], args[1], showInput)
	if err != nil {
		return err
	}

	app, err := newApp(Options{})
	if err != nil {
		return err
	}

	result, err := app.Menu.Parse(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	return render.NewRenderer(cmd.OutOrStdout()).Weeks(result.Location, result.Weeks)
}
