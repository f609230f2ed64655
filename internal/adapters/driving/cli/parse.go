package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	parseInput     inputFlags
	parseOut       string
	parseOpenMensa bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <source> <file>",
	Short: "Parse a menu publication",
	Long: `Parses a local menu publication and prints the combined JSON document.

Sources: studentenwerk (HTML page), fmi-bistro, ipp-bistro and
mediziner-mensa (text extracted with "pdftotext -layout").

Text publications do not state their year. The ISO week is taken from the
file name (KW44_2017, kw_44_2017) unless --year and --week are given.

With --out the weeks are published below the output directory instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runParse,
}

func init() {
	parseInput.register(parseCmd)
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "publish to this directory instead of printing")
	parseCmd.Flags().BoolVar(&parseOpenMensa, "openmensa", false, "also write an OpenMensa feed (with --out)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	raw, err := readDocument(args[0], args[1], parseInput)
	if err != nil {
		return err
	}

	app, err := newApp(Options{OutputDir: parseOut, OpenMensa: parseOpenMensa})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	result, err := app.Menu.Parse(ctx, raw)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if parseOut == "" {
		return writeJSON(cmd.OutOrStdout(), result.Combined())
	}

	if err := app.Menu.Publish(ctx, result); err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}
	cmd.Printf("Published %d weeks of %s to %s\n", len(result.Weeks), result.Location, app.OutputDir)
	return nil
}
