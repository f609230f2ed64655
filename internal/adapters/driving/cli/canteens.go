package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/eat-cli/internal/core/domain"
)

var (
	canteensSource string
	canteensJSON   bool
)

var canteensCmd = &cobra.Command{
	Use:   "canteens",
	Short: "List known canteens",
	Args:  cobra.NoArgs,
	RunE:  runCanteens,
}

func init() {
	canteensCmd.Flags().StringVar(&canteensSource, "source", "", "only list canteens of this source")
	canteensCmd.Flags().BoolVar(&canteensJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(canteensCmd)
}

type canteenJSON struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

func runCanteens(cmd *cobra.Command, _ []string) error {
	var list []domain.Canteen
	for _, c := range domain.Canteens() {
		if canteensSource == "" || c.Source == canteensSource {
			list = append(list, c)
		}
	}

	if canteensJSON {
		out := make([]canteenJSON, len(list))
		for i, c := range list {
			out[i] = canteenJSON{ID: c.ID, Name: c.Name, Source: c.Source}
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	if len(list) == 0 {
		cmd.Println("No canteens found.")
		return nil
	}
	for _, c := range list {
		cmd.Printf("  %-24s %-16s %s\n", c.ID, c.Source, c.Name)
	}
	return nil
}
