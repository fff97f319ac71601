package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCitiesCmd creates the "cities" subcommand, listing every city known
// to the route table.
func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities known to the route table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			calculator, err := newCalculator()
			if err != nil {
				return err
			}
			cities := calculator.Table().Cities()

			switch outputFormat(cmd) {
			case "json":
				return writeJSON(cmd.OutOrStdout(), cities)
			case "ndjson":
				return writeNDJSON(cmd.OutOrStdout(), cities)
			default:
				for _, city := range cities {
					fmt.Fprintln(cmd.OutOrStdout(), city)
				}
				return nil
			}
		},
	}
}
