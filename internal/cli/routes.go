package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
)

// newRoutesCmd creates the "routes" subcommand, listing every route in
// the table with its distance.
func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the known intercity routes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			calculator, err := newCalculator()
			if err != nil {
				return err
			}
			rr := calculator.Table().Routes()

			switch outputFormat(cmd) {
			case "json":
				return writeJSON(cmd.OutOrStdout(), rr)
			case "ndjson":
				return writeNDJSON(cmd.OutOrStdout(), rr)
			default:
				for _, r := range rr {
					fmt.Fprintf(cmd.OutOrStdout(), "%-22s <-> %-22s %8s km\n",
						r.Origin, r.Destination, emissions.FormatFloat(r.DistanceKm, 0))
				}
				return nil
			}
		},
	}
}
