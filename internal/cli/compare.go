package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// CompareParams holds the parameters for the compare command execution.
// Exported for testing.
type CompareParams struct {
	From       string
	To         string
	DistanceKm float64
}

// newCompareCmd creates the "compare" subcommand: every transport mode's
// emission for one distance.
func newCompareCmd() *cobra.Command {
	var params CompareParams

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every transport mode's emission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCompare(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.From, "from", "", "origin city")
	cmd.Flags().StringVar(&params.To, "to", "", "destination city")
	cmd.Flags().Float64Var(&params.DistanceKm, "distance", 0, "distance in km (bypasses the route table)")

	return cmd
}

// ValidateCompareFlags validates that the compare command flags are
// consistent. Exported for testing.
func ValidateCompareFlags(params *CompareParams) error {
	if params.DistanceKm < 0 {
		return fmt.Errorf("--distance must be positive, got %v", params.DistanceKm)
	}
	if params.DistanceKm == 0 && (params.From == "" || params.To == "") {
		return errors.New("provide --from and --to, or a --distance")
	}
	return nil
}

func executeCompare(cmd *cobra.Command, params CompareParams) error {
	if err := ValidateCompareFlags(&params); err != nil {
		return err
	}

	calculator, err := newCalculator()
	if err != nil {
		return err
	}

	distanceKm := params.DistanceKm
	if distanceKm == 0 {
		distanceKm, err = calculator.Table().FindDistance(params.From, params.To)
		if err != nil {
			return err
		}
	}

	rows, err := calculator.Engine().Compare(distanceKm)
	if err != nil {
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return writeJSON(cmd.OutOrStdout(), rows)
	case "ndjson":
		return writeNDJSON(cmd.OutOrStdout(), rows)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Emissions over %v km:\n\n", distanceKm)
		renderComparison(cmd.OutOrStdout(), rows)
		return nil
	}
}
