package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
)

// creditEstimate is the JSON shape of a credits command result.
type creditEstimate struct {
	EmissionKg float64               `json:"emission_kg"`
	Credits    float64               `json:"credits"`
	Price      emissions.CreditPrice `json:"price"`
}

// newCreditsCmd creates the "credits" subcommand: carbon credits and their
// estimated purchase price for a given emission.
func newCreditsCmd() *cobra.Command {
	var emissionKg float64

	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Estimate carbon credits and offset price for an emission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCredits(cmd, emissionKg)
		},
	}

	cmd.Flags().Float64Var(&emissionKg, "emission", 0, "emission in kg CO2")
	_ = cmd.MarkFlagRequired("emission")

	return cmd
}

func executeCredits(cmd *cobra.Command, emissionKg float64) error {
	calculator, err := newCalculator()
	if err != nil {
		return err
	}
	engine := calculator.Engine()

	credits, err := engine.CarbonCredits(emissionKg)
	if err != nil {
		return err
	}
	price, err := engine.CreditPrice(credits)
	if err != nil {
		return err
	}

	estimate := creditEstimate{
		EmissionKg: emissionKg,
		Credits:    credits,
		Price:      price,
	}

	switch outputFormat(cmd) {
	case "json":
		return writeJSON(cmd.OutOrStdout(), estimate)
	case "ndjson":
		return writeJSONLine(cmd.OutOrStdout(), estimate)
	default:
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Emission:  %s\n", emissions.FormatKg(emissionKg))
		fmt.Fprintf(out, "Credits:   %s\n", emissions.FormatCredits(credits))
		fmt.Fprintf(out, "Price:     %s - %s (avg %s)\n",
			emissions.FormatUSD(price.MinUSD),
			emissions.FormatUSD(price.MaxUSD),
			emissions.FormatUSD(price.AverageUSD))
		return nil
	}
}
