package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/routes"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/tui"
)

// TripParams holds the parameters for the trip command execution.
// Exported for testing.
type TripParams struct {
	From        string
	To          string
	Mode        string
	DistanceKm  float64
	Interactive bool
}

// newTripCmd creates the "trip" subcommand, the one-shot (or interactive)
// trip emission calculation.
func newTripCmd() *cobra.Command {
	var params TripParams

	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Calculate the CO2 emission of a trip",
		Long: `Calculate the CO2 emission of a trip between two cities, or over a
manually entered distance, for a chosen transport mode. The result includes
a cross-mode comparison, savings against the car baseline, and a
carbon-credit cost estimate.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeTrip(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.From, "from", "", "origin city, e.g. \"Toronto, ON\"")
	cmd.Flags().StringVar(&params.To, "to", "", "destination city")
	cmd.Flags().StringVar(&params.Mode, "mode", "car", "transport mode: bicycle, car, bus or truck")
	cmd.Flags().Float64Var(&params.DistanceKm, "distance", 0, "manual distance in km (bypasses the route table)")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "launch the interactive calculator")

	return cmd
}

// ValidateTripFlags validates that the trip command flags are consistent.
// Exported for testing.
func ValidateTripFlags(params *TripParams) error {
	if params.Interactive {
		return nil
	}
	if params.DistanceKm < 0 {
		return fmt.Errorf("--distance must be positive, got %v", params.DistanceKm)
	}
	if params.DistanceKm == 0 && (params.From == "" || params.To == "") {
		return errors.New("provide --from and --to, or a manual --distance")
	}
	return nil
}

func executeTrip(cmd *cobra.Command, params TripParams) error {
	if err := ValidateTripFlags(&params); err != nil {
		return err
	}

	calculator, err := newCalculator()
	if err != nil {
		return err
	}

	if params.Interactive {
		if !isTerminal(os.Stdout) {
			return errors.New("--interactive requires a terminal")
		}
		return tui.Run(cmd.Context(), calculator)
	}

	mode, err := emissions.ParseMode(params.Mode)
	if err != nil {
		return err
	}

	report, err := calculator.Calculate(cmd.Context(), trip.Request{
		Origin:      params.From,
		Destination: params.To,
		DistanceKm:  params.DistanceKm,
		Mode:        mode,
	})
	if err != nil {
		if errors.Is(err, routes.ErrRouteNotFound) {
			return fmt.Errorf("%w (use --distance to enter the distance manually, or `co2calc cities` to list known cities)", err)
		}
		return err
	}

	switch outputFormat(cmd) {
	case "json":
		return writeJSON(cmd.OutOrStdout(), report)
	case "ndjson":
		return writeJSONLine(cmd.OutOrStdout(), report)
	default:
		renderReport(cmd.OutOrStdout(), report)
		return nil
	}
}
