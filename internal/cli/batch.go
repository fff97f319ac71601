package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
)

// batchRow is the JSON shape of one batch result line.
type batchRow struct {
	Index   int          `json:"index"`
	Request trip.Request `json:"request"`
	Report  *trip.Report `json:"report,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// newBatchCmd creates the "batch" subcommand: calculate many trips from a
// YAML file with bounded concurrency.
func newBatchCmd() *cobra.Command {
	var (
		file        string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate emissions for many trips from a YAML file",
		Long: `Calculate emissions for every trip listed in a YAML file:

  trips:
    - origin: "Toronto, ON"
      destination: "Ottawa, ON"
      mode: bus
    - distance_km: 120
      mode: truck

Rows that fail (for example an unknown route) are reported individually
and do not abort the batch.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeBatch(cmd, file, concurrency)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of trips to calculate")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "max concurrent calculations (0 = number of CPUs)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func executeBatch(cmd *cobra.Command, file string, concurrency int) error {
	reqs, err := trip.LoadRequests(file)
	if err != nil {
		return err
	}

	calculator, err := newCalculator()
	if err != nil {
		return err
	}

	results, err := calculator.CalculateAll(cmd.Context(), reqs, concurrency)
	if err != nil {
		return err
	}

	rows := make([]batchRow, 0, len(results))
	failures := 0
	for _, res := range results {
		row := batchRow{Index: res.Index, Request: res.Request, Report: res.Report}
		if res.Err != nil {
			row.Error = res.Err.Error()
			failures++
		}
		rows = append(rows, row)
	}

	switch outputFormat(cmd) {
	case "json":
		return writeJSON(cmd.OutOrStdout(), rows)
	case "ndjson":
		return writeNDJSON(cmd.OutOrStdout(), rows)
	default:
		out := cmd.OutOrStdout()
		for _, row := range rows {
			if row.Error != "" {
				fmt.Fprintf(out, "%3d  ERROR: %s\n", row.Index, row.Error)
				continue
			}
			label := row.Report.Origin + " -> " + row.Report.Destination
			if row.Report.Source == trip.DistanceSourceManual {
				label = fmt.Sprintf("%v km", row.Report.DistanceKm)
			}
			fmt.Fprintf(out, "%3d  %-46s %-8s %10.2f kg\n",
				row.Index, label, row.Report.Mode, row.Report.EmissionKg)
		}
		if failures > 0 {
			fmt.Fprintf(out, "\n%d of %d trips failed\n", failures, len(rows))
		}
		return nil
	}
}
