// Package cli implements the co2calc command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/config"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the co2calc CLI.
// It wires up configuration loading, logging, and the calculator
// subcommands (trip, compare, credits, cities, routes, batch).
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "co2calc",
		Short:   "Trip CO2 emission calculator",
		Long:    "co2calc estimates CO2 emissions for a trip, compares transport modes, and prices the carbon-credit offset.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupCommand(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = config.CloseLogFile()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file path (default $HOME/.co2calc/config.yaml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json or ndjson (default from config)")

	cmd.AddCommand(
		newTripCmd(),
		newCompareCmd(),
		newCreditsCmd(),
		newCitiesCmd(),
		newRoutesCmd(),
		newBatchCmd(),
	)

	return cmd
}

// setupCommand loads configuration, initializes logging and attaches a
// trace ID and logger to the command context.
func setupCommand(cmd *cobra.Command) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	config.SetGlobal(cfg)

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}
	if err := config.InitLogger(loggingCfg); err != nil {
		return err
	}

	logger = logging.ComponentLogger(config.Logger, "cli")

	ctx := cmd.Context()
	ctx = logging.ContextWithTraceID(ctx, logging.GetOrGenerateTraceID(ctx))
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Msg("command started")
	return nil
}

// outputFormat resolves the effective output format for a command: the
// --output flag when given, the configured default otherwise.
func outputFormat(cmd *cobra.Command) string {
	if format, _ := cmd.Flags().GetString("output"); format != "" {
		return format
	}
	return config.Global().Output.DefaultFormat
}

const rootCmdExample = `  # Emission for a known route
  co2calc trip --from "Toronto, ON" --to "Ottawa, ON" --mode car

  # Emission for a manual distance
  co2calc trip --distance 451 --mode bus

  # Interactive calculator
  co2calc trip --interactive

  # Compare every transport mode over 100 km
  co2calc compare --distance 100

  # Price the offset for 54.12 kg of CO2
  co2calc credits --emission 54.12

  # Cities known to the route table
  co2calc cities

  # Calculate many trips from a file
  co2calc batch --file trips.yaml --output ndjson`
