// Command co2calc estimates the CO2 emitted by intercity trips and the
// carbon credits needed to offset them.
package main

import (
	"os"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/cli"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/config"
	"github.com/RakellM/DIO-Project-CO2-Calculator/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps its outcome to an exit code.
// It exists so tests can exercise the wiring without exiting the process.
func run() int {
	defer func() {
		_ = config.CloseLogFile()
	}()

	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		// Cobra already printed the error to stderr.
		return 1
	}
	return 0
}
