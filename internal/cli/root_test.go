package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
)

// execute runs the CLI with the given args against an absent config file
// and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	var out bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("shows help without arguments", func(t *testing.T) {
		out, err := execute(t)
		require.NoError(t, err)
		assert.Contains(t, out, "co2calc")
		assert.Contains(t, out, "trip")
	})

	t.Run("reports version", func(t *testing.T) {
		out, err := execute(t, "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "test")
	})

	t.Run("rejects invalid config files", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("version: \"9.0.0\"\n"), 0o600))

		root := NewRootCmd("test")
		root.SetOut(new(bytes.Buffer))
		root.SetErr(new(bytes.Buffer))
		root.SetArgs([]string{"--config", cfgPath, "cities"})

		require.Error(t, root.Execute())
	})
}

func TestTripCmd(t *testing.T) {
	t.Run("known route renders a table report", func(t *testing.T) {
		out, err := execute(t, "trip", "--from", "Toronto, ON", "--to", "Ottawa, ON", "--mode", "car")
		require.NoError(t, err)
		assert.Contains(t, out, "Toronto, ON")
		assert.Contains(t, out, "54.12")
	})

	t.Run("json output carries the full report", func(t *testing.T) {
		out, err := execute(t, "trip", "--from", "Toronto, ON", "--to", "Ottawa, ON", "--mode", "bus", "--output", "json")
		require.NoError(t, err)

		var report trip.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 451.0, report.DistanceKm)
		assert.Equal(t, 40.14, report.EmissionKg)
		assert.Equal(t, 54.12, report.BaselineKg)
		assert.NotEmpty(t, report.ID)
		assert.Len(t, report.Comparison, 4)
	})

	t.Run("manual distance bypasses the route table", func(t *testing.T) {
		out, err := execute(t, "trip", "--distance", "100", "--mode", "bus", "--output", "json")
		require.NoError(t, err)

		var report trip.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 8.9, report.EmissionKg)
		assert.Equal(t, string(trip.DistanceSourceManual), string(report.Source))
	})

	t.Run("ndjson output is one compact line", func(t *testing.T) {
		out, err := execute(t, "trip", "--from", "Toronto, ON", "--to", "Ottawa, ON", "--output", "ndjson")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 1)

		var report trip.Report
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &report))
		assert.Equal(t, 54.12, report.EmissionKg)
	})

	t.Run("unknown route suggests the cities command", func(t *testing.T) {
		_, err := execute(t, "trip", "--from", "Nowhere", "--to", "Elsewhere")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "co2calc cities")
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		_, err := execute(t, "trip", "--distance", "100", "--mode", "rocket")
		require.Error(t, err)
	})
}

func TestCompareCmd(t *testing.T) {
	t.Run("table output lists every mode", func(t *testing.T) {
		out, err := execute(t, "compare", "--distance", "100")
		require.NoError(t, err)
		for _, label := range []string{"Bicycle", "Car", "Bus", "Truck"} {
			assert.Contains(t, out, label)
		}
	})

	t.Run("route lookup drives the comparison distance", func(t *testing.T) {
		out, err := execute(t, "compare", "--from", "Toronto, ON", "--to", "Ottawa, ON")
		require.NoError(t, err)
		assert.Contains(t, out, "451")
	})

	t.Run("ndjson output is one compact line per mode", func(t *testing.T) {
		out, err := execute(t, "compare", "--distance", "100", "--output", "ndjson")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 4)
		for _, line := range lines {
			var row emissions.ModeEmission
			require.NoError(t, json.Unmarshal([]byte(line), &row))
		}
	})
}

func TestCreditsCmd(t *testing.T) {
	t.Run("prices the reference emission", func(t *testing.T) {
		out, err := execute(t, "credits", "--emission", "54.12", "--output", "json")
		require.NoError(t, err)

		var est creditEstimate
		require.NoError(t, json.Unmarshal([]byte(out), &est))
		assert.Equal(t, 0.0541, est.Credits)
		assert.Equal(t, 2.71, est.Price.MinUSD)
		assert.Equal(t, 8.12, est.Price.MaxUSD)
		assert.Equal(t, 5.41, est.Price.AverageUSD)
	})

	t.Run("ndjson output is one compact line", func(t *testing.T) {
		out, err := execute(t, "credits", "--emission", "54.12", "--output", "ndjson")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 1)

		var est creditEstimate
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &est))
		assert.Equal(t, 0.0541, est.Credits)
	})

	t.Run("emission flag is required", func(t *testing.T) {
		_, err := execute(t, "credits")
		require.Error(t, err)
	})
}

func TestCitiesCmd(t *testing.T) {
	out, err := execute(t, "cities")
	require.NoError(t, err)
	assert.Contains(t, out, "Toronto, ON")
	assert.Contains(t, out, "Ottawa, ON")
}

func TestRoutesCmd(t *testing.T) {
	out, err := execute(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "Toronto, ON")
	assert.Contains(t, out, "451")
}

func TestBatchCmd(t *testing.T) {
	writeTrips := func(t *testing.T) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "trips.yaml")
		content := `trips:
  - origin: "Toronto, ON"
    destination: "Ottawa, ON"
    mode: bus
  - distance_km: 120
    mode: truck
  - origin: "Nowhere"
    destination: "Elsewhere"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("table output reports failures without aborting", func(t *testing.T) {
		out, err := execute(t, "batch", "--file", writeTrips(t))
		require.NoError(t, err)
		assert.Contains(t, out, "Toronto, ON -> Ottawa, ON")
		assert.Contains(t, out, "ERROR")
		assert.Contains(t, out, "1 of 3 trips failed")
	})

	t.Run("ndjson emits one line per trip", func(t *testing.T) {
		out, err := execute(t, "batch", "--file", writeTrips(t), "--output", "ndjson")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)

		var row batchRow
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &row))
		assert.NotNil(t, row.Report)
		assert.Equal(t, 40.14, row.Report.EmissionKg)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := execute(t, "batch", "--file", filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}
