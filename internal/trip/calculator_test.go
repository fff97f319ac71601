package trip

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/routes"
)

func testCalculator(t *testing.T) *Calculator {
	t.Helper()

	table, err := routes.NewTable([]routes.Route{
		{Origin: "Toronto, ON", Destination: "Ottawa, ON", DistanceKm: 451},
		{Origin: "Ottawa, ON", Destination: "Montreal, QC", DistanceKm: 199},
	})
	require.NoError(t, err)

	engine := emissions.NewDefaultEngine(zerolog.Nop())
	return NewCalculator(table, engine, zerolog.Nop())
}

func TestCalculateFromRoute(t *testing.T) {
	calc := testCalculator(t)

	report, err := calc.Calculate(context.Background(), Request{
		Origin:      "Toronto, ON",
		Destination: "Ottawa, ON",
		Mode:        emissions.ModeCar,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, 451.0, report.DistanceKm)
	assert.Equal(t, DistanceSourceRoute, report.Source)
	assert.Equal(t, emissions.ModeCar, report.Mode)
	assert.Equal(t, 54.12, report.EmissionKg)
	assert.Equal(t, 54.12, report.BaselineKg)
	assert.Equal(t, emissions.Savings{}, report.Savings)
	assert.Len(t, report.Comparison, 4)
	assert.Equal(t, 0.0541, report.Credits)
	assert.Equal(t, 2.71, report.Price.MinUSD)
	assert.Equal(t, 8.12, report.Price.MaxUSD)
	assert.Equal(t, 5.41, report.Price.AverageUSD)
	assert.False(t, report.Equivalency.IsEmpty)
}

func TestCalculateManualDistanceWins(t *testing.T) {
	calc := testCalculator(t)

	// A manual distance bypasses the lookup even when the pair is known.
	report, err := calc.Calculate(context.Background(), Request{
		Origin:      "Toronto, ON",
		Destination: "Ottawa, ON",
		DistanceKm:  100,
		Mode:        emissions.ModeBus,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.DistanceKm)
	assert.Equal(t, DistanceSourceManual, report.Source)
	assert.Equal(t, 8.9, report.EmissionKg)
	assert.Equal(t, 12.0, report.BaselineKg)
	assert.Equal(t, 3.1, report.Savings.SavedKg)
}

func TestCalculateUnknownRoute(t *testing.T) {
	calc := testCalculator(t)

	_, err := calc.Calculate(context.Background(), Request{
		Origin:      "Nowhere",
		Destination: "Toronto, ON",
		Mode:        emissions.ModeCar,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, routes.ErrRouteNotFound)
}

func TestCalculateDefaultsToCar(t *testing.T) {
	calc := testCalculator(t)

	report, err := calc.Calculate(context.Background(), Request{
		Origin:      "Ottawa, ON",
		Destination: "Montreal, QC",
	})
	require.NoError(t, err)
	assert.Equal(t, emissions.ModeCar, report.Mode)
}

func TestCalculateUnknownMode(t *testing.T) {
	calc := testCalculator(t)

	_, err := calc.Calculate(context.Background(), Request{
		Origin:      "Toronto, ON",
		Destination: "Ottawa, ON",
		Mode:        emissions.Mode("rocket"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, emissions.ErrUnknownMode)
}

func TestCalculateBicycleSavesEverything(t *testing.T) {
	calc := testCalculator(t)

	report, err := calc.Calculate(context.Background(), Request{
		Origin:      "Toronto, ON",
		Destination: "Ottawa, ON",
		Mode:        emissions.ModeBicycle,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.EmissionKg)
	assert.Equal(t, report.BaselineKg, report.Savings.SavedKg)
	assert.Equal(t, 100.0, report.Savings.Percent)
	assert.Equal(t, 0.0, report.Credits)
	assert.True(t, report.Equivalency.IsEmpty)
}
