package trip

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/logging"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/routes"
)

// Calculator resolves a trip's distance and derives its full emission
// report. It holds only read-only collaborators and is safe for
// concurrent use.
type Calculator struct {
	table  *routes.Table
	engine *emissions.Engine
	logger zerolog.Logger
}

// NewCalculator builds a Calculator from an explicit route table and
// emission engine.
func NewCalculator(table *routes.Table, engine *emissions.Engine, logger zerolog.Logger) *Calculator {
	return &Calculator{
		table:  table,
		engine: engine,
		logger: logging.ComponentLogger(logger, "trip"),
	}
}

// Table returns the route table backing this calculator.
func (c *Calculator) Table() *routes.Table {
	return c.table
}

// Engine returns the emission engine backing this calculator.
func (c *Calculator) Engine() *emissions.Engine {
	return c.engine
}

// Calculate produces the full report for one trip request.
//
// When the request carries a positive manual distance, the route table is
// not consulted; otherwise the distance is looked up by city pair and a
// routes.ErrRouteNotFound failure is returned for the caller to translate
// into a manual-entry prompt.
func (c *Calculator) Calculate(ctx context.Context, req Request) (*Report, error) {
	mode := req.Mode
	if mode == "" {
		mode = emissions.ModeCar
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", emissions.ErrUnknownMode, mode)
	}

	distanceKm, source, err := c.resolveDistance(req)
	if err != nil {
		return nil, err
	}

	emissionKg, err := c.engine.Emission(distanceKm, mode)
	if err != nil {
		return nil, err
	}
	baselineKg, err := c.engine.Emission(distanceKm, emissions.ModeCar)
	if err != nil {
		return nil, err
	}
	comparison, err := c.engine.Compare(distanceKm)
	if err != nil {
		return nil, err
	}
	credits, err := c.engine.CarbonCredits(emissionKg)
	if err != nil {
		return nil, err
	}
	price, err := c.engine.CreditPrice(credits)
	if err != nil {
		return nil, err
	}
	equivalency, err := emissions.Equivalencies(emissionKg)
	if err != nil {
		return nil, err
	}

	report := &Report{
		ID:          logging.NewID(),
		Origin:      req.Origin,
		Destination: req.Destination,
		DistanceKm:  distanceKm,
		Source:      source,
		Mode:        mode,
		EmissionKg:  emissionKg,
		BaselineKg:  baselineKg,
		Savings:     c.engine.Savings(emissionKg, baselineKg),
		Comparison:  comparison,
		Credits:     credits,
		Price:       price,
		Equivalency: equivalency,
	}

	c.logger.Info().
		Str("trace_id", logging.TraceIDFromContext(ctx)).
		Str("report_id", report.ID).
		Str("mode", mode.String()).
		Str("distance_source", string(source)).
		Float64("distance_km", distanceKm).
		Float64("emission_kg", emissionKg).
		Msg("trip calculated")

	return report, nil
}

// resolveDistance picks the manual distance when provided, falling back to
// a route-table lookup.
func (c *Calculator) resolveDistance(req Request) (float64, DistanceSource, error) {
	if math.IsNaN(req.DistanceKm) || math.IsInf(req.DistanceKm, 0) {
		return 0, "", fmt.Errorf("%w: %v", emissions.ErrInvalidDistance, req.DistanceKm)
	}

	if req.DistanceKm > 0 {
		return req.DistanceKm, DistanceSourceManual, nil
	}

	distanceKm, err := c.table.FindDistance(req.Origin, req.Destination)
	if err != nil {
		return 0, "", err
	}
	return distanceKm, DistanceSourceRoute, nil
}
