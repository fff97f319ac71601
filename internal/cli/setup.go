package cli

import (
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/config"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/routes"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
)

// newCalculator assembles a trip calculator from the embedded route table
// and the effective configuration.
func newCalculator() (*trip.Calculator, error) {
	table, err := routes.Default()
	if err != nil {
		return nil, err
	}

	cfg := config.Global()
	engine, err := emissions.NewEngine(cfg.FactorTable(), cfg.CreditPricing(), config.Logger)
	if err != nil {
		return nil, err
	}

	return trip.NewCalculator(table, engine, config.Logger), nil
}
