package emissions

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
)

// FactorTable maps each transport mode to its emission factor in kg CO2
// per km. A table must cover every mode in the closed enumeration.
type FactorTable map[Mode]float64

// DefaultFactors returns the standard factor table.
func DefaultFactors() FactorTable {
	return FactorTable{
		ModeBicycle: DefaultBicycleFactor,
		ModeCar:     DefaultCarFactor,
		ModeBus:     DefaultBusFactor,
		ModeTruck:   DefaultTruckFactor,
	}
}

// CreditPricing configures the carbon-credit estimate: how many kg of CO2
// one credit represents and the voluntary-market price band per credit.
type CreditPricing struct {
	KgPerCredit float64
	MinUSD      float64
	MaxUSD      float64
}

// DefaultCreditPricing returns the standard credit pricing.
func DefaultCreditPricing() CreditPricing {
	return CreditPricing{
		KgPerCredit: KgPerCredit,
		MinUSD:      DefaultCreditPriceMinUSD,
		MaxUSD:      DefaultCreditPriceMaxUSD,
	}
}

// ModeEmission is one row of a cross-mode comparison.
type ModeEmission struct {
	// Mode is the transport mode for this row.
	Mode Mode `json:"mode"`

	// EmissionKg is the rounded emission for the compared distance.
	EmissionKg float64 `json:"emission_kg"`

	// PercentVsCar is this mode's emission relative to the car baseline,
	// as a percentage. Only meaningful when PercentDefined is true.
	PercentVsCar float64 `json:"percent_vs_car"`

	// PercentDefined is false when the car baseline is zero while this
	// mode's emission is not, which would make the ratio undefined.
	PercentDefined bool `json:"percent_defined"`
}

// Savings describes emission saved against a baseline.
type Savings struct {
	// SavedKg is max(0, baseline - actual): savings are never negative.
	SavedKg float64 `json:"saved_kg"`

	// Percent is SavedKg relative to the baseline, as a percentage.
	Percent float64 `json:"percent"`
}

// CreditPrice is the estimated cost of a credit purchase in USD.
type CreditPrice struct {
	MinUSD     float64 `json:"min_usd"`
	MaxUSD     float64 `json:"max_usd"`
	AverageUSD float64 `json:"average_usd"`
}

// Engine computes emissions and derived values from injected configuration.
// It is stateless beyond its read-only tables: every call is independent
// and deterministic, so an Engine is safe for concurrent use.
type Engine struct {
	factors FactorTable
	pricing CreditPricing
	logger  zerolog.Logger
}

// NewEngine builds an Engine from an explicit factor table and credit
// pricing. The factor table must cover every mode with a non-negative
// finite factor; the pricing must have a positive credit size and a
// non-inverted price band.
func NewEngine(factors FactorTable, pricing CreditPricing, logger zerolog.Logger) (*Engine, error) {
	for _, mode := range Modes() {
		factor, ok := factors[mode]
		if !ok {
			return nil, fmt.Errorf("%w: no factor for mode %q", ErrInvalidFactor, mode)
		}
		if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
			return nil, fmt.Errorf("%w: mode %q has factor %v", ErrInvalidFactor, mode, factor)
		}
	}
	for mode := range factors {
		if !mode.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
		}
	}

	if !(pricing.KgPerCredit > 0) || math.IsInf(pricing.KgPerCredit, 0) {
		return nil, fmt.Errorf("%w: kg per credit %v, must be > 0", ErrInvalidPricing, pricing.KgPerCredit)
	}
	if pricing.MinUSD < 0 || pricing.MaxUSD < pricing.MinUSD {
		return nil, fmt.Errorf("%w: price band %v..%v", ErrInvalidPricing, pricing.MinUSD, pricing.MaxUSD)
	}

	// Copy the table so later caller mutations cannot leak into the engine.
	owned := make(FactorTable, len(factors))
	for mode, factor := range factors {
		owned[mode] = factor
	}

	return &Engine{
		factors: owned,
		pricing: pricing,
		logger:  logger,
	}, nil
}

// NewDefaultEngine builds an Engine with the standard factor table and
// credit pricing. It cannot fail.
func NewDefaultEngine(logger zerolog.Logger) *Engine {
	engine, err := NewEngine(DefaultFactors(), DefaultCreditPricing(), logger)
	if err != nil {
		// Unreachable: the default tables are valid by construction.
		panic(err)
	}
	return engine
}

// Factor returns the emission factor for a mode in kg CO2 per km.
func (e *Engine) Factor(mode Mode) (float64, error) {
	factor, ok := e.factors[mode]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return factor, nil
}

// Emission returns the kg of CO2 emitted traveling distanceKm with the
// given mode, rounded to 2 decimals (half away from zero).
//
// Invalid-input policy: a non-positive distance clamps to zero emission (a
// degenerate trip emits nothing); a NaN or infinite distance is rejected
// with ErrInvalidDistance; an unknown mode is rejected with ErrUnknownMode.
// The same policy applies at every call site in this package.
func (e *Engine) Emission(distanceKm float64, mode Mode) (float64, error) {
	factor, err := e.Factor(mode)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDistance, distanceKm)
	}
	if distanceKm <= 0 {
		return 0, nil
	}
	return roundTo(distanceKm*factor, emissionPrecision), nil
}

// Compare computes the emission of every transport mode for the given
// distance, annotated with its percentage relative to the car baseline.
//
// The result always holds one entry per mode, sorted ascending by
// EmissionKg with ties broken by mode declaration order, so output order
// is reproducible for identical inputs.
//
// When the car baseline is zero (possible only with a custom factor
// table), a mode with zero emission reports 100% and any other mode
// reports an undefined percentage (PercentDefined=false) rather than a
// division fault.
func (e *Engine) Compare(distanceKm float64) ([]ModeEmission, error) {
	carKg, err := e.Emission(distanceKm, ModeCar)
	if err != nil {
		return nil, err
	}

	results := make([]ModeEmission, 0, len(Modes()))
	for _, mode := range Modes() {
		kg, err := e.Emission(distanceKm, mode)
		if err != nil {
			return nil, err
		}

		row := ModeEmission{Mode: mode, EmissionKg: kg}
		switch {
		case carKg > 0:
			row.PercentVsCar = roundTo(kg/carKg*100, percentPrecision)
			row.PercentDefined = true
		case kg == 0:
			row.PercentVsCar = 100
			row.PercentDefined = true
		default:
			row.PercentDefined = false
		}
		results = append(results, row)
	}

	// Stable sort keeps declaration order for equal emissions.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].EmissionKg < results[j].EmissionKg
	})

	e.logger.Debug().
		Float64("distance_km", distanceKm).
		Float64("baseline_kg", carKg).
		Int("modes", len(results)).
		Msg("mode comparison computed")

	return results, nil
}

// Savings returns the emission saved by the actual trip against a
// baseline, both in kg. A baseline of zero or less yields {0, 0}; savings
// never go negative when the chosen mode emits more than the baseline.
func (e *Engine) Savings(actualKg, baselineKg float64) Savings {
	if !(baselineKg > 0) {
		return Savings{}
	}

	saved := baselineKg - actualKg
	if saved < 0 {
		saved = 0
	}

	return Savings{
		SavedKg: roundTo(saved, emissionPrecision),
		Percent: roundTo(saved/baselineKg*100, percentPrecision),
	}
}

// CarbonCredits converts an emission in kg to voluntary-market carbon
// credits, rounded to 4 decimals.
func (e *Engine) CarbonCredits(emissionKg float64) (float64, error) {
	if emissionKg < 0 || math.IsNaN(emissionKg) || math.IsInf(emissionKg, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidEmission, emissionKg)
	}
	return roundTo(emissionKg/e.pricing.KgPerCredit, creditPrecision), nil
}

// CreditPrice estimates the USD cost of purchasing the given number of
// credits. Min, max and average are each rounded to 2 decimals; the
// average is computed from the unrounded bounds.
func (e *Engine) CreditPrice(credits float64) (CreditPrice, error) {
	if credits < 0 || math.IsNaN(credits) || math.IsInf(credits, 0) {
		return CreditPrice{}, fmt.Errorf("%w: %v", ErrInvalidCredits, credits)
	}

	minUSD := credits * e.pricing.MinUSD
	maxUSD := credits * e.pricing.MaxUSD

	return CreditPrice{
		MinUSD:     roundTo(minUSD, pricePrecision),
		MaxUSD:     roundTo(maxUSD, pricePrecision),
		AverageUSD: roundTo((minUSD+maxUSD)/2, pricePrecision),
	}, nil
}

// roundTo rounds v to the given number of decimal places using
// half-away-from-zero rounding.
func roundTo(v float64, places int) float64 {
	multiplier := math.Pow(10, float64(places))
	return math.Round(v*multiplier) / multiplier
}
