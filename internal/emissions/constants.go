// Package emissions computes trip CO2 emissions, cross-mode comparisons,
// savings against a car baseline, and carbon-credit cost estimates.
//
// Every operation is a deterministic function of its inputs and the
// factor/pricing tables injected at engine construction: no ambient state,
// no side effects beyond debug logging through the injected logger.
package emissions

// Default emission factors in kg CO2 per km traveled.
//
// The bicycle factor is exactly zero: cycling emits nothing regardless of
// distance. That is domain knowledge, not a special case in code.
const (
	DefaultBicycleFactor = 0.0
	DefaultCarFactor     = 0.12
	DefaultBusFactor     = 0.089
	DefaultTruckFactor   = 0.96
)

// Carbon-credit constants. One voluntary-market credit represents 1000 kg
// of CO2; the price band reflects typical voluntary market rates in USD.
const (
	// KgPerCredit is the kg of CO2 represented by one carbon credit.
	KgPerCredit = 1000.0

	// DefaultCreditPriceMinUSD is the low end of the per-credit price band.
	DefaultCreditPriceMinUSD = 50.0

	// DefaultCreditPriceMaxUSD is the high end of the per-credit price band.
	DefaultCreditPriceMaxUSD = 150.0
)

// Rounding precisions. All rounding in this package is half-away-from-zero
// (math.Round), applied through one shared helper so repeated calls with
// identical inputs are bit-identical.
const (
	// emissionPrecision is the decimal precision for kg CO2 values.
	emissionPrecision = 2

	// percentPrecision is the decimal precision for percentage values.
	percentPrecision = 2

	// creditPrecision is the decimal precision for carbon-credit counts.
	creditPrecision = 4

	// pricePrecision is the decimal precision for USD amounts.
	pricePrecision = 2
)
