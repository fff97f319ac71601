package emissions

import (
	"fmt"
	"math"
)

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// These constants represent the kg CO2e equivalent for each activity.
// To calculate the equivalency, divide the carbon value by the factor:
//
//	equivalency = kg_CO2e / factor
const (
	// EPAMilesDrivenFactor is kg CO2e per mile for an average passenger
	// vehicle.
	EPAMilesDrivenFactor = 0.192

	// EPASmartphoneChargeFactor is kg CO2e per smartphone charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling grown
	// for 10 years.
	EPATreeSeedlingFactor = 60.0

	// MinEquivalencyThresholdKg is the minimum kg CO2e for showing
	// equivalencies. Below this they become meaninglessly small.
	MinEquivalencyThresholdKg = 1.0
)

// Equivalency expresses an emission in everyday terms so the number means
// something to a reader.
type Equivalency struct {
	// InputKg is the emission the equivalency was computed from.
	InputKg float64 `json:"input_kg"`

	// MilesDriven is the equivalent miles in an average passenger car.
	MilesDriven float64 `json:"miles_driven"`

	// SmartphonesCharged is the equivalent number of smartphone charges.
	SmartphonesCharged float64 `json:"smartphones_charged"`

	// TreeSeedlings is the number of tree seedlings grown for 10 years
	// needed to absorb the emission.
	TreeSeedlings float64 `json:"tree_seedlings"`

	// IsEmpty is true when the input was below the display threshold.
	IsEmpty bool `json:"-"`
}

// Equivalencies computes EPA-based equivalencies for an emission in kg.
//
// Inputs below MinEquivalencyThresholdKg yield an empty result (IsEmpty
// set) rather than nonsense fractions. Negative or non-finite inputs are
// rejected with ErrInvalidEmission.
func Equivalencies(emissionKg float64) (Equivalency, error) {
	if emissionKg < 0 || math.IsNaN(emissionKg) || math.IsInf(emissionKg, 0) {
		return Equivalency{IsEmpty: true}, fmt.Errorf("%w: %v", ErrInvalidEmission, emissionKg)
	}

	if emissionKg < MinEquivalencyThresholdKg {
		return Equivalency{InputKg: emissionKg, IsEmpty: true}, nil
	}

	return Equivalency{
		InputKg:            emissionKg,
		MilesDriven:        emissionKg / EPAMilesDrivenFactor,
		SmartphonesCharged: emissionKg / EPASmartphoneChargeFactor,
		TreeSeedlings:      emissionKg / EPATreeSeedlingFactor,
	}, nil
}

// DisplayText renders a one-line human-readable description, or an empty
// string for an empty equivalency.
func (q Equivalency) DisplayText() string {
	if q.IsEmpty {
		return ""
	}
	return fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones; ~%s tree seedlings absorb it in 10 years",
		FormatFloat(q.MilesDriven, 0),
		FormatFloat(q.SmartphonesCharged, 0),
		FormatFloat(q.TreeSeedlings, 1))
}
