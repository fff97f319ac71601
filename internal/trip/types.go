// Package trip wires the route table and the emission engine into a trip
// calculator: origin/destination (or a manual distance) plus a transport
// mode in, a full emission report out.
package trip

import (
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
)

// DistanceSource records how a report's distance was obtained.
type DistanceSource string

const (
	// DistanceSourceRoute means the distance came from the route table.
	DistanceSourceRoute DistanceSource = "route"

	// DistanceSourceManual means the caller supplied the distance directly.
	DistanceSourceManual DistanceSource = "manual"
)

// Request describes one trip to calculate. Either Origin/Destination (for
// a route-table lookup) or a positive DistanceKm (manual entry) must be
// provided; a manual distance takes precedence over the lookup.
type Request struct {
	// Origin is the starting city, e.g. "Toronto, ON".
	Origin string `yaml:"origin" json:"origin"`

	// Destination is the ending city.
	Destination string `yaml:"destination" json:"destination"`

	// DistanceKm, when > 0, bypasses the route lookup.
	DistanceKm float64 `yaml:"distance_km" json:"distance_km"`

	// Mode is the transport mode; empty defaults to car.
	Mode emissions.Mode `yaml:"mode" json:"mode"`
}

// Report is the complete result of a trip calculation. It is a value
// object: computed on demand, never persisted.
type Report struct {
	// ID is a ULID correlating this report with its log lines.
	ID string `json:"id"`

	Origin      string         `json:"origin,omitempty"`
	Destination string         `json:"destination,omitempty"`
	DistanceKm  float64        `json:"distance_km"`
	Source      DistanceSource `json:"distance_source"`

	// Mode is the transport mode the trip was calculated for.
	Mode emissions.Mode `json:"mode"`

	// EmissionKg is the trip emission for Mode.
	EmissionKg float64 `json:"emission_kg"`

	// BaselineKg is the car emission for the same distance.
	BaselineKg float64 `json:"baseline_kg"`

	// Savings is the emission saved against the car baseline.
	Savings emissions.Savings `json:"savings"`

	// Comparison holds every mode's emission, sorted ascending.
	Comparison []emissions.ModeEmission `json:"comparison"`

	// Credits is the carbon-credit equivalent of EmissionKg.
	Credits float64 `json:"credits"`

	// Price is the estimated USD cost of purchasing Credits.
	Price emissions.CreditPrice `json:"price"`

	// Equivalency expresses EmissionKg in everyday terms.
	Equivalency emissions.Equivalency `json:"equivalency"`
}
