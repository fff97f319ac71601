package emissions

import (
	"fmt"
	"strings"
)

// Mode identifies a transport mode. The enumeration is closed: only the
// four declared modes are valid, and anything else is a caller bug rather
// than bad user input.
type Mode string

// The closed transport mode enumeration, in declaration order. Declaration
// order is the tie-breaking key for comparison output, so it is part of the
// package contract.
const (
	ModeBicycle Mode = "bicycle"
	ModeCar     Mode = "car"
	ModeBus     Mode = "bus"
	ModeTruck   Mode = "truck"
)

// Modes returns all transport modes in declaration order.
func Modes() []Mode {
	return []Mode{ModeBicycle, ModeCar, ModeBus, ModeTruck}
}

// ParseMode converts free-text user input into a Mode.
// Matching is case-insensitive and whitespace-tolerant.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeBicycle:
		return ModeBicycle, nil
	case ModeCar:
		return ModeCar, nil
	case ModeBus:
		return ModeBus, nil
	case ModeTruck:
		return ModeTruck, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Valid reports whether m is a member of the closed enumeration.
func (m Mode) Valid() bool {
	switch m {
	case ModeBicycle, ModeCar, ModeBus, ModeTruck:
		return true
	default:
		return false
	}
}

// String returns the canonical lowercase mode name.
func (m Mode) String() string {
	return string(m)
}

// Label returns the human-facing mode name for display.
func (m Mode) Label() string {
	switch m {
	case ModeBicycle:
		return "Bicycle"
	case ModeCar:
		return "Car"
	case ModeBus:
		return "Bus"
	case ModeTruck:
		return "Truck"
	default:
		return string(m)
	}
}

// Glyph returns a one-rune icon for the mode.
func (m Mode) Glyph() string {
	switch m {
	case ModeBicycle:
		return "🚲"
	case ModeCar:
		return "🚗"
	case ModeBus:
		return "🚌"
	case ModeTruck:
		return "🚚"
	default:
		return "•"
	}
}
