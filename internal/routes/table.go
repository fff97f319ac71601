// Package routes provides the static intercity route table that backs
// distance auto-fill for trip calculations.
//
// The table is immutable once constructed. Lookups are direction-agnostic
// and tolerant of whitespace and letter-case differences, but there is no
// partial or fuzzy matching: a single character difference is a miss.
package routes

import (
	"fmt"
	"sort"
	"strings"
)

// Route is a single known intercity distance. Routes are directed in
// storage (Origin/Destination) but looked up bidirectionally.
type Route struct {
	// Origin is a free-text city identifier, including the region suffix
	// (e.g., "Toronto, ON").
	Origin string `yaml:"origin" json:"origin"`

	// Destination has the same form as Origin.
	Destination string `yaml:"destination" json:"destination"`

	// DistanceKm is the road distance between the two cities. Must be > 0.
	DistanceKm float64 `yaml:"distance_km" json:"distance_km"`
}

// Table is an immutable, ordered collection of routes.
//
// Duplicate city pairs are tolerated: lookups return the first structural
// match in table order, so when two entries disagree on distance for the
// same pair, the earlier entry wins.
type Table struct {
	routes []Route
}

// NewTable builds a Table from the given routes, validating every record.
// The input slice is copied; mutating it afterwards does not affect the table.
func NewTable(rr []Route) (*Table, error) {
	for i, r := range rr {
		if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
			return nil, fmt.Errorf("%w: entry %d is missing a city name", ErrInvalidRoute, i)
		}
		if !(r.DistanceKm > 0) {
			return nil, fmt.Errorf("%w: entry %d (%s -> %s) has distance %v, must be > 0",
				ErrInvalidRoute, i, r.Origin, r.Destination, r.DistanceKm)
		}
	}

	routes := make([]Route, len(rr))
	copy(routes, rr)
	return &Table{routes: routes}, nil
}

// Len returns the number of routes in the table.
func (t *Table) Len() int {
	return len(t.routes)
}

// Routes returns a copy of the route records in table order.
func (t *Table) Routes() []Route {
	rr := make([]Route, len(t.routes))
	copy(rr, t.routes)
	return rr
}

// Cities returns the deduplicated union of every origin and destination,
// sorted lexicographically by code point. The result is stable across calls.
func (t *Table) Cities() []string {
	seen := make(map[string]struct{}, len(t.routes)*2)
	cities := make([]string, 0, len(t.routes)*2)

	for _, r := range t.routes {
		for _, city := range []string{r.Origin, r.Destination} {
			if _, ok := seen[city]; !ok {
				seen[city] = struct{}{}
				cities = append(cities, city)
			}
		}
	}

	sort.Strings(cities)
	return cities
}

// FindDistance returns the known distance in kilometers between two cities.
//
// City names are compared after trimming surrounding whitespace and case
// folding; the stored distance is unaffected by normalization. A route
// matches regardless of direction. Empty input yields ErrRouteNotFound
// rather than a validation failure, since an empty form field simply means
// "no data".
//
// The returned error is ErrRouteNotFound when no route matches; callers
// must not treat a zero return value as a "missing" marker.
func (t *Table) FindDistance(cityA, cityB string) (float64, error) {
	a := normalizeCity(cityA)
	b := normalizeCity(cityB)
	if a == "" || b == "" {
		return 0, ErrRouteNotFound
	}

	for _, r := range t.routes {
		origin := normalizeCity(r.Origin)
		dest := normalizeCity(r.Destination)
		if (origin == a && dest == b) || (origin == b && dest == a) {
			return r.DistanceKm, nil
		}
	}

	return 0, fmt.Errorf("%w: %s -> %s", ErrRouteNotFound, strings.TrimSpace(cityA), strings.TrimSpace(cityB))
}

// normalizeCity produces the comparison key for a city name.
func normalizeCity(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
