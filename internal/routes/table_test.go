package routes

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTable builds a small table for lookup tests.
func fixtureTable(t *testing.T) *Table {
	t.Helper()

	table, err := NewTable([]Route{
		{Origin: "Toronto, ON", Destination: "Ottawa, ON", DistanceKm: 451},
		{Origin: "Toronto, ON", Destination: "Montreal, QC", DistanceKm: 541},
		{Origin: "Ottawa, ON", Destination: "Montreal, QC", DistanceKm: 199},
	})
	require.NoError(t, err)
	return table
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		routes  []Route
		wantErr bool
	}{
		{
			name:    "empty table is valid",
			routes:  nil,
			wantErr: false,
		},
		{
			name: "valid routes",
			routes: []Route{
				{Origin: "Toronto, ON", Destination: "Ottawa, ON", DistanceKm: 451},
			},
			wantErr: false,
		},
		{
			name: "zero distance rejected",
			routes: []Route{
				{Origin: "Toronto, ON", Destination: "Ottawa, ON", DistanceKm: 0},
			},
			wantErr: true,
		},
		{
			name: "negative distance rejected",
			routes: []Route{
				{Origin: "Toronto, ON", Destination: "Ottawa, ON", DistanceKm: -10},
			},
			wantErr: true,
		},
		{
			name: "missing origin rejected",
			routes: []Route{
				{Origin: "  ", Destination: "Ottawa, ON", DistanceKm: 451},
			},
			wantErr: true,
		},
		{
			name: "missing destination rejected",
			routes: []Route{
				{Origin: "Toronto, ON", Destination: "", DistanceKm: 451},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.routes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRoute)
				assert.Nil(t, table)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.routes), table.Len())
		})
	}
}

func TestFindDistance(t *testing.T) {
	table := fixtureTable(t)

	tests := []struct {
		name     string
		cityA    string
		cityB    string
		want     float64
		notFound bool
	}{
		{
			name:  "exact match",
			cityA: "Toronto, ON",
			cityB: "Ottawa, ON",
			want:  451,
		},
		{
			name:  "reversed direction",
			cityA: "Ottawa, ON",
			cityB: "Toronto, ON",
			want:  451,
		},
		{
			name:  "whitespace and case normalized",
			cityA: " toronto, on ",
			cityB: "OTTAWA, ON",
			want:  451,
		},
		{
			name:     "unknown city",
			cityA:    "Nowhere",
			cityB:    "Toronto, ON",
			notFound: true,
		},
		{
			name:     "single character difference is a miss",
			cityA:    "Torontoo, ON",
			cityB:    "Ottawa, ON",
			notFound: true,
		},
		{
			name:     "empty origin",
			cityA:    "",
			cityB:    "Ottawa, ON",
			notFound: true,
		},
		{
			name:     "both empty",
			cityA:    "",
			cityB:    "",
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.FindDistance(tt.cityA, tt.cityB)
			if tt.notFound {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrRouteNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindDistanceDirectionAgnostic(t *testing.T) {
	table := fixtureTable(t)

	forward, err := table.FindDistance("Toronto, ON", "Ottawa, ON")
	require.NoError(t, err)
	backward, err := table.FindDistance("Ottawa, ON", "Toronto, ON")
	require.NoError(t, err)

	assert.Equal(t, forward, backward)
}

func TestFindDistanceFirstMatchWins(t *testing.T) {
	// Two entries disagree on the same pair; the earlier entry wins.
	table, err := NewTable([]Route{
		{Origin: "Toronto, ON", Destination: "Ottawa, ON", DistanceKm: 451},
		{Origin: "Ottawa, ON", Destination: "Toronto, ON", DistanceKm: 999},
	})
	require.NoError(t, err)

	got, err := table.FindDistance("Ottawa, ON", "Toronto, ON")
	require.NoError(t, err)
	assert.Equal(t, 451.0, got)
}

func TestCities(t *testing.T) {
	table := fixtureTable(t)

	cities := table.Cities()
	assert.Equal(t, []string{"Montreal, QC", "Ottawa, ON", "Toronto, ON"}, cities)
	assert.True(t, sort.StringsAreSorted(cities))

	// Stable across calls.
	assert.Equal(t, cities, table.Cities())
}

func TestRoutesReturnsCopy(t *testing.T) {
	table := fixtureTable(t)

	rr := table.Routes()
	rr[0].DistanceKm = 1

	got, err := table.FindDistance("Toronto, ON", "Ottawa, ON")
	require.NoError(t, err)
	assert.Equal(t, 451.0, got)
}

func TestDefaultTable(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Positive(t, table.Len())

	// The embedded dataset carries the reference pair.
	dist, err := table.FindDistance("Toronto, ON", "Ottawa, ON")
	require.NoError(t, err)
	assert.Equal(t, 451.0, dist)

	// Default is memoized.
	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, table, again)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("routes: [not a route"))
	require.Error(t, err)
}

func TestParseRejectsInvalidRoutes(t *testing.T) {
	data := []byte("routes:\n  - origin: \"A\"\n    destination: \"B\"\n    distance_km: -1\n")
	_, err := Parse(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRoute))
}
