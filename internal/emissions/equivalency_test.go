package emissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquivalencies(t *testing.T) {
	tests := []struct {
		name        string
		emissionKg  float64
		wantMiles   float64
		wantPhones  float64
		wantIsEmpty bool
		wantErr     bool
	}{
		{
			name:       "150kg reference values",
			emissionKg: 150.0,
			wantMiles:  781.25,    // 150 / 0.192
			wantPhones: 18248.175, // 150 / 0.00822 (approx)
		},
		{
			name:        "below threshold returns empty",
			emissionKg:  0.5,
			wantIsEmpty: true,
		},
		{
			name:       "exactly at threshold",
			emissionKg: 1.0,
			wantMiles:  5.208333,
			wantPhones: 121.654501,
		},
		{
			name:        "zero value returns empty",
			emissionKg:  0.0,
			wantIsEmpty: true,
		},
		{
			name:       "negative value returns error",
			emissionKg: -100.0,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Equivalencies(tt.emissionKg)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEmission)
				assert.True(t, got.IsEmpty)
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, got.IsEmpty)
				assert.Empty(t, got.DisplayText())
				return
			}

			assert.False(t, got.IsEmpty)
			assert.InDelta(t, tt.wantMiles, got.MilesDriven, 0.01)
			assert.InDelta(t, tt.wantPhones, got.SmartphonesCharged, 0.01)
			assert.Positive(t, got.TreeSeedlings)
			assert.Contains(t, got.DisplayText(), "driving")
			assert.Contains(t, got.DisplayText(), "smartphones")
		})
	}
}

func TestEquivalencyDisplayTextFormatting(t *testing.T) {
	got, err := Equivalencies(150.0)
	require.NoError(t, err)

	text := got.DisplayText()
	assert.Contains(t, text, "781")    // rounded miles
	assert.Contains(t, text, "18,248") // thousand separator
}
