package services_test

import (
	"testing"

	"geodelivery/internal/core/domain/model/estimate"
	"geodelivery/internal/core/domain/model/geo"
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPostalCode(t *testing.T, raw string) kernel.PostalCode {
	t.Helper()
	code, err := kernel.NewPostalCode(raw)
	require.NoError(t, err)
	return code
}

func newCalculator() services.TierCalculator {
	return services.NewTierCalculator(geo.NewDirectory(), geo.NewAdjacencyGraph())
}

func TestTierCalculator_Classify(t *testing.T) {
	calc := newCalculator()

	tests := []struct {
		name        string
		origin      string
		destination string
		want        estimate.Tier
		wantRange   string
	}{
		{
			name:        "identical codes",
			origin:      "400001",
			destination: "400001",
			want:        estimate.SameAddress,
			wantRange:   "1",
		},
		{
			name:        "same settlement, different code",
			origin:      "400001",
			destination: "400018",
			want:        estimate.SameSettlement,
			wantRange:   "1-2",
		},
		{
			name:        "same region, different settlement",
			origin:      "400001",
			destination: "411001",
			want:        estimate.SameRegion,
			wantRange:   "2-3",
		},
		{
			name:        "neighboring regions",
			origin:      "400001",
			destination: "560001",
			want:        estimate.NeighboringRegion,
			wantRange:   "3-4",
		},
		{
			name:        "distant regions",
			origin:      "400001",
			destination: "110001",
			want:        estimate.DistantRegion,
			wantRange:   "4-5",
		},
		{
			name:        "neighboring via directed-only border row",
			origin:      "110001",
			destination: "122001",
			want:        estimate.NeighboringRegion,
			wantRange:   "3-4",
		},
		{
			name:        "unresolved destination falls to worst case",
			origin:      "400001",
			destination: "650001",
			want:        estimate.DistantRegion,
			wantRange:   "4-5",
		},
		{
			name:        "both unresolved falls to worst case",
			origin:      "650001",
			destination: "651002",
			want:        estimate.DistantRegion,
			wantRange:   "4-5",
		},
		{
			name:        "same region without settlement data",
			origin:      "431001",
			destination: "442001",
			want:        estimate.SameRegion,
			wantRange:   "2-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := calc.Classify(mustPostalCode(t, tt.origin), mustPostalCode(t, tt.destination))
			require.NoError(t, err)
			assert.Equal(t, tt.want, tier)
			assert.Equal(t, tt.wantRange, tier.RangeLabel())
		})
	}
}

// classify(c, c) yields the identity tier for any valid code, even ones the
// reference tables cannot resolve.
func TestTierCalculator_IdentityShortcut(t *testing.T) {
	calc := newCalculator()

	for _, raw := range []string{"400001", "110001", "650001", "858585"} {
		tier, err := calc.Classify(mustPostalCode(t, raw), mustPostalCode(t, raw))
		require.NoError(t, err)
		assert.Equal(t, estimate.SameAddress, tier, "code %s", raw)
	}
}

// Day ranges never decrease as pairs of reference codes move down the
// locality ladder.
func TestTierCalculator_MonotonicAcrossReferencePairs(t *testing.T) {
	calc := newCalculator()

	pairs := [][2]string{
		{"400001", "400001"}, // same address
		{"400001", "400018"}, // same settlement
		{"400001", "411001"}, // same region
		{"400001", "560001"}, // neighboring regions
		{"400001", "110001"}, // distant regions
	}

	prevMin, prevMax := 0, 0
	for _, pair := range pairs {
		tier, err := calc.Classify(mustPostalCode(t, pair[0]), mustPostalCode(t, pair[1]))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, tier.MinDays(), prevMin, "pair %v", pair)
		assert.GreaterOrEqual(t, tier.MaxDays(), prevMax, "pair %v", pair)
		prevMin, prevMax = tier.MinDays(), tier.MaxDays()
	}
}

func TestTierCalculator_UnconstructedCodes(t *testing.T) {
	calc := newCalculator()

	var zero kernel.PostalCode
	_, err := calc.Classify(zero, mustPostalCode(t, "400001"))
	assert.Error(t, err)

	_, err = calc.Classify(mustPostalCode(t, "400001"), zero)
	assert.Error(t, err)
}

// Two codes in regions that only the shadowed duplicate row would separate
// still classify deterministically with the kept row.
func TestTierCalculator_DuplicatePrefixDeterminism(t *testing.T) {
	calc := newCalculator()

	// 500xxx keeps TG (last row); 520xxx is AP. TG borders AP.
	tier, err := calc.Classify(mustPostalCode(t, "500001"), mustPostalCode(t, "520001"))
	require.NoError(t, err)
	assert.Equal(t, estimate.NeighboringRegion, tier)
}
