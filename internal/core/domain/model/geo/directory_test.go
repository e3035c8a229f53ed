package geo_test

import (
	"testing"

	"geodelivery/internal/core/domain/model/geo"
	"geodelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPostalCode(t *testing.T, raw string) kernel.PostalCode {
	t.Helper()
	code, err := kernel.NewPostalCode(raw)
	require.NoError(t, err)
	return code
}

func TestDirectory_ResolveRegion(t *testing.T) {
	directory := geo.NewDirectory()

	tests := []struct {
		code string
		want geo.RegionCode
	}{
		{"400001", "MH"},
		{"411001", "MH"},
		{"560001", "KA"},
		{"110001", "DL"},
		{"700091", "WB"},
		{"682001", "KL"},
		// prefix 65 is absent from the table
		{"650001", geo.UnknownRegion},
		// prefix 29 is absent from the table
		{"290001", geo.UnknownRegion},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			region := directory.ResolveRegion(mustPostalCode(t, tt.code))
			assert.Equal(t, tt.want, region)
		})
	}
}

func TestDirectory_ResolveSettlement(t *testing.T) {
	directory := geo.NewDirectory()

	tests := []struct {
		code       string
		wantName   string
		wantRegion geo.RegionCode
	}{
		{"400001", "Mumbai", "MH"},
		{"411038", "Pune", "MH"},
		{"560034", "Bengaluru", "KA"},
		{"110001", "New Delhi", "DL"},
		// 431 is within MH but not in the settlement table:
		// degrades to region-only resolution
		{"431001", geo.UnknownSettlementName, "MH"},
		// neither table matches
		{"650001", geo.UnknownSettlementName, geo.UnknownRegion},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			settlement := directory.ResolveSettlement(mustPostalCode(t, tt.code))
			assert.Equal(t, tt.wantName, settlement.Name)
			assert.Equal(t, tt.wantRegion, settlement.Region)
		})
	}
}

// Settlement resolution and region resolution must never disagree for the
// same code, for every prefix in the shipped tables.
func TestDirectory_SettlementRegionConsistency(t *testing.T) {
	directory := geo.NewDirectory()

	codes := []string{
		"110001", "122001", "201301", "226001", "302001", "380001",
		"400001", "411001", "416001", "440001", "500001", "520001",
		"560001", "600001", "682001", "700001", "751001", "800001",
		"650001", "290001",
	}

	for _, raw := range codes {
		code := mustPostalCode(t, raw)
		settlement := directory.ResolveSettlement(code)
		assert.Equal(t, directory.ResolveRegion(code), settlement.Region, "code %s", raw)
	}
}

func TestDirectory_DuplicatePrefixLastWriteWins(t *testing.T) {
	directory := geo.NewDirectory()

	t.Run("region prefix 50 resolves to the last row", func(t *testing.T) {
		region := directory.ResolveRegion(mustPostalCode(t, "501001"))
		assert.Equal(t, geo.RegionCode("TG"), region)
	})

	t.Run("settlement prefix 416 resolves to the last row", func(t *testing.T) {
		settlement := directory.ResolveSettlement(mustPostalCode(t, "416001"))
		assert.Equal(t, "Sangli", settlement.Name)
	})

	t.Run("shadowed rows are recorded as conflicts", func(t *testing.T) {
		conflicts := directory.Conflicts()
		require.Len(t, conflicts, 2)

		assert.Equal(t, "regions", conflicts[0].Table)
		assert.Equal(t, "50", conflicts[0].Prefix)
		assert.Equal(t, "TG", conflicts[0].Kept)
		assert.Equal(t, "AP", conflicts[0].Shadowed)

		assert.Equal(t, "settlements", conflicts[1].Table)
		assert.Equal(t, "416", conflicts[1].Prefix)
		assert.Equal(t, "Sangli", conflicts[1].Kept)
		assert.Equal(t, "Kolhapur", conflicts[1].Shadowed)
	})
}

func TestNewDirectoryFromEntries(t *testing.T) {
	directory := geo.NewDirectoryFromEntries(
		[]geo.RegionEntry{
			{Prefix: "40", Region: "MH"},
			{Prefix: "40", Region: "GJ"},
		},
		[]geo.SettlementEntry{
			{Prefix: "400", Name: "Mumbai", Region: "MH"},
		},
	)

	assert.Equal(t, geo.RegionCode("GJ"), directory.ResolveRegion(mustPostalCode(t, "400001")))

	conflicts := directory.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, "40", conflicts[0].Prefix)

	// settlement hit still takes its region from the 2-digit table
	settlement := directory.ResolveSettlement(mustPostalCode(t, "400001"))
	assert.Equal(t, "Mumbai", settlement.Name)
	assert.Equal(t, geo.RegionCode("GJ"), settlement.Region)
}

func TestSettlement_IsSame(t *testing.T) {
	mumbai := geo.Settlement{Name: "Mumbai", Region: "MH"}
	mumbaiAgain := geo.Settlement{Name: "Mumbai", Region: "MH"}
	pune := geo.Settlement{Name: "Pune", Region: "MH"}
	unknown := geo.Settlement{Name: geo.UnknownSettlementName, Region: "MH"}
	unknownToo := geo.Settlement{Name: geo.UnknownSettlementName, Region: "KA"}

	assert.True(t, mumbai.IsSame(mumbaiAgain))
	assert.False(t, mumbai.IsSame(pune))
	assert.False(t, mumbai.IsSame(unknown))
	// two unresolved settlements are never the same city
	assert.False(t, unknown.IsSame(unknownToo))
}
