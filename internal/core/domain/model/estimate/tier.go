package estimate

import (
	"fmt"

	"geodelivery/internal/pkg/errs"
)

// Tier classifies a delivery route by decreasing locality. The tiers model
// locality (exact address, same city, same state, bordering state, distant
// state) as a monotonic proxy for physical transit distance, without needing
// real route data. Each tier carries a day-count range used by the
// scheduler.
//
// Day ranges are monotonically non-decreasing across the tiers:
//
//	SameAddress       {1,1}
//	SameSettlement    {1,2}
//	SameRegion        {2,3}
//	NeighboringRegion {3,4}
//	DistantRegion     {4,5}
type Tier int

const (
	// UnknownTier represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Tier values.
	UnknownTier Tier = iota

	// SameAddress is the tier for identical origin and destination codes.
	SameAddress

	// SameSettlement is the tier for two different codes within the same
	// known city.
	SameSettlement

	// SameRegion is the tier for different settlements within one region.
	SameRegion

	// NeighboringRegion is the tier for routes between bordering regions.
	NeighboringRegion

	// DistantRegion is the conservative default tier: different
	// non-adjacent regions, or either side unresolved.
	DistantRegion
)

type tierSpec struct {
	name       string
	minDays    int
	maxDays    int
	rangeLabel string
}

func getTierSpecs() map[Tier]tierSpec {
	return map[Tier]tierSpec{
		SameAddress:       {name: "SameAddress", minDays: 1, maxDays: 1, rangeLabel: "1"},
		SameSettlement:    {name: "SameSettlement", minDays: 1, maxDays: 2, rangeLabel: "1-2"},
		SameRegion:        {name: "SameRegion", minDays: 2, maxDays: 3, rangeLabel: "2-3"},
		NeighboringRegion: {name: "NeighboringRegion", minDays: 3, maxDays: 4, rangeLabel: "3-4"},
		DistantRegion:     {name: "DistantRegion", minDays: 4, maxDays: 5, rangeLabel: "4-5"},
	}
}

// Validate checks if the Tier value is one of the five defined tiers.
// UnknownTier (0) and any other values are invalid.
func (t Tier) Validate() error {
	if _, ok := getTierSpecs()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("tier is invalid",
			fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the tier's name.
// This method implements the fmt.Stringer interface and is safe to call on
// any Tier value, including invalid ones.
func (t Tier) String() string {
	if spec, ok := getTierSpecs()[t]; ok {
		return spec.name
	}
	return "Unknown"
}

// MinDays returns the lower bound of the tier's delivery day count.
// Returns 0 for invalid tiers.
func (t Tier) MinDays() int {
	return getTierSpecs()[t].minDays
}

// MaxDays returns the upper bound of the tier's delivery day count.
// Returns 0 for invalid tiers.
func (t Tier) MaxDays() int {
	return getTierSpecs()[t].maxDays
}

// RangeLabel returns the human-readable day range, e.g. "2-3".
// The single-day SameAddress tier labels as "1".
func (t Tier) RangeLabel() string {
	return getTierSpecs()[t].rangeLabel
}
