package services

import (
	"errors"

	"geodelivery/internal/core/domain/model/estimate"
	"geodelivery/internal/core/domain/model/geo"
	"geodelivery/internal/core/domain/model/kernel"
)

// TierCalculator is a domain service that classifies a delivery route into
// one of the locality tiers using tiered geographic resolution over the
// static reference tables.
//
// Classification rules, first match wins:
//  1. Identical postal codes -> SameAddress
//  2. Both codes resolve to the same known settlement -> SameSettlement
//  3. Both codes resolve to the same region -> SameRegion
//  4. Regions border each other -> NeighboringRegion
//  5. Otherwise (distant or unresolved) -> DistantRegion
//
// The calculator is a pure function of its inputs and the injected tables;
// it performs no I/O and is safe for concurrent use.
//
// Example:
//
//	calc := services.NewTierCalculator(geo.NewDirectory(), geo.NewAdjacencyGraph())
//	origin, _ := kernel.NewPostalCode("400001")
//	destination, _ := kernel.NewPostalCode("411001")
//
//	tier, err := calc.Classify(origin, destination)
//	// tier == estimate.SameRegion, range "2-3"
type TierCalculator struct {
	directory *geo.Directory
	borders   *geo.AdjacencyGraph
}

// NewTierCalculator creates a calculator over the given reference tables.
// Tables are injected rather than read from globals so tests can substitute
// alternate data.
func NewTierCalculator(directory *geo.Directory, borders *geo.AdjacencyGraph) TierCalculator {
	return TierCalculator{
		directory: directory,
		borders:   borders,
	}
}

// Classify determines the delivery tier for a route from origin to
// destination. Both codes must be properly constructed; given that, the
// classification is total - unresolved geography lands in the conservative
// DistantRegion tier instead of failing.
func (c TierCalculator) Classify(origin, destination kernel.PostalCode) (estimate.Tier, error) {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return estimate.UnknownTier, err
	}

	if origin.IsEqual(destination) {
		return estimate.SameAddress, nil
	}

	originSettlement := c.directory.ResolveSettlement(origin)
	destinationSettlement := c.directory.ResolveSettlement(destination)

	if originSettlement.IsSame(destinationSettlement) {
		return estimate.SameSettlement, nil
	}

	originRegion := originSettlement.Region
	destinationRegion := destinationSettlement.Region

	if originRegion.IsKnown() && originRegion == destinationRegion {
		return estimate.SameRegion, nil
	}

	if c.borders.AreNeighbors(originRegion, destinationRegion) {
		return estimate.NeighboringRegion, nil
	}

	return estimate.DistantRegion, nil
}
