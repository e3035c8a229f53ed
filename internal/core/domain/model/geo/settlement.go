package geo

// UnknownSettlementName is the name carried by settlements that could not be
// resolved from the 3-digit prefix table. The settlement table is sparse:
// only explicitly enumerated cities resolve, everything else degrades to an
// unknown settlement whose Region still comes from the 2-digit table.
const UnknownSettlementName = "Unknown"

// Settlement is a named city together with its owning region, produced by
// 3-digit prefix lookup on a postal code.
type Settlement struct {
	Name   string
	Region RegionCode
}

// IsKnown reports whether the settlement was actually resolved from the
// reference table. Unknown settlements still may carry a known Region.
func (s Settlement) IsKnown() bool {
	return s.Name != UnknownSettlementName && s.Name != ""
}

// IsSame reports whether two settlements are the same known city.
// Two unknown settlements are never considered the same: the tier
// classification must not treat two unresolved codes as neighbors in the
// same city.
func (s Settlement) IsSame(other Settlement) bool {
	return s.IsKnown() && other.IsKnown() && s.Name == other.Name
}
