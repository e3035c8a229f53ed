package geo

// RegionCode identifies a state-level administrative area, derived from the
// first 2 digits of a postal code. It is a plain short tag ("MH", "KA", ...)
// rather than a guarded value object: region codes only ever originate from
// the static reference table, so there is no external input to validate.
type RegionCode string

// UnknownRegion is the sentinel returned when a postal code's region prefix
// is not present in the reference table. Resolution never fails; it degrades
// to this value instead. UnknownRegion is never adjacent to any region,
// including itself.
const UnknownRegion RegionCode = "Unknown"

// IsKnown reports whether the region was actually resolved from the
// reference table.
func (r RegionCode) IsKnown() bool {
	return r != UnknownRegion && r != ""
}

// String returns the region tag.
func (r RegionCode) String() string {
	return string(r)
}
