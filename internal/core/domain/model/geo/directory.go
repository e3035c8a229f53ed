package geo

import (
	"geodelivery/internal/core/domain/model/kernel"
)

// RegionEntry is one row of the 2-digit prefix reference table.
type RegionEntry struct {
	Prefix string
	Region RegionCode
}

// SettlementEntry is one row of the 3-digit prefix reference table.
type SettlementEntry struct {
	Prefix string
	Name   string
	Region RegionCode
}

// Conflict records a duplicate prefix in a reference table: the same key
// defined twice with different values. Duplicates are almost certainly data
// bugs upstream; the loader resolves them deterministically (last entry
// wins) and keeps the shadowed value here so the audit job can flag it for
// data-owner review instead of the overwrite happening silently.
type Conflict struct {
	Table    string
	Prefix   string
	Kept     string
	Shadowed string
}

const (
	conflictTableRegions     = "regions"
	conflictTableSettlements = "settlements"
)

// Directory resolves postal codes to regions and settlements using the two
// static prefix tables. Lookups are O(1) map accesses on fixed-length keys.
//
// A Directory is immutable after construction and safe for concurrent use.
// Resolution never fails: unmatched prefixes degrade to UnknownRegion and
// an unknown settlement rather than producing an error.
type Directory struct {
	regions     map[string]RegionCode
	settlements map[string]Settlement
	conflicts   []Conflict
}

// NewDirectory creates a Directory over the shipped reference tables.
func NewDirectory() *Directory {
	return NewDirectoryFromEntries(referenceRegionEntries(), referenceSettlementEntries())
}

// NewDirectoryFromEntries creates a Directory from explicit table rows.
// Tests use this constructor to substitute alternate tables.
//
// Duplicate prefixes resolve last-write-wins, in entry order; every shadowed
// row is recorded as a Conflict.
func NewDirectoryFromEntries(regions []RegionEntry, settlements []SettlementEntry) *Directory {
	d := &Directory{
		regions:     make(map[string]RegionCode, len(regions)),
		settlements: make(map[string]Settlement, len(settlements)),
	}

	for _, entry := range regions {
		if existing, ok := d.regions[entry.Prefix]; ok && existing != entry.Region {
			d.conflicts = append(d.conflicts, Conflict{
				Table:    conflictTableRegions,
				Prefix:   entry.Prefix,
				Kept:     string(entry.Region),
				Shadowed: string(existing),
			})
		}
		d.regions[entry.Prefix] = entry.Region
	}

	for _, entry := range settlements {
		if existing, ok := d.settlements[entry.Prefix]; ok && existing.Name != entry.Name {
			d.conflicts = append(d.conflicts, Conflict{
				Table:    conflictTableSettlements,
				Prefix:   entry.Prefix,
				Kept:     entry.Name,
				Shadowed: existing.Name,
			})
		}
		d.settlements[entry.Prefix] = Settlement{Name: entry.Name, Region: entry.Region}
	}

	return d
}

// ResolveRegion maps a postal code to its state-level region using the first
// 2 digits. Unmatched prefixes resolve to UnknownRegion; this method never
// fails.
func (d *Directory) ResolveRegion(code kernel.PostalCode) RegionCode {
	if region, ok := d.regions[code.RegionPrefix()]; ok {
		return region
	}
	return UnknownRegion
}

// ResolveSettlement maps a postal code to its settlement using the first
// 3 digits. On a miss, resolution degrades gracefully to region-only: the
// result carries UnknownSettlementName with the region from ResolveRegion.
//
// The 2-digit table is authoritative for the region even on a settlement
// hit, so settlement and region resolution can never disagree for the same
// code.
func (d *Directory) ResolveSettlement(code kernel.PostalCode) Settlement {
	region := d.ResolveRegion(code)

	if settlement, ok := d.settlements[code.SettlementPrefix()]; ok {
		return Settlement{Name: settlement.Name, Region: region}
	}

	return Settlement{Name: UnknownSettlementName, Region: region}
}

// Conflicts returns the duplicate-prefix rows found while loading the
// tables, in encounter order. The returned slice is a copy.
func (d *Directory) Conflicts() []Conflict {
	out := make([]Conflict, len(d.conflicts))
	copy(out, d.conflicts)
	return out
}
