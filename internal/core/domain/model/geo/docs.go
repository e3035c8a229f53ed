// Package geo provides the geographic reference model for delivery
// estimation: state-level regions, city-level settlements, and the border
// graph between regions.
//
// Resolution is tiered and prefix-based. The first 2 digits of a postal
// code key the region table; the first 3 digits key the sparser settlement
// table. Both lookups degrade gracefully to Unknown values instead of
// failing, reflecting the design intent that an estimate should always be
// produced - accuracy degrades before availability does.
//
// The reference tables are hand-curated snapshots, not an authoritative
// registry. Known data irregularities - duplicate prefixes in the lookup
// tables and asymmetric border rows - are resolved deterministically at load
// time (last entry wins, directional-OR adjacency) and surfaced through
// Directory.Conflicts and AdjacencyGraph.AsymmetricEdges so the audit job
// can flag them for data-owner review.
//
// All types in this package are immutable after construction and safe for
// concurrent use.
package geo
