package geo

// BorderEntry is one row of the region border reference table: a region and
// the regions it lists as neighbors. The table is directed as written; it is
// not guaranteed that every listed edge appears in both directions.
type BorderEntry struct {
	Region    RegionCode
	Neighbors []RegionCode
}

// AsymmetricEdge records a directed border row whose reverse direction is
// missing from the table. Kept for the audit job; query-time adjacency is
// unaffected because AreNeighbors checks both directions.
type AsymmetricEdge struct {
	From RegionCode
	To   RegionCode
}

// AdjacencyGraph is the static undirected-in-intent graph over regions
// encoding which regions border each other. Because the source rows may be
// asymmetric, edges are stored as written and adjacency is answered with
// directional-OR semantics rather than "fixed" at load time, which could
// silently change classification results.
//
// An AdjacencyGraph is immutable after construction and safe for concurrent
// use.
type AdjacencyGraph struct {
	neighbors  map[RegionCode]map[RegionCode]struct{}
	asymmetric []AsymmetricEdge
}

// NewAdjacencyGraph creates the graph over the shipped border table.
func NewAdjacencyGraph() *AdjacencyGraph {
	return NewAdjacencyGraphFromEntries(referenceBorderEntries())
}

// NewAdjacencyGraphFromEntries creates a graph from explicit border rows.
// Tests use this constructor to substitute alternate tables.
func NewAdjacencyGraphFromEntries(entries []BorderEntry) *AdjacencyGraph {
	g := &AdjacencyGraph{
		neighbors: make(map[RegionCode]map[RegionCode]struct{}, len(entries)),
	}

	for _, entry := range entries {
		set, ok := g.neighbors[entry.Region]
		if !ok {
			set = make(map[RegionCode]struct{}, len(entry.Neighbors))
			g.neighbors[entry.Region] = set
		}
		for _, neighbor := range entry.Neighbors {
			set[neighbor] = struct{}{}
		}
	}

	for region, set := range g.neighbors {
		for neighbor := range set {
			if !g.listed(neighbor, region) {
				g.asymmetric = append(g.asymmetric, AsymmetricEdge{From: region, To: neighbor})
			}
		}
	}

	return g
}

// AreNeighbors reports whether two regions border each other.
// True iff b is a listed neighbor of a OR a is a listed neighbor of b.
// UnknownRegion is never adjacent to anything, including itself.
func (g *AdjacencyGraph) AreNeighbors(a, b RegionCode) bool {
	if !a.IsKnown() || !b.IsKnown() {
		return false
	}
	return g.listed(a, b) || g.listed(b, a)
}

// AsymmetricEdges returns the directed rows with no reverse counterpart,
// for data-owner review. The returned slice is a copy.
func (g *AdjacencyGraph) AsymmetricEdges() []AsymmetricEdge {
	out := make([]AsymmetricEdge, len(g.asymmetric))
	copy(out, g.asymmetric)
	return out
}

func (g *AdjacencyGraph) listed(from, to RegionCode) bool {
	set, ok := g.neighbors[from]
	if !ok {
		return false
	}
	_, ok = set[to]
	return ok
}
