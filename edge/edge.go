// Package edge defines the directed Edge triple shared by the mstree,
// arborescence and newick packages: the common currency between
// Component B/C (tree builders) and Component D (the Newick serializer).
package edge

// Edge is a directed (from, to, distance) triple. Edges produced by the
// classical MST builder are semantically undirected — from/to record
// construction order only. Edges produced by the arborescence builder are
// directed from parent to child.
type Edge struct {
	From     int
	To       int
	Distance float64
}

// New constructs an Edge.
func New(from, to int, distance float64) Edge {
	return Edge{From: from, To: to, Distance: distance}
}

// TotalWeight sums the Distance field over a slice of edges.
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Distance
	}
	return total
}
