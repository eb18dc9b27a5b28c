package arborescence

import (
	"github.com/cgmlst/grapetree/distance"
	"github.com/cgmlst/grapetree/edge"
)

// recraftBranches implements Phase C5: a greedy local-improvement pass
// over adjacent tree edges. For up to maxRecraftIterations full passes, it
// considers every pair of edges that share a vertex and, whenever the
// cheaper of the two cross-connection costs from swapCost is strictly below
// the pair's current cost, exchanges their "to" endpoints via performSwap.
// The cost of the exchange actually applied is not compared separately, so
// an applied exchange does not necessarily lower total weight.
func recraftBranches(matrix distance.Matrix, tree []edge.Edge) {
	improved := true
	iteration := 0

	for improved && iteration < maxRecraftIterations {
		improved = false
		iteration++

		for i := 0; i < len(tree); i++ {
			for j := i + 1; j < len(tree); j++ {
				if !canSwap(tree[i], tree[j]) {
					continue
				}

				currentCost := tree[i].Distance + tree[j].Distance
				cost := swapCost(matrix, tree[i], tree[j])

				if cost < currentCost-tolerance && performSwap(matrix, tree, i, j) {
					improved = true
				}
			}
		}
	}
}

// canSwap reports whether e1 and e2 share at least one endpoint, the
// precondition for considering them an adjacent pair.
func canSwap(e1, e2 edge.Edge) bool {
	return e1.From == e2.From || e1.From == e2.To ||
		e1.To == e2.From || e1.To == e2.To
}

// swapCost estimates the cost of the two alternative cross-connections
// between e1 and e2, independent of which one performSwap actually
// applies (it always exchanges the "to" endpoints). This mirrors the
// reference algorithm exactly: the comparison and the performed move are
// not required to use the same alternative.
func swapCost(matrix distance.Matrix, e1, e2 edge.Edge) float64 {
	cost1 := matrix.At(e1.From, e2.To) + matrix.At(e2.From, e1.To)
	cost2 := matrix.At(e1.To, e2.From) + matrix.At(e2.To, e1.From)
	if cost1 < cost2 {
		return cost1
	}
	return cost2
}

// performSwap exchanges the "to" endpoints of tree[i] and tree[j] and
// recomputes both edges' distances from matrix. Because the exchange
// always preserves the set of "to" values, in-degree-1 can only be
// violated by a self-loop (from == to on either resulting edge) — the
// reference implementation never checks for this; this port rejects the
// swap instead of applying it. Returns whether the swap was applied.
func performSwap(matrix distance.Matrix, tree []edge.Edge, i, j int) bool {
	e1, e2 := tree[i], tree[j]
	newTo1, newTo2 := e2.To, e1.To

	if newTo1 == e1.From || newTo2 == e2.From {
		return false
	}

	tree[i] = edge.New(e1.From, newTo1, matrix.At(e1.From, newTo1))
	tree[j] = edge.New(e2.From, newTo2, matrix.At(e2.From, newTo2))

	return true
}
