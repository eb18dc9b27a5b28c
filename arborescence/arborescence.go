package arborescence

import (
	"github.com/cgmlst/grapetree/distance"
	"github.com/cgmlst/grapetree/edge"
)

// Compute builds a minimum arborescence rooted at vertex 0 over an
// asymmetric distance matrix.
//
// Phases:
//  1. Pick each non-root vertex's cheapest incoming edge (C1).
//  2. Detect cycles among those picks via union-find (C2).
//  3. If any cycle exists, contract it, recursively solve the smaller
//     instance, and expand the solution back (C3-C4).
//  4. Greedily improve the tree with local branch swaps (C5).
//
// The result always has exactly N-1 edges: every vertex in 1..N-1 appears
// as "to" exactly once, and vertex 0 never appears as "to".
func Compute(matrix distance.Matrix) ([]edge.Edge, error) {
	n := matrix.N()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if n == 1 {
		return []edge.Edge{}, nil
	}

	edges := minimumIncomingEdges(matrix)
	cycleID := detectCycles(edges, n)

	if hasCycles(cycleID) {
		var err error
		edges, err = contractAndSolve(matrix, edges, cycleID)
		if err != nil {
			return nil, err
		}
	}

	recraftBranches(matrix, edges)

	return edges, nil
}
