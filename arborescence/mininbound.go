package arborescence

import (
	"math"

	"github.com/cgmlst/grapetree/distance"
	"github.com/cgmlst/grapetree/edge"
)

// minimumIncomingEdges finds, for every non-root vertex, the cheapest edge
// that could feed it (Phase C1). Ties within tolerance are broken by
// preferring the "from" vertex with the larger harmonic-mean score of its
// outgoing distances — the same tiebreak mstree uses, applied here to rows
// of the asymmetric matrix.
func minimumIncomingEdges(matrix distance.Matrix) []edge.Edge {
	n := matrix.N()
	edges := make([]edge.Edge, 0, n-1)

	for to := 1; to < n; to++ {
		minDist := math.MaxFloat64
		bestFrom := -1
		bestScore := -1.0

		for from := 0; from < n; from++ {
			if from == to {
				continue
			}

			dist := matrix.At(from, to)
			switch {
			case dist < minDist:
				minDist = dist
				bestFrom = from
				bestScore = matrix.HarmonicMeanScore(from)
			case math.Abs(dist-minDist) < tolerance:
				score := matrix.HarmonicMeanScore(from)
				if score > bestScore {
					bestFrom = from
					bestScore = score
				}
			}
		}

		if bestFrom != -1 {
			edges = append(edges, edge.New(bestFrom, to, minDist))
		}
	}

	return edges
}
