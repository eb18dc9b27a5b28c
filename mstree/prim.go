package mstree

import (
	"math"

	"github.com/cgmlst/grapetree/distance"
	"github.com/cgmlst/grapetree/edge"
)

// Compute builds a spanning tree over the N vertices of a symmetric
// distance matrix using Prim's algorithm, starting from vertex 0.
//
// Steps:
//  1. Validate N >= 1; reject an unknown heuristic.
//  2. Seed min_distance/parent from vertex 0; mark it in-tree.
//  3. Repeat N-1 times: find the minimum tentative distance, collect every
//     unvisited vertex within tolerance of it (the tie set), pick one via
//     the chosen heuristic, emit (parent[chosen], chosen, min_dist), then
//     relax distances to the remaining unvisited vertices.
//
// Complexity: O(N) memory and a linear scan per iteration, O(N^2) time
// overall when tie sets stay small. Each tie-break costs O(N) per
// candidate, so inputs where most vertices tie (e.g. identical profiles)
// take up to O(N^3) time.
func Compute(matrix distance.Matrix, heuristic Heuristic) ([]edge.Edge, error) {
	n := matrix.N()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if heuristic != EBurst && heuristic != Harmonic {
		return nil, ErrUnknownHeuristic
	}
	if n == 1 {
		return []edge.Edge{}, nil
	}

	inTree := make([]bool, n)
	minDistance := make([]float64, n)
	parent := make([]int, n)

	const start = 0
	inTree[start] = true
	for i := 0; i < n; i++ {
		if i != start {
			minDistance[i] = matrix.At(start, i)
			parent[i] = start
		}
	}

	edges := make([]edge.Edge, 0, n-1)

	for count := 1; count < n; count++ {
		minDist := math.MaxFloat64
		for i := 0; i < n; i++ {
			if !inTree[i] && minDistance[i] < minDist {
				minDist = minDistance[i]
			}
		}

		chosen := selectWithTiebreak(matrix, inTree, minDistance, minDist, heuristic)

		edges = append(edges, edge.New(parent[chosen], chosen, minDist))
		inTree[chosen] = true

		for i := 0; i < n; i++ {
			if inTree[i] {
				continue
			}
			if d := matrix.At(chosen, i); d < minDistance[i] {
				minDistance[i] = d
				parent[i] = chosen
			}
		}
	}

	return edges, nil
}

// selectWithTiebreak collects every unvisited vertex within tolerance of
// minDist (the tie set) and resolves it to a single winner via heuristic.
func selectWithTiebreak(matrix distance.Matrix, inTree []bool, minDistance []float64, minDist float64, heuristic Heuristic) int {
	n := len(minDistance)
	candidates := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !inTree[i] && math.Abs(minDistance[i]-minDist) < tolerance {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 1 {
		return candidates[0]
	}

	if heuristic == EBurst {
		return eburstTiebreak(matrix, candidates, inTree, minDist)
	}
	return harmonicTiebreak(matrix, candidates)
}

// eburstTiebreak prefers the candidate connected to the most in-tree
// vertices at the minimum tied distance; ties broken by lowest index.
func eburstTiebreak(matrix distance.Matrix, candidates []int, inTree []bool, minDist float64) int {
	best := candidates[0]
	maxConnections := 0

	for _, node := range candidates {
		connections := 0
		for j := 0; j < matrix.N(); j++ {
			if inTree[j] && math.Abs(matrix.At(node, j)-minDist) < tolerance {
				connections++
			}
		}
		if connections > maxConnections {
			maxConnections = connections
			best = node
		} else if connections == maxConnections && node < best {
			best = node
		}
	}

	return best
}

// harmonicTiebreak prefers the candidate with the largest harmonic-mean
// score; ties broken by lowest index.
func harmonicTiebreak(matrix distance.Matrix, candidates []int) int {
	best := candidates[0]
	bestScore := -1.0

	for _, node := range candidates {
		score := matrix.HarmonicMeanScore(node)
		if score > bestScore {
			bestScore = score
			best = node
		} else if math.Abs(score-bestScore) < tolerance && node < best {
			best = node
		}
	}

	return best
}
