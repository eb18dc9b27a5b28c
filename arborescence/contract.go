package arborescence

import (
	"math"

	"github.com/cgmlst/grapetree/distance"
	"github.com/cgmlst/grapetree/edge"
)

// contractedPair identifies an ordered pair of contracted-graph indices.
type contractedPair struct {
	from, to int
}

// contractAndSolve implements Phases C3-C4: it collapses every cycle found
// in cycleID into a single contracted vertex, builds the reduced
// contracted distance matrix, recursively solves the smaller instance, and
// expands the recursive solution back into this level's vertex space.
//
// The returned edges live in the same index space as matrix/edges — the
// caller never needs to translate indices further, regardless of how many
// contraction levels happen underneath.
func contractAndSolve(matrix distance.Matrix, edges []edge.Edge, cycleID []int) ([]edge.Edge, error) {
	n := matrix.N()

	mapping := make([]int, n)
	nextNode := 0
	for i := 0; i < n; i++ {
		if cycleID[i] == noCycle {
			mapping[i] = nextNode
			nextNode++
		}
	}

	numCycles := 0
	for _, id := range cycleID {
		if id+1 > numCycles {
			numCycles = id + 1
		}
	}
	cycleNode := make([]int, numCycles)
	for c := 0; c < numCycles; c++ {
		cycleNode[c] = nextNode
		nextNode++
	}
	for i := 0; i < n; i++ {
		if cycleID[i] != noCycle {
			mapping[i] = cycleNode[cycleID[i]]
		}
	}

	// w_in(j): the weight of j's Phase-C1 incoming edge at this level. It is
	// only subtracted below when j is itself part of a cycle.
	wIn := make([]float64, n)
	for _, e := range edges {
		wIn[e.To] = e.Distance
	}

	newSize := nextNode
	newRows := make([][]float64, newSize)
	for i := range newRows {
		newRows[i] = make([]float64, newSize)
		for j := range newRows[i] {
			newRows[i][j] = math.MaxFloat64
		}
	}

	edgeMapping := make(map[contractedPair]edge.Edge)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			ni, nj := mapping[i], mapping[j]
			if ni == nj {
				continue
			}

			dist := matrix.At(i, j)
			reduced := dist
			if cycleID[j] != noCycle {
				reduced -= wIn[j]
			}

			if reduced < newRows[ni][nj] {
				newRows[ni][nj] = reduced
				edgeMapping[contractedPair{ni, nj}] = edge.New(i, j, dist)
			}
		}
	}

	contractedEdges, err := Compute(distance.FromRows(newRows))
	if err != nil {
		return nil, err
	}

	finalEdges := make([]edge.Edge, 0, n-1)
	covered := make(map[int]bool, n)

	for _, ce := range contractedEdges {
		if original, ok := edgeMapping[contractedPair{ce.From, ce.To}]; ok {
			finalEdges = append(finalEdges, original)
			covered[original.To] = true
		}
	}

	for _, e := range edges {
		if !covered[e.To] {
			finalEdges = append(finalEdges, e)
			covered[e.To] = true
		}
	}

	return finalEdges, nil
}
