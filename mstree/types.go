// Package mstree computes a classical undirected minimum spanning tree
// over a symmetric distance matrix using Prim's algorithm, with a choice
// of tie-breaking heuristic when several candidate vertices sit at the
// same minimum distance from the growing tree. This is Component B of
// the tree-inference pipeline.
package mstree

import "errors"

// ErrEmptyMatrix is returned when Compute is called on a zero-vertex matrix.
var ErrEmptyMatrix = errors.New("mstree: distance matrix must have at least one vertex")

// ErrUnknownHeuristic is returned for a Heuristic value other than EBurst or Harmonic.
var ErrUnknownHeuristic = errors.New("mstree: unknown tie-break heuristic")

// tolerance is the absolute floating-point tolerance used for every
// tie-break comparison in this package. It is load-bearing: a smaller or
// relative tolerance changes which candidate wins a tie and therefore the
// resulting topology.
const tolerance = 1e-10

// Heuristic selects how Compute breaks ties among candidate vertices that
// sit at the same minimum distance from the tree.
type Heuristic int

const (
	// EBurst prefers the candidate connected to the most already-in-tree
	// vertices at the minimum tied distance (ties broken by lowest index).
	EBurst Heuristic = iota
	// Harmonic prefers the candidate with the highest harmonic mean of
	// its positive distances to every other vertex (ties broken by
	// lowest index).
	Harmonic
)
