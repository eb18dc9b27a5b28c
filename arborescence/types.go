// Package arborescence computes a minimum directed spanning arborescence
// (Edmonds' algorithm) over an asymmetric distance matrix: each non-root
// vertex picks its cheapest incoming edge, cycles among those picks are
// contracted and solved recursively, and the final tree is locally
// improved by a greedy branch-recrafting pass. This is Component C of the
// tree-inference pipeline — the directed counterpart of mstree.
package arborescence

import "errors"

// ErrEmptyMatrix is returned when Compute is called on a zero-vertex matrix.
var ErrEmptyMatrix = errors.New("arborescence: distance matrix must have at least one vertex")

// tolerance is the absolute floating-point tolerance used for every
// tie-break and improvement comparison in this package, matching mstree's.
const tolerance = 1e-10

// maxRecraftIterations bounds the local-improvement pass (§4.C.C5): it
// stops early once a full pass makes no further improvement.
const maxRecraftIterations = 10

// root is the fixed root vertex of every arborescence this package builds.
const root = 0

// noCycle marks a vertex as not belonging to any contracted cycle.
const noCycle = -1
