// Package grapetree implements a phylogenetic tree inference pipeline
// over cgMLST/MLST allelic profiles and aligned sequences.
//
// A request flows through four stages, each its own package:
//
//   - distance: builds a pairwise distance matrix from a profile batch,
//     symmetric (Hamming-style, under a choice of missing-data handler)
//     or asymmetric (directional, with a missing-data penalty).
//   - mstree: a classical undirected minimum spanning tree via Prim's
//     algorithm, with an eBurst or harmonic-mean tie-break.
//   - arborescence: a directed minimum arborescence via Edmonds'
//     algorithm (minimum incoming edges, cycle contraction, branch
//     recrafting).
//   - newick: serializes the resulting edge list as a Newick string.
//
// facade ties these together behind the two JSON entry points,
// compute_tree and compute_distance_matrix; cmd/grapetree is the CLI
// front end over the façade.
package grapetree
