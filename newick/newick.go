// Package newick serializes an edge list and a name vector into the
// Newick tree format: parenthesized child lists, comma separators,
// fixed-precision branch lengths, and a semicolon terminator. This is
// Component D of the tree-inference pipeline, the final stage consuming
// either builder's output.
package newick

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cgmlst/grapetree/edge"
)

// precision is the number of digits after the decimal point in every
// rendered branch length.
const precision = 6

// specialChars are the characters that force a name to be single-quoted.
const specialChars = " :;(),[]'"

// node is the internal tree-structure view built from the edge list.
type node struct {
	parent        int
	children      []int
	branchLength  float64
}

// Format renders edges over names as a Newick string. An empty edge list
// renders "();" for an empty name vector, or "<name>;" for a single taxon.
func Format(edges []edge.Edge, names []string) string {
	if len(edges) == 0 {
		if len(names) == 0 {
			return "();"
		}
		return sanitize(names[0]) + ";"
	}

	nodes := buildTree(edges, len(names))
	root := findRoot(nodes)

	var sb strings.Builder
	sb.WriteString(toNewick(root, nodes, names))
	sb.WriteByte(';')

	return sb.String()
}

// FormatWithMetadata renders the same Newick string as Format; metadata
// annotations are not attached to the scope of tree serialization this
// package implements (the original extended formatter forwarded to the
// basic one unconditionally, and this port preserves that behavior).
func FormatWithMetadata(edges []edge.Edge, names []string, _ []map[string]string) string {
	return Format(edges, names)
}

// buildTree constructs parent/children/branch-length links from the edge
// list over nNodes vertices (0..nNodes-1).
func buildTree(edges []edge.Edge, nNodes int) []node {
	nodes := make([]node, nNodes)
	for i := range nodes {
		nodes[i].parent = -1
	}

	for _, e := range edges {
		nodes[e.From].children = append(nodes[e.From].children, e.To)
		nodes[e.To].parent = e.From
		nodes[e.To].branchLength = e.Distance
	}

	return nodes
}

// findRoot returns the first vertex with no parent. If every vertex has a
// parent (a malformed, cyclic input), it falls back to the vertex with the
// most children, breaking ties by lowest index; this fallback should never
// trigger on well-formed builder output.
func findRoot(nodes []node) int {
	for i, n := range nodes {
		if n.parent == -1 {
			return i
		}
	}

	best := 0
	maxChildren := -1
	for i, n := range nodes {
		if len(n.children) > maxChildren {
			maxChildren = len(n.children)
			best = i
		}
	}

	return best
}

// toNewick recursively renders the subtree rooted at id.
func toNewick(id int, nodes []node, names []string) string {
	n := nodes[id]

	if len(n.children) == 0 {
		return sanitize(names[id])
	}

	children := append([]int(nil), n.children...)
	sort.Ints(children)

	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = fmt.Sprintf("%s:%s", toNewick(child, nodes, names), formatLength(nodes[child].branchLength))
	}

	label := ""
	if id < len(names) {
		label = sanitize(names[id])
	}

	return "(" + strings.Join(parts, ",") + ")" + label
}

// formatLength renders a branch length with fixed 6-digit precision.
func formatLength(length float64) string {
	return strconv.FormatFloat(length, 'f', precision, 64)
}

// sanitize single-quotes a name if it contains any Newick-special
// character. No inner-quote escaping is performed.
func sanitize(name string) string {
	if strings.ContainsAny(name, specialChars) {
		return "'" + name + "'"
	}
	return name
}
