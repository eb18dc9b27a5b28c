package newick_test

import (
	"testing"

	"github.com/cgmlst/grapetree/edge"
	"github.com/cgmlst/grapetree/newick"
	"github.com/stretchr/testify/assert"
)

func TestFormat_EmptyTree(t *testing.T) {
	assert.Equal(t, "();", newick.Format(nil, nil))
}

func TestFormat_SingleTaxon(t *testing.T) {
	assert.Equal(t, "A;", newick.Format(nil, []string{"A"}))
}

func TestFormat_Star(t *testing.T) {
	edges := []edge.Edge{
		edge.New(0, 1, 1.0),
		edge.New(0, 2, 2.5),
	}
	names := []string{"A", "B", "C"}

	got := newick.Format(edges, names)
	assert.Equal(t, "(B:1.000000,C:2.500000)A;", got)
}

func TestFormat_Chain(t *testing.T) {
	edges := []edge.Edge{
		edge.New(0, 1, 1.0),
		edge.New(1, 2, 0.5),
	}
	names := []string{"A", "B", "C"}

	got := newick.Format(edges, names)
	assert.Equal(t, "((C:0.500000)B:1.000000)A;", got)
}

// TestFormat_NameSanitization mirrors spec.md Scenario 6: names containing
// Newick-special characters are single-quoted verbatim.
func TestFormat_NameSanitization(t *testing.T) {
	edges := []edge.Edge{edge.New(0, 1, 1.0)}
	names := []string{"S 1", "S:2"}

	got := newick.Format(edges, names)
	assert.Equal(t, "('S:2':1.000000)'S 1';", got)
}

func TestFormat_BranchLengthPrecision(t *testing.T) {
	edges := []edge.Edge{edge.New(0, 1, 1.0/3.0)}
	names := []string{"A", "B"}

	got := newick.Format(edges, names)
	assert.Equal(t, "(B:0.333333)A;", got)
}

func TestFormatWithMetadata_MatchesFormat(t *testing.T) {
	edges := []edge.Edge{edge.New(0, 1, 2.0)}
	names := []string{"A", "B"}

	assert.Equal(t, newick.Format(edges, names), newick.FormatWithMetadata(edges, names, nil))
}
