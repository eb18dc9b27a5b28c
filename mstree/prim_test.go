package mstree_test

import (
	"testing"

	"github.com/cgmlst/grapetree/distance"
	"github.com/cgmlst/grapetree/edge"
	"github.com/cgmlst/grapetree/mstree"
	"github.com/cgmlst/grapetree/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_EmptyMatrix(t *testing.T) {
	_, err := mstree.Compute(distance.Matrix{}, mstree.EBurst)
	assert.ErrorIs(t, err, mstree.ErrEmptyMatrix)
}

func TestCompute_UnknownHeuristic(t *testing.T) {
	data := &profile.Data{StrainNames: []string{"A", "B"}, Profiles: [][]int{{1}, {2}}}
	m, err := distance.Symmetric(data, distance.IGNORE)
	require.NoError(t, err)
	_, err = mstree.Compute(m, mstree.Heuristic(99))
	assert.ErrorIs(t, err, mstree.ErrUnknownHeuristic)
}

// TestCompute_Scenario2 mirrors spec.md Scenario 2: a star centered on A.
func TestCompute_Scenario2(t *testing.T) {
	data := &profile.Data{
		StrainNames: []string{"A", "B", "C"},
		Profiles:    [][]int{{1, 2, 3}, {1, 2, 4}, {1, 3, 3}},
	}
	m, err := distance.Symmetric(data, distance.IGNORE)
	require.NoError(t, err)

	edges, err := mstree.Compute(m, mstree.EBurst)
	require.NoError(t, err)
	require.Len(t, edges, 2)

	var total float64
	for _, e := range edges {
		assert.Equal(t, 0, e.From, "star topology centered on A")
		assert.Equal(t, 1.0, e.Distance)
		total += e.Distance
	}
	assert.Equal(t, 2.0, total)
}

func TestCompute_AllIdentical(t *testing.T) {
	data := &profile.Data{
		StrainNames: []string{"A", "B", "C", "D", "E"},
		Profiles:    [][]int{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}},
	}
	m, err := distance.Symmetric(data, distance.IGNORE)
	require.NoError(t, err)

	edges, err := mstree.Compute(m, mstree.Harmonic)
	require.NoError(t, err)
	require.Len(t, edges, 4)
	assert.Equal(t, 0.0, edge.TotalWeight(edges))
}

func TestCompute_NIsOne(t *testing.T) {
	data := &profile.Data{StrainNames: []string{"A"}, Profiles: [][]int{{1}}}
	m, err := distance.Symmetric(data, distance.IGNORE)
	require.NoError(t, err)

	edges, err := mstree.Compute(m, mstree.EBurst)
	require.NoError(t, err)
	assert.Empty(t, edges)
}

func TestCompute_ConnectedAcyclic(t *testing.T) {
	data := &profile.Data{
		StrainNames: []string{"A", "B", "C", "D", "E", "F", "G"},
		Profiles: [][]int{
			{1, 2, 3, 4},
			{1, 2, 3, 5},
			{1, 2, 6, 5},
			{1, 7, 6, 5},
			{8, 7, 6, 5},
			{8, 7, 6, 9},
			{8, 7, 10, 9},
		},
	}
	m, err := distance.Symmetric(data, distance.IGNORE)
	require.NoError(t, err)

	edges, err := mstree.Compute(m, mstree.EBurst)
	require.NoError(t, err)
	require.Len(t, edges, data.NStrains()-1)

	seen := make(map[int]bool)
	seen[0] = true // root is implicitly part of the tree
	for _, e := range edges {
		seen[e.To] = true
	}
	assert.Len(t, seen, data.NStrains())
}
