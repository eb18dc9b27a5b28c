package facade_test

import (
	"encoding/json"
	"testing"

	"github.com/cgmlst/grapetree/facade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

// TestMain guards the façade's synchronous request path: no goroutine
// started while computing a tree or distance matrix should outlive the
// call that started it.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestComputeTree_MSTreeSymmetric(t *testing.T) {
	req := facade.Request{
		Strains:        []string{"A", "B", "C"},
		Profiles:       [][]int{{1, 2}, {1, 3}, {4, 3}},
		Method:         "MSTree",
		MatrixType:     "symmetric",
		MissingHandler: 0,
		Heuristic:      "eBurst",
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeTree(zap.NewNop(), body)

	require.True(t, resp.Success)
	assert.Equal(t, 3, resp.NNodes)
	assert.Equal(t, 2, resp.NEdges)
	assert.Len(t, resp.Edges, 2)
	assert.NotEmpty(t, resp.Newick)
}

func TestComputeTree_MSTreeV2Asymmetric(t *testing.T) {
	req := facade.Request{
		Strains:        []string{"A", "B", "C"},
		Profiles:       [][]int{{1, 2, 3}, {1, 2, 4}, {1, 3, 3}},
		Method:         "MSTreeV2",
		MatrixType:     "asymmetric",
		MissingHandler: 0,
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeTree(zap.NewNop(), body)

	require.True(t, resp.Success)
	assert.Equal(t, 2, resp.NEdges)
	for _, e := range resp.Edges {
		assert.Equal(t, "A", e.FromName)
	}
}

func TestComputeTree_UnknownMethodNJ(t *testing.T) {
	req := facade.Request{
		Strains:    []string{"A", "B"},
		Profiles:   [][]int{{1}, {2}},
		Method:     "NJ",
		MatrixType: "symmetric",
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeTree(zap.NewNop(), body)

	require.False(t, resp.Success)
	assert.Contains(t, resp.Error, "parameter out of range")
}

func TestComputeTree_UnknownHeuristic(t *testing.T) {
	req := facade.Request{
		Strains:    []string{"A", "B"},
		Profiles:   [][]int{{1}, {2}},
		Method:     "MSTree",
		MatrixType: "symmetric",
		Heuristic:  "bogus",
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeTree(zap.NewNop(), body)

	require.False(t, resp.Success)
	assert.Contains(t, resp.Error, "parameter out of range")
}

func TestComputeTree_MalformedJSON(t *testing.T) {
	resp := facade.ComputeTree(zap.NewNop(), []byte(`{not json`))
	require.False(t, resp.Success)
	assert.Contains(t, resp.Error, "malformed input")
}

func TestComputeTree_LengthMismatch(t *testing.T) {
	req := facade.Request{
		Strains:    []string{"A", "B"},
		Profiles:   [][]int{{1, 2}},
		Method:     "MSTree",
		MatrixType: "symmetric",
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeTree(zap.NewNop(), body)
	require.False(t, resp.Success)
	assert.Contains(t, resp.Error, "malformed input")
}

func TestComputeTree_UnknownMatrixType(t *testing.T) {
	req := facade.Request{
		Strains:    []string{"A", "B"},
		Profiles:   [][]int{{1}, {2}},
		Method:     "MSTree",
		MatrixType: "bogus",
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeTree(zap.NewNop(), body)
	require.False(t, resp.Success)
	assert.Contains(t, resp.Error, "parameter out of range")
}

func TestComputeTree_DegenerateSingleStrain(t *testing.T) {
	req := facade.Request{
		Strains:    []string{"A"},
		Profiles:   [][]int{{1, 2}},
		Method:     "MSTreeV2",
		MatrixType: "asymmetric",
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeTree(zap.NewNop(), body)
	require.True(t, resp.Success)
	assert.Equal(t, 0, resp.NEdges)
	assert.Equal(t, "A;", resp.Newick)
}

func TestComputeDistanceMatrix_Symmetric(t *testing.T) {
	req := facade.Request{
		Strains:        []string{"A", "B"},
		Profiles:       [][]int{{1, 2}, {1, 3}},
		MatrixType:     "symmetric",
		MissingHandler: 0,
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeDistanceMatrix(zap.NewNop(), body)

	require.True(t, resp.Success)
	assert.Equal(t, 2, resp.NStrains)
	assert.Equal(t, []string{"A", "B"}, resp.StrainNames)
	require.Len(t, resp.Matrix, 2)
	assert.Equal(t, 0.0, resp.Matrix[0][0])
}

func TestComputeDistanceMatrix_UnknownHandler(t *testing.T) {
	req := facade.Request{
		Strains:        []string{"A", "B"},
		Profiles:       [][]int{{1}, {2}},
		MatrixType:     "symmetric",
		MissingHandler: 9,
	}
	body, err := json.Marshal(req)
	require.NoError(t, err)

	resp := facade.ComputeDistanceMatrix(zap.NewNop(), body)
	require.False(t, resp.Success)
	assert.Contains(t, resp.Error, "parameter out of range")
}
