package profile_test

import (
	"testing"

	"github.com/cgmlst/grapetree/profile"
	"github.com/stretchr/testify/assert"
)

func TestValidate_OK(t *testing.T) {
	d := &profile.Data{
		StrainNames: []string{"A", "B"},
		Profiles:    [][]int{{1, 2, 3}, {1, 2, 4}},
	}
	assert.NoError(t, d.Validate())
	assert.Equal(t, 2, d.NStrains())
	assert.Equal(t, 3, d.NGenes())
}

func TestValidate_Empty(t *testing.T) {
	d := &profile.Data{}
	assert.ErrorIs(t, d.Validate(), profile.ErrEmptyBatch)
}

func TestValidate_LengthMismatch(t *testing.T) {
	d := &profile.Data{
		StrainNames: []string{"A", "B"},
		Profiles:    [][]int{{1, 2}},
	}
	assert.ErrorIs(t, d.Validate(), profile.ErrLengthMismatch)
}

func TestValidate_Ragged(t *testing.T) {
	d := &profile.Data{
		StrainNames: []string{"A", "B"},
		Profiles:    [][]int{{1, 2, 3}, {1, 2}},
	}
	assert.ErrorIs(t, d.Validate(), profile.ErrRaggedProfile)
}

func TestMissing(t *testing.T) {
	assert.True(t, profile.Missing(0))
	assert.True(t, profile.Missing(-5))
	assert.False(t, profile.Missing(1))
}

func TestNGenes_EmptyProfiles(t *testing.T) {
	d := &profile.Data{}
	assert.Equal(t, 0, d.NGenes())
}
