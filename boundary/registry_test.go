package boundary

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopfield/utils"
)

func TestRegistryUniform(t *testing.T) {
	reg := NewRegistry(2)
	require.NoError(t, reg.InputBCs(0, 0, "ZERO_DERIVATIVE", 0))
	require.NoError(t, reg.InputBCs(1, 0, "ZERO_DERIVATIVE", 3.5))
	assert.Equal(t, 2, reg.Len())
	for _, rec := range reg.Entries() {
		require.Len(t, rec.Faces, 4)
		assert.True(t, rec.Uniform())
		for _, f := range rec.Faces {
			assert.Equal(t, utils.BCZeroDerivative, f.Type)
			assert.Equal(t, 0., f.Value)
		}
	}
	entries := reg.Entries()
	assert.Equal(t, FieldComponent{0, 0}, entries[0].FieldComponent)
	assert.Equal(t, FieldComponent{1, 0}, entries[1].FieldComponent)
	assert.Equal(t, "field 1 component 0: all ZERO_DERIVATIVE", entries[1].String())
}

func TestRegistryDirichletAndFaces(t *testing.T) {
	reg := NewRegistry(2)
	require.NoError(t, reg.InputBCs(0, 0, "dirichlet", 0.25))
	rec, ok := reg.Get(0, 0)
	require.True(t, ok)
	assert.Equal(t, FaceBC{utils.BCDirichlet, 0.25}, rec.Faces[3])
	{ // Per face, values kept for DIRICHLET only
		faces := []FaceBC{
			{utils.BCDirichlet, 1},
			{utils.BCDirichlet, 0},
			{utils.BCPeriodic, 9},
			{utils.BCPeriodic, 9},
		}
		require.NoError(t, reg.InputBCsPerFace(1, 0, faces))
		rec, ok = reg.Get(1, 0)
		require.True(t, ok)
		assert.False(t, rec.Uniform())
		assert.Equal(t, 0., rec.Faces[2].Value)
		assert.Equal(t, []int{1}, reg.PeriodicAxes(1, 0))
		assert.Nil(t, reg.PeriodicAxes(0, 0))
		assert.Equal(t,
			"field 1 component 0: x-min DIRICHLET=1 x-max DIRICHLET=0 y-min PERIODIC y-max PERIODIC",
			rec.String())
		faces[0].Value = 100
		rec, _ = reg.Get(1, 0)
		assert.Equal(t, 1., rec.Faces[0].Value)
	}
	{ // Vector field components are separate declarations
		require.NoError(t, reg.InputBCs(2, 0, "ZERO_DERIVATIVE", 0))
		require.NoError(t, reg.InputBCs(2, 1, "ZERO_DERIVATIVE", 0))
		assert.Equal(t, 4, reg.Len())
	}
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry(3)
	require.NoError(t, reg.InputBCs(0, 0, "PERIODIC", 0))
	assert.True(t, errors.Is(reg.InputBCs(0, 0, "ZERO_DERIVATIVE", 0), ErrDuplicateBC))
	assert.Error(t, reg.InputBCs(1, 0, "WALL", 0))
	assert.Error(t, reg.InputBCs(-1, 0, "DIRICHLET", 0))
	assert.True(t, errors.Is(reg.InputBCsPerFace(1, 0, make([]FaceBC, 4)), ErrFaceCount))
	{ // Faces without a type, or with a kind past the known range
		assert.Error(t, reg.InputBCsPerFace(1, 0, make([]FaceBC, 6)))
		faces := make([]FaceBC, 6)
		for i := range faces {
			faces[i] = FaceBC{Type: utils.BCZeroDerivative}
		}
		faces[3].Type = utils.BCPeriodic + 1
		err := reg.InputBCsPerFace(1, 0, faces)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "y-max")
	}
	{ // Periodic on one side only
		faces := []FaceBC{
			{utils.BCPeriodic, 0}, {utils.BCZeroDerivative, 0},
			{utils.BCZeroDerivative, 0}, {utils.BCZeroDerivative, 0},
			{utils.BCZeroDerivative, 0}, {utils.BCZeroDerivative, 0},
		}
		assert.True(t, errors.Is(reg.InputBCsPerFace(1, 0, faces), ErrPeriodic))
	}
	assert.Equal(t, 1, reg.Len())
	assert.Error(t, NewRegistry(4).InputBCs(0, 0, "PERIODIC", 0))
}

func TestRegistryMissing(t *testing.T) {
	reg := NewRegistry(2)
	require.NoError(t, reg.InputBCs(1, 0, "ZERO_DERIVATIVE", 0))
	missing := reg.Missing([]FieldComponent{{2, 1}, {1, 0}, {0, 0}, {2, 0}})
	assert.Equal(t, []FieldComponent{{0, 0}, {2, 0}, {2, 1}}, missing)
	assert.Equal(t, "(2,1)", missing[2].String())
	assert.Nil(t, reg.Missing([]FieldComponent{{1, 0}}))
	{ // The zero Record returned for an undeclared pair is safe to print
		rec, ok := reg.Get(5, 0)
		assert.False(t, ok)
		assert.False(t, rec.Uniform())
		assert.Equal(t, "field 0 component 0: none", rec.String())
	}
}

func TestRegistryConcurrent(t *testing.T) {
	var (
		reg = NewRegistry(3)
		wg  sync.WaitGroup
	)
	for f := 0; f < 32; f++ {
		wg.Add(1)
		go func(f int) {
			defer wg.Done()
			assert.NoError(t, reg.InputBCs(f, 0, "ZERO_DERIVATIVE", 0))
			assert.Error(t, reg.InputBCs(f, 0, "ZERO_DERIVATIVE", 0))
		}(f)
	}
	wg.Wait()
	assert.Equal(t, 32, reg.Len())
}
