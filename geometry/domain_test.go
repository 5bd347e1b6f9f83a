package geometry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopfield/types"
)

func TestDomain(t *testing.T) {
	d := Domain{
		Dim:          2,
		Span:         [3]float64{100, 50},
		Subdivisions: [3]int{4, 2},
		RefineFactor: 2,
	}
	require.NoError(t, d.Validate())
	assert.Equal(t, 100./16., d.CellSize())
	assert.Equal(t, [3]int{17, 9, 1}, d.NodesPerAxis())
	assert.Equal(t, 17*9, d.NumNodes())
	{ // Node ordering, x fastest
		assert.Equal(t, types.NewPoint(0, 0), d.Node(0))
		assert.Equal(t, types.NewPoint(100./16., 0), d.Node(1))
		assert.Equal(t, types.NewPoint(0, 50./8.), d.Node(17))
		assert.Equal(t, types.NewPoint(100, 50), d.Node(d.NumNodes()-1))
		for k := 0; k < d.NumNodes(); k++ {
			assert.True(t, d.Contains(d.Node(k)))
		}
	}
	{
		assert.Equal(t, types.NewPoint(25, 25), d.FractionalPoint([3]float64{0.25, 0.5}))
		assert.False(t, d.Contains(types.NewPoint(101, 0)))
		assert.False(t, d.Contains(types.NewPoint(1, 1, 1)))
		assert.NoError(t, d.CheckPoint(types.NewPoint(100, 50)))
		assert.True(t, errors.Is(d.CheckPoint(types.NewPoint(-1, 0)), ErrOutsideDomain))
		assert.Error(t, d.CheckPoint(types.NewPoint(1)))
	}
	{
		assert.Equal(t, 4, d.NumFaces())
		assert.Equal(t, "x-min", FaceName(0))
		assert.Equal(t, "y-max", FaceName(3))
		assert.Equal(t, "z-min", FaceName(4))
		assert.Equal(t, "face7", FaceName(7))
		assert.Equal(t, 3, OppositeFace(2))
		assert.Equal(t, 4, OppositeFace(5))
	}
}

func TestDomainValidate(t *testing.T) {
	good := Domain{Dim: 3, Span: [3]float64{1, 1, 1}, Subdivisions: [3]int{1, 1, 1}}
	require.NoError(t, good.Validate())
	bad := good
	bad.Dim = 4
	assert.True(t, errors.Is(bad.Validate(), types.ErrUnsupportedDimension))
	bad = good
	bad.Span[2] = 0
	assert.Error(t, bad.Validate())
	bad = good
	bad.Subdivisions[1] = 0
	assert.Error(t, bad.Validate())
	bad = good
	bad.RefineFactor = -1
	assert.Error(t, bad.Validate())
}
