package extract_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/extract"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/stretchr/testify/require"
)

func TestDedupReturnsSameIDForQuantizedEqualPoints(t *testing.T) {
	m := meshio.NewMesh()
	d := extract.NewDedup(m, extract.QuantScale)

	a := d.Vertex(vec.New(1.0, 2.0, 3.0))
	b := d.Vertex(vec.New(1.0+1e-12, 2.0, 3.0)) // below quantization resolution
	require.Equal(t, a, b)
	require.Equal(t, 1, d.Count())
}

func TestDedupReturnsDistinctIDsForDistinctPoints(t *testing.T) {
	m := meshio.NewMesh()
	d := extract.NewDedup(m, extract.QuantScale)

	a := d.Vertex(vec.New(0, 0, 0))
	b := d.Vertex(vec.New(1, 0, 0))
	require.NotEqual(t, a, b)
	require.Equal(t, 2, d.Count())
}

func TestDedupVertexIDsAreMonotonicFromOne(t *testing.T) {
	m := meshio.NewMesh()
	d := extract.NewDedup(m, extract.QuantScale)

	a := d.Vertex(vec.New(0, 0, 0))
	b := d.Vertex(vec.New(5, 5, 5))
	require.Equal(t, meshio.VertexID(1), a)
	require.Equal(t, meshio.VertexID(2), b)
}
