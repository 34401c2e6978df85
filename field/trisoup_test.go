package field_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/stretchr/testify/require"
)

// unitCube returns a closed, consistently-wound triangle soup for the cube
// [-1,1]^3, outward-facing.
func unitCube() *meshio.Mesh {
	m := meshio.NewMesh()
	v := [8]vec.Point{
		vec.New(-1, -1, -1), vec.New(1, -1, -1), vec.New(1, 1, -1), vec.New(-1, 1, -1),
		vec.New(-1, -1, 1), vec.New(1, -1, 1), vec.New(1, 1, 1), vec.New(-1, 1, 1),
	}
	ids := make([]meshio.VertexID, 8)
	for i, p := range v {
		ids[i] = m.CreateVertex(p)
	}
	quad := func(a, b, c, d int) {
		m.CreateFace([]meshio.VertexID{ids[a], ids[b], ids[c]}, len(m.Faces)+1)
		m.CreateFace([]meshio.VertexID{ids[a], ids[c], ids[d]}, len(m.Faces)+1)
	}
	quad(0, 3, 2, 1) // -z
	quad(4, 5, 6, 7) // +z
	quad(0, 4, 7, 3) // -x
	quad(1, 2, 6, 5) // +x
	quad(0, 1, 5, 4) // -y
	quad(3, 7, 6, 2) // +y
	return m
}

func TestTriSoupOracleInsideOutside(t *testing.T) {
	m := unitCube()
	o, err := field.NewTriSoupOracle(m)
	require.NoError(t, err)

	require.True(t, o.Inside(vec.New(0, 0, 0)))
	require.True(t, o.Inside(vec.New(0.5, 0.5, 0.5)))
	require.False(t, o.Inside(vec.New(2, 0, 0)))
	require.False(t, o.Inside(vec.New(0, 0, -2)))
}

func TestTriSoupOracleInsideRobustAtAmbiguousPoints(t *testing.T) {
	m := unitCube()
	o, err := field.NewTriSoupOracle(m)
	require.NoError(t, err)

	require.True(t, o.InsideRobust(vec.New(0, 0, 0)))
	require.False(t, o.InsideRobust(vec.New(2, 0, 0)))
}

func TestTriSoupOracleHasNoScalarFieldOrGradient(t *testing.T) {
	m := unitCube()
	o, err := field.NewTriSoupOracle(m)
	require.NoError(t, err)

	_, ok := o.Value(vec.New(0, 0, 0))
	require.False(t, ok)
	_, ok = o.Gradient(vec.New(0, 0, 0))
	require.False(t, ok)
}

func TestNewTriSoupOracleRejectsEmptySoup(t *testing.T) {
	_, err := field.NewTriSoupOracle(meshio.NewMesh())
	require.ErrorIs(t, err, field.ErrEmptySoup)
}
