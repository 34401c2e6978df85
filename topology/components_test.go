package topology_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/extract"
	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/octree"
	"github.com/katalvlaran/smcoctree/topology"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/katalvlaran/smcoctree/voxelgrid"
	"github.com/stretchr/testify/require"
)

func extractMesh(t *testing.T, depth int, rootMin vec.Point, width float64, f func(vec.Point) float64, tau float64) *meshio.Mesh {
	t.Helper()
	s, err := octree.NewStore(depth)
	require.NoError(t, err)
	scale := s.Scale()
	step := width / float64(scale)
	oracle := field.NewImplicitOracle(f, tau)
	g, err := voxelgrid.New(oracle, scale, rootMin, step)
	require.NoError(t, err)

	queue := octree.Construct(s, g, nil)
	octree.Shrink(s, queue, nil)

	mesh := meshio.NewMesh()
	_, err = extract.Walk(s, g, oracle, mesh, extract.QuantScale, nil)
	require.NoError(t, err)
	return mesh
}

func TestConnectedComponentsSphereIsSingleComponentWithEulerCharacteristic2(t *testing.T) {
	mesh := extractMesh(t, 4, vec.New(-1, -1, -1), 2, func(p vec.Point) float64 { return p.Norm() }, 0.6)

	comps := topology.ConnectedComponents(mesh)
	require.Len(t, comps, 1, "a single sphere must yield exactly one connected component")
	require.Equal(t, 2, comps[0].EulerCharacteristic(), "a closed topological sphere has Euler characteristic 2")
}

func TestConnectedComponentsTwoDisjointSpheresEachHaveEulerCharacteristic2(t *testing.T) {
	c1 := vec.New(1, 0, 0)
	c2 := vec.New(-1, 0, 0)
	radius := 0.4
	f := func(p vec.Point) float64 {
		d1 := p.Sub(c1).Norm()
		d2 := p.Sub(c2).Norm()
		if d1 < d2 {
			return d1
		}
		return d2
	}
	mesh := extractMesh(t, 5, vec.New(-2, -2, -2), 4, f, radius)

	comps := topology.ConnectedComponents(mesh)
	require.Len(t, comps, 2, "two disjoint spheres must yield two connected components")
	for i, c := range comps {
		require.Equalf(t, 2, c.EulerCharacteristic(), "component %d must be a closed topological sphere", i)
	}
}

func TestConnectedComponentsEmptyMeshHasNoComponents(t *testing.T) {
	comps := topology.ConnectedComponents(meshio.NewMesh())
	require.Empty(t, comps)
}
