package octree_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/octree"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/katalvlaran/smcoctree/voxelgrid"
	"github.com/stretchr/testify/require"
)

func sphereAt(depth int, radius float64) (*octree.Store, *voxelgrid.Grid) {
	s, err := octree.NewStore(depth)
	if err != nil {
		panic(err)
	}
	scale := s.Scale()
	step := 2.0 / float64(scale)
	oracle := field.NewImplicitOracle(func(p vec.Point) float64 { return p.Norm() }, radius)
	g, err := voxelgrid.New(oracle, scale, vec.New(-1, -1, -1), step)
	if err != nil {
		panic(err)
	}
	return s, g
}

func TestConstructFindsBoundaryCellsForSphere(t *testing.T) {
	s, g := sphereAt(4, 0.6)

	queue := octree.Construct(s, g, nil)

	require.NotEmpty(t, queue, "a sphere crossing the cube must seed at least one merge candidate")
	require.Greater(t, s.Len(), 1, "construction must allocate at least one leaf chain")
}

func TestConstructSkipsFullyInteriorAndExteriorCells(t *testing.T) {
	// radius larger than the cube diagonal: every cell is fully inside.
	s, g := sphereAt(3, 100)
	before := s.Len()
	octree.Construct(s, g, nil)
	require.Equal(t, before, s.Len(), "an all-inside field has no boundary cells to allocate")
}

func TestConstructReportsProgressPerSlab(t *testing.T) {
	s, g := sphereAt(3, 0.6)
	var calls int
	var last octree.ConstructStats
	octree.Construct(s, g, func(st octree.ConstructStats) {
		calls++
		last = st
	})
	require.Equal(t, s.Scale(), calls, "progress fires once per z-slab")
	require.Equal(t, s.Scale()*s.Scale()*s.Scale(), last.TotalCells)
}
