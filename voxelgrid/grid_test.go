package voxelgrid_test

import (
	"testing"

	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/katalvlaran/smcoctree/voxelgrid"
	"github.com/stretchr/testify/require"
)

// sphereOracle is inside iff p is within radius r of the origin.
type sphereOracle struct{ r float64 }

func (s sphereOracle) Inside(p vec.Point) bool       { return p.Norm() < s.r }
func (s sphereOracle) Value(vec.Point) (float64, bool)    { return 0, false }
func (s sphereOracle) Gradient(vec.Point) (vec.Vector, bool) { return vec.Vector{}, false }

var _ field.Oracle = sphereOracle{}

func TestNewRejectsNonPositiveScale(t *testing.T) {
	_, err := voxelgrid.New(sphereOracle{r: 1}, 0, vec.New(0, 0, 0), 1)
	require.ErrorIs(t, err, voxelgrid.ErrInvalidScale)
}

func TestGridToWorldMapsLatticeCorners(t *testing.T) {
	g, err := voxelgrid.New(sphereOracle{r: 1}, 4, vec.New(-2, -2, -2), 1)
	require.NoError(t, err)

	p := g.GridToWorld(0, 0, 0)
	require.Equal(t, vec.New(-2, -2, -2), p)

	p = g.GridToWorld(4, 4, 4)
	require.Equal(t, vec.New(2, 2, 2), p)
}

func TestInsideCachesLazily(t *testing.T) {
	g, err := voxelgrid.New(sphereOracle{r: 1.5}, 4, vec.New(-2, -2, -2), 1)
	require.NoError(t, err)

	// center of the lattice (gx=gy=gz=2) maps to world origin, inside r=1.5.
	require.True(t, g.Inside(2, 2, 2))
	// corner of the lattice maps to (-2,-2,-2), well outside.
	require.False(t, g.Inside(0, 0, 0))
}

func TestCellConfigIsZeroForFullyInteriorCell(t *testing.T) {
	// A large sphere makes every corner of the central cell inside, so
	// every CS corner bit (which flags *outside*) must be clear.
	g, err := voxelgrid.New(sphereOracle{r: 100}, 4, vec.New(-2, -2, -2), 1)
	require.NoError(t, err)

	cfg := g.CellConfig(2, 2, 2)
	require.Equal(t, uint8(0), cfg)
}

func TestCellConfigIsBoundaryAcrossSphereSurface(t *testing.T) {
	// Scale=4 over [-2,2]^3 step 1; sphere radius 0.5 only contains the
	// single lattice point at the very center, so the 8 cells touching it
	// must each see a mixed (boundary) configuration.
	g, err := voxelgrid.New(sphereOracle{r: 0.5}, 4, vec.New(-2, -2, -2), 1)
	require.NoError(t, err)

	cfg := g.CellConfig(1, 1, 1) // the cell whose corner (2,2,2) is the center
	require.NotEqual(t, uint8(0), cfg)
	require.NotEqual(t, uint8(255), cfg)
}

func TestRefineForcesConcreteCornersOnBoundaryCells(t *testing.T) {
	g, err := voxelgrid.New(sphereOracle{r: 0.5}, 4, vec.New(-2, -2, -2), 1)
	require.NoError(t, err)

	g.Refine()

	// Every corner of the boundary cell at (1,1,1) must now be a concrete
	// sample; re-querying Inside must not change the cached answer.
	before := g.CellConfig(1, 1, 1)
	g.Refine()
	after := g.CellConfig(1, 1, 1)
	require.Equal(t, before, after)
}
