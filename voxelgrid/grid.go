package voxelgrid

import (
	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/mctables"
	"github.com/katalvlaran/smcoctree/vec"
)

// state is the tri-state verdict for a single lattice corner.
type state int8

const (
	unknown state = -1
	outside state = 0
	inside  state = 1
)

// Grid is a dense Point-State Grid: a (Scale+1)^3 lattice of lazily
// sampled inside/outside verdicts, plus the world-space mapping needed to
// materialize a lattice corner on first access.
type Grid struct {
	Scale   int
	RootMin vec.Point
	Step    float64
	oracle  field.Oracle

	size   int // Scale + 1
	states []state
}

// New builds an empty Point-State Grid of the given scale (S = 2^depth),
// sampling from oracle lazily. RootMin is the world position of lattice
// corner (0,0,0); step is the world length of one voxel edge.
func New(oracle field.Oracle, scale int, rootMin vec.Point, step float64) (*Grid, error) {
	if scale <= 0 {
		return nil, ErrInvalidScale
	}
	size := scale + 1
	g := &Grid{
		Scale:   scale,
		RootMin: rootMin,
		Step:    step,
		oracle:  oracle,
		size:    size,
		states:  make([]state, size*size*size),
	}
	for i := range g.states {
		g.states[i] = unknown
	}
	return g, nil
}

// index computes the flat buffer offset for lattice corner (gx,gy,gz),
// matching the reference layout (gz*size+gy)*size+gx.
func (g *Grid) index(gx, gy, gz int) int {
	return (gz*g.size+gy)*g.size + gx
}

// GridToWorld maps an integer lattice coordinate to its world position.
func (g *Grid) GridToWorld(gx, gy, gz int) vec.Point {
	return vec.New(
		g.RootMin.X+float64(gx)*g.Step,
		g.RootMin.Y+float64(gy)*g.Step,
		g.RootMin.Z+float64(gz)*g.Step,
	)
}

// GridToWorldF maps a fractional lattice coordinate to its world
// position, used by the analytic merged-leaf plane-edge solver which
// produces non-integer lattice coordinates.
func (g *Grid) GridToWorldF(gx, gy, gz float64) vec.Point {
	return vec.New(
		g.RootMin.X+gx*g.Step,
		g.RootMin.Y+gy*g.Step,
		g.RootMin.Z+gz*g.Step,
	)
}

// CellCenter returns the world-space center of the finest-level cell at
// integer voxel coordinate (x,y,z), used as a surrogate gradient
// direction for oracles with no analytic gradient.
func (g *Grid) CellCenter(x, y, z int) vec.Point {
	return vec.New(
		g.RootMin.X+(float64(x)+0.5)*g.Step,
		g.RootMin.Y+(float64(y)+0.5)*g.Step,
		g.RootMin.Z+(float64(z)+0.5)*g.Step,
	)
}

// Inside returns the cached inside/outside verdict for lattice corner
// (gx,gy,gz), sampling the oracle and caching the result on first miss.
func (g *Grid) Inside(gx, gy, gz int) bool {
	idx := g.index(gx, gy, gz)
	st := g.states[idx]
	if st == unknown {
		p := g.GridToWorld(gx, gy, gz)
		if g.oracle.Inside(p) {
			st = inside
		} else {
			st = outside
		}
		g.states[idx] = st
	}
	return st == inside
}

// forceSample re-samples lattice corner (gx,gy,gz) unconditionally,
// overwriting any cached verdict. Used by Refine.
func (g *Grid) forceSample(gx, gy, gz int) {
	p := g.GridToWorld(gx, gy, gz)
	idx := g.index(gx, gy, gz)
	if g.oracle.Inside(p) {
		g.states[idx] = inside
	} else {
		g.states[idx] = outside
	}
}

// CellConfig computes the 8-bit configuration of the finest-level cell at
// integer voxel coordinate (x,y,z): bit k is set iff CS corner k (see
// mctables.PointDelta) is outside the solid, using cached lookups only —
// it never forces a sample.
func (g *Grid) CellConfig(x, y, z int) uint8 {
	var cfg uint8
	for pi := 0; pi < 8; pi++ {
		d := mctables.PointDelta[pi]
		if !g.Inside(x+d[0], y+d[1], z+d[2]) {
			cfg |= mctables.PointFlag[pi]
		}
	}
	return cfg
}

// Refine performs a second pass: for every cell whose configuration is a
// boundary configuration (cfg != 0 and cfg != 255), force concrete
// oracle samples at all eight of its corners.
// This must run once, after all finest-level cells have had their
// configuration computed at least once by the caller (e.g. during tree
// construction), and before any code relies on "every boundary-cell
// corner is concrete".
func (g *Grid) Refine() {
	for z := 0; z < g.Scale; z++ {
		for y := 0; y < g.Scale; y++ {
			for x := 0; x < g.Scale; x++ {
				cfg := g.CellConfig(x, y, z)
				if cfg == 0 || cfg == 255 {
					continue
				}
				for pi := 0; pi < 8; pi++ {
					d := mctables.PointDelta[pi]
					g.forceSample(x+d[0], y+d[1], z+d[2])
				}
			}
		}
	}
}
