package smcoctree

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/smcoctree/extract"
	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/octree"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/katalvlaran/smcoctree/voxelgrid"
)

// bboxMargin is the fractional padding added around a mesh-derived
// bounding box so the surface never sits exactly on the octree's root
// boundary (where the Point-State Grid has no outside neighbor to sample).
const bboxMargin = 0.01

// minMargin is the absolute floor for bboxMargin, covering the degenerate
// case of a mesh with zero extent on some axis (e.g. a flat quad).
const minMargin = 1e-6

// Extractor runs the SMC pipeline against one field.Oracle over one
// bounding cube. Build one with New or NewImplicit; call Extract to
// produce the output mesh.
type Extractor struct {
	cfg     config
	oracle  field.Oracle
	rootMin vec.Point
	rootMax vec.Point

	// emptyInput short-circuits Extract to return an empty output mesh
	// for a triangle-soup provider with no faces, bypassing
	// field.NewTriSoupOracle's eager ErrEmptySoup.
	emptyInput bool
}

// New builds a mesh-based Extractor reading triangles from provider via
// ray-parity inside testing (field.TriSoupOracle). maxDepth is clamped
// into [1,9] at Extract time (default 6 if <= 0). Returns ErrNilProvider
// if provider is nil.
func New(provider meshio.TriangleSource, maxDepth int, opts ...Option) (*Extractor, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	cfg := defaultConfig()
	cfg.maxDepth = maxDepth
	for _, opt := range opts {
		opt(&cfg)
	}

	if provider.FaceCount() == 0 {
		return &Extractor{cfg: cfg, emptyInput: true}, nil
	}

	oracle, err := field.NewTriSoupOracle(provider)
	if err != nil {
		return nil, fmt.Errorf("smcoctree: %w", err)
	}

	rootMin, rootMax := meshBounds(provider)
	return &Extractor{cfg: cfg, oracle: oracle, rootMin: rootMin, rootMax: rootMax}, nil
}

// NewImplicit builds an implicit-field Extractor: p is inside the solid
// iff f(p) < tau, searched over the half-open cube [bboxMin, bboxMax).
// maxDepth is clamped into [1,9] at Extract time (default 6 if <= 0).
// Returns ErrNilField if f is nil, or ErrDegenerateBBox if bboxMax is not
// strictly greater than bboxMin on every axis.
func NewImplicit(f func(vec.Point) float64, tau float64, bboxMin, bboxMax vec.Point, maxDepth int, opts ...Option) (*Extractor, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if bboxMax.X <= bboxMin.X || bboxMax.Y <= bboxMin.Y || bboxMax.Z <= bboxMin.Z {
		return nil, fmt.Errorf("%w: min=%v max=%v", ErrDegenerateBBox, bboxMin, bboxMax)
	}

	cfg := defaultConfig()
	cfg.maxDepth = maxDepth
	for _, opt := range opts {
		opt(&cfg)
	}

	oracle := field.NewImplicitOracle(f, tau)
	return &Extractor{cfg: cfg, oracle: oracle, rootMin: bboxMin, rootMax: bboxMax}, nil
}

// Extract runs the full pipeline (Point-State Grid, octree construction,
// planar merge, BFS triangulation) and returns the output mesh. The
// returned error is always nil unless the pipeline's own invariants are
// violated (e.g. octree.NewStore rejects a depth clampDepth did not
// already bring into range, which cannot happen in practice); every
// other input irregularity short of programmatic misuse is handled
// silently inside the pipeline.
func (e *Extractor) Extract() (*meshio.Mesh, error) {
	mesh := meshio.NewMesh()
	if e.emptyInput {
		return mesh, nil
	}

	totalStart := time.Now()

	depth := clampDepth(e.cfg.maxDepth)
	store, err := octree.NewStore(depth)
	if err != nil {
		return nil, fmt.Errorf("smcoctree: %w", err)
	}

	scale := store.Scale()
	extent := e.rootMax.Sub(e.rootMin)
	step := math.Max(extent.X, math.Max(extent.Y, extent.Z)) / float64(scale)
	grid, err := voxelgrid.New(e.oracle, scale, e.rootMin, step)
	if err != nil {
		return nil, fmt.Errorf("smcoctree: %w", err)
	}

	var stats Stats
	emit := func() {
		if e.cfg.progress != nil {
			e.cfg.progress(stats)
		}
	}

	phaseStart := time.Now()
	queue := octree.Construct(store, grid, func(cs octree.ConstructStats) {
		stats.TotalCells, stats.BoundaryCells = cs.TotalCells, cs.BoundaryCells
		emit()
	})
	stats.Construct = time.Since(phaseStart)

	phaseStart = time.Now()
	shrinkStats := octree.Shrink(store, queue, func(ss octree.ShrinkStats) {
		stats.Popped, stats.Merged = ss.Popped, ss.Merged
		emit()
	})
	stats.Popped, stats.Merged = shrinkStats.Popped, shrinkStats.Merged
	stats.Shrink = time.Since(phaseStart)

	phaseStart = time.Now()
	walkStats, err := extract.Walk(store, grid, e.oracle, mesh, e.cfg.quantScale, func(ws extract.WalkStats) {
		stats.VisitedNodes, stats.VisitedLeaves = ws.VisitedNodes, ws.VisitedLeaves
		stats.Faces, stats.Vertices, stats.Rejected = ws.Faces, ws.Vertices, ws.Rejected
		emit()
	})
	if err != nil {
		return nil, fmt.Errorf("smcoctree: %w", err)
	}
	stats.VisitedNodes, stats.VisitedLeaves = walkStats.VisitedNodes, walkStats.VisitedLeaves
	stats.Faces, stats.Vertices, stats.Rejected = walkStats.Faces, walkStats.Vertices, walkStats.Rejected
	stats.Extract = time.Since(phaseStart)

	stats.Total = time.Since(totalStart)
	emit()

	return mesh, nil
}

// meshBounds computes provider's axis-aligned bounding box over every
// triangle vertex, padded by bboxMargin (floored at minMargin) so the
// surface never touches the octree's root boundary.
func meshBounds(provider meshio.TriangleSource) (min, max vec.Point) {
	n := provider.FaceCount()
	a, b, c := provider.Triangle(0)
	min, max = a, a
	expand := func(p vec.Point) {
		min.X, max.X = math.Min(min.X, p.X), math.Max(max.X, p.X)
		min.Y, max.Y = math.Min(min.Y, p.Y), math.Max(max.Y, p.Y)
		min.Z, max.Z = math.Min(min.Z, p.Z), math.Max(max.Z, p.Z)
	}
	expand(b)
	expand(c)
	for i := 1; i < n; i++ {
		a, b, c := provider.Triangle(i)
		expand(a)
		expand(b)
		expand(c)
	}

	pad := func(lo, hi float64) (float64, float64) {
		margin := math.Max((hi-lo)*bboxMargin, minMargin)
		return lo - margin, hi + margin
	}
	min.X, max.X = pad(min.X, max.X)
	min.Y, max.Y = pad(min.Y, max.Y)
	min.Z, max.Z = pad(min.Z, max.Z)
	return min, max
}
