package extract

import (
	"math"

	"github.com/katalvlaran/smcoctree/field"
	"github.com/katalvlaran/smcoctree/mctables"
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/octree"
	"github.com/katalvlaran/smcoctree/vec"
	"github.com/katalvlaran/smcoctree/voxelgrid"
)

// edgeIntersectEps matches the reference intersect_edge's degeneracy
// threshold: values closer together than this are treated as a flat
// (non-crossing) edge and fall back to the midpoint.
const edgeIntersectEps = 1e-12

// aabbTolerance is the analytic plane-edge solver's numerical-pathology
// tolerance: a solution farther than this outside the node's own voxel
// AABB is discarded in favor of the edge midpoint.
const aabbTolerance = 1e-9

// degenerateNormEps is the minimum triangle-normal length accepted before
// a candidate is treated as degenerate and skipped outright.
const degenerateNormEps = 1e-10

// triangulateSingleVoxel handles the single-voxel leaf path: precise
// per-edge interpolation with gradient-based orientation.
func triangulateSingleVoxel(x, y, z int, cfg uint8, grid *voxelgrid.Grid, oracle field.Oracle, dedup *Dedup, guard *Guard, sink meshio.MeshSink, faceID *int) (committed, rejected int) {
	cfgMC := mctables.RemapCfgToMC(cfg)
	if cfgMC == 0 || cfgMC == 255 {
		return 0, 0
	}

	var corners [8]vec.Point
	for k, off := range mctables.CornerOffset {
		corners[k] = grid.GridToWorld(x+off[0], y+off[1], z+off[2])
	}
	var edgePts [12]vec.Point
	for e, ab := range mctables.EdgeCorners {
		edgePts[e] = intersectEdgeField(corners[ab[0]], corners[ab[1]], oracle)
	}
	cellCenter := grid.CellCenter(x, y, z)

	row := mctables.TriTable[cfgMC]
	for i := 0; i < len(row) && row[i] != -1; i += 3 {
		e0, e1, e2 := row[i], row[i+1], row[i+2]
		p0, p1, p2 := edgePts[e0], edgePts[e1], edgePts[e2]

		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Norm() <= degenerateNormEps {
			continue
		}

		triCenter := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
		dir, ok := oracle.Gradient(triCenter)
		if !ok {
			dir = triCenter.Sub(cellCenter)
		}
		if n.Dot(dir) < 0 {
			p1, p2 = p2, p1
		}

		verts := []meshio.VertexID{dedup.Vertex(p0), dedup.Vertex(p1), dedup.Vertex(p2)}
		if accepted, ok := guard.TryAccept(verts); ok {
			sink.CreateFace(accepted, *faceID)
			*faceID++
			committed++
		} else {
			rejected++
		}
	}
	return committed, rejected
}

// triangulateMergedLeaf handles the merged (coarse) leaf path: the
// node's stored planar signature is solved analytically against
// each referenced cube edge, falling back to the edge midpoint on
// numerical pathology. No gradient-orientation step is needed — the
// triangulation table's built-in winding already orients the surface
// consistently with the config/d convention.
func triangulateMergedLeaf(node *octree.Node, grid *voxelgrid.Grid, dedup *Dedup, guard *Guard, sink meshio.MeshSink, faceID *int) (committed, rejected int) {
	cfgMC := mctables.RemapCfgToMC(node.Parms.Config)
	if cfgMC == 0 || cfgMC == 255 {
		return 0, 0
	}
	nt := mctables.ConfigToNormalType[node.Parms.Config]
	if nt == mctables.NormalNotSimple {
		// A well-formed merge always synthesizes a simple parent config;
		// this guards against a malformed tree rather than a real case.
		return 0, 0
	}
	normal := mctables.NormalTypeToNormal[nt]
	d := node.Parms.D

	side := node.Range.Side()
	var corners [8]vec.Point
	for k, off := range mctables.CornerOffset {
		corners[k] = grid.GridToWorld(
			node.Range.XMin+off[0]*side,
			node.Range.YMin+off[1]*side,
			node.Range.ZMin+off[2]*side,
		)
	}
	var edgeMid [12]vec.Point
	for e, ab := range mctables.EdgeCorners {
		edgeMid[e] = vec.Mid(corners[ab[0]], corners[ab[1]])
	}
	pmin, pmax := corners[0], corners[6]

	row := mctables.TriTable[cfgMC]
	for i := 0; i < len(row) && row[i] != -1; i += 3 {
		e0, e1, e2 := row[i], row[i+1], row[i+2]

		p0 := planeEdgePoint(node.Range, e0, normal, d, grid, pmin, pmax, edgeMid[e0])
		p1 := planeEdgePoint(node.Range, e1, normal, d, grid, pmin, pmax, edgeMid[e1])
		p2 := planeEdgePoint(node.Range, e2, normal, d, grid, pmin, pmax, edgeMid[e2])

		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Norm() <= degenerateNormEps {
			continue
		}

		verts := []meshio.VertexID{dedup.Vertex(p0), dedup.Vertex(p1), dedup.Vertex(p2)}
		if accepted, ok := guard.TryAccept(verts); ok {
			sink.CreateFace(accepted, *faceID)
			*faceID++
			committed++
		} else {
			rejected++
		}
	}
	return committed, rejected
}

// intersectEdgeField locates the isosurface crossing between corners p0
// and p1 by linear interpolation of the oracle's signed field value
// (F(p) - threshold for an ImplicitOracle, via field.Thresholder), or
// returns the midpoint if the oracle has no scalar field, the values are
// nearly equal, or they share a sign (no crossing to interpolate).
func intersectEdgeField(p0, p1 vec.Point, oracle field.Oracle) vec.Point {
	v0, ok0 := oracle.Value(p0)
	v1, ok1 := oracle.Value(p1)
	if !ok0 || !ok1 {
		return vec.Mid(p0, p1)
	}
	if th, ok := oracle.(field.Thresholder); ok {
		v0 -= th.Threshold()
		v1 -= th.Threshold()
	}
	if math.Abs(v1-v0) < edgeIntersectEps || v0*v1 > 0 {
		return vec.Mid(p0, p1)
	}
	t := -v0 / (v1 - v0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return vec.Lerp(p0, p1, t)
}

// planeEdgePoint solves n.p = d for the analytic intersection of the
// stored plane with cube edge edgeIndex of range, matching the reference
// get_intersected_point_at_edge. If the solution lands outside range's
// own AABB by more than aabbTolerance, fallback is returned instead.
func planeEdgePoint(r octree.Range, edgeIndex int, normal mctables.Normal3, d int, grid *voxelgrid.Grid, pmin, pmax, fallback vec.Point) vec.Point {
	var x, y, z float64
	switch edgeIndex {
	case 0:
		x, y = float64(r.XMin), float64(r.YMax+1)
		z = freeCoord(normal.Z, d, normal.X, x, normal.Y, y, float64(r.ZMin))
	case 2:
		x, y = float64(r.XMin), float64(r.YMin)
		z = freeCoord(normal.Z, d, normal.X, x, normal.Y, y, float64(r.ZMin))
	case 4:
		x, y = float64(r.XMax+1), float64(r.YMax+1)
		z = freeCoord(normal.Z, d, normal.X, x, normal.Y, y, float64(r.ZMin))
	case 6:
		x, y = float64(r.XMax+1), float64(r.YMin)
		z = freeCoord(normal.Z, d, normal.X, x, normal.Y, y, float64(r.ZMin))
	case 8:
		y, z = float64(r.YMax+1), float64(r.ZMax+1)
		x = freeCoord(normal.X, d, normal.Y, y, normal.Z, z, float64(r.XMin))
	case 9:
		y, z = float64(r.YMax+1), float64(r.ZMin)
		x = freeCoord(normal.X, d, normal.Y, y, normal.Z, z, float64(r.XMin))
	case 10:
		y, z = float64(r.YMin), float64(r.ZMin)
		x = freeCoord(normal.X, d, normal.Y, y, normal.Z, z, float64(r.XMin))
	case 11:
		y, z = float64(r.YMin), float64(r.ZMax+1)
		x = freeCoord(normal.X, d, normal.Y, y, normal.Z, z, float64(r.XMin))
	case 1:
		x, z = float64(r.XMin), float64(r.ZMin)
		y = freeCoord(normal.Y, d, normal.X, x, normal.Z, z, float64(r.YMin))
	case 3:
		x, z = float64(r.XMin), float64(r.ZMax+1)
		y = freeCoord(normal.Y, d, normal.X, x, normal.Z, z, float64(r.YMin))
	case 5:
		x, z = float64(r.XMax+1), float64(r.ZMin)
		y = freeCoord(normal.Y, d, normal.X, x, normal.Z, z, float64(r.YMin))
	default: // 7
		x, z = float64(r.XMax+1), float64(r.ZMax+1)
		y = freeCoord(normal.Y, d, normal.X, x, normal.Z, z, float64(r.YMin))
	}

	p := grid.GridToWorldF(x, y, z)
	if !withinAABB(p, pmin, pmax) {
		return fallback
	}
	return p
}

// freeCoord solves normal.axis*u = d - a1*v1 - a2*v2 for u, or returns
// fallback if the axis's normal component is zero (degenerate formula for
// this edge's orientation).
func freeCoord(coeff, d, a1 int, v1 float64, a2 int, v2 float64, fallback float64) float64 {
	if coeff == 0 {
		return fallback
	}
	return (float64(d) - float64(a1)*v1 - float64(a2)*v2) / float64(coeff)
}

// withinAABB reports whether p lies within [pmin,pmax] (componentwise),
// widened by aabbTolerance, and has no NaN component.
func withinAABB(p, pmin, pmax vec.Point) bool {
	if p.X != p.X || p.Y != p.Y || p.Z != p.Z {
		return false
	}
	if p.X < pmin.X-aabbTolerance || p.X > pmax.X+aabbTolerance {
		return false
	}
	if p.Y < pmin.Y-aabbTolerance || p.Y > pmax.Y+aabbTolerance {
		return false
	}
	if p.Z < pmin.Z-aabbTolerance || p.Z > pmax.Z+aabbTolerance {
		return false
	}
	return true
}
