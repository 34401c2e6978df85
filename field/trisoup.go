package field

import (
	"github.com/katalvlaran/smcoctree/meshio"
	"github.com/katalvlaran/smcoctree/vec"
)

// intersectEps is the Moller-Trumbore degeneracy threshold, matching the
// reference implementation's intersect_edge/ray routines (eps = 1e-9).
const intersectEps = 1e-9

// castAxes are the three cast directions used by the majority-of-three
// tie-break: +x, +y, +z, tried in this order.
var castAxes = [3]vec.Vector{
	vec.New(1, 0, 0),
	vec.New(0, 1, 0),
	vec.New(0, 0, 1),
}

// TriSoupOracle is a Field Oracle over a closed, consistently-wound
// triangle mesh, answering Inside by a +x ray-parity cast.
// A single cast direction can be an unlucky edge/vertex graze for certain
// query points — notably voxel-cell centers sitting on a coordinate plane
// of the source geometry — so callers sampling such ambiguous points
// should use InsideRobust instead, which casts along +x, +y, +z and
// decides by majority.
type TriSoupOracle struct {
	src meshio.TriangleSource
}

// NewTriSoupOracle wraps src as a Field Oracle. Returns ErrEmptySoup if src
// has no faces.
func NewTriSoupOracle(src meshio.TriangleSource) (*TriSoupOracle, error) {
	if src.FaceCount() == 0 {
		return nil, ErrEmptySoup
	}
	return &TriSoupOracle{src: src}, nil
}

// Inside implements Oracle via a single +x ray-parity cast.
func (o *TriSoupOracle) Inside(p vec.Point) bool {
	return o.crossingsOdd(p, castAxes[0])
}

// InsideRobust answers the same question as Inside but casts along all
// three axes and declares inside iff at least two of the three parities
// are odd. Use this at ambiguous query points such as a cell center.
func (o *TriSoupOracle) InsideRobust(p vec.Point) bool {
	votes := 0
	for _, axis := range castAxes {
		if o.crossingsOdd(p, axis) {
			votes++
		}
	}
	return votes >= 2
}

// Value implements Oracle; a triangle soup has no scalar field.
func (o *TriSoupOracle) Value(vec.Point) (float64, bool) {
	return 0, false
}

// Gradient implements Oracle; a triangle soup has no analytic gradient.
func (o *TriSoupOracle) Gradient(vec.Point) (vec.Vector, bool) {
	return vec.Vector{}, false
}

// crossingsOdd casts a ray from p along dir and counts strictly-forward
// triangle intersections in the soup, returning whether the count is odd.
func (o *TriSoupOracle) crossingsOdd(p vec.Point, dir vec.Vector) bool {
	count := 0
	n := o.src.FaceCount()
	for i := 0; i < n; i++ {
		a, b, c := o.src.Triangle(i)
		if _, hit := intersectRayTriangle(p, dir, a, b, c); hit {
			count++
		}
	}
	return count%2 == 1
}

// intersectRayTriangle implements the Moller-Trumbore ray-triangle
// intersection test. It returns the ray parameter t and true when the ray
// (origin, dir) hits triangle (a,b,c) at t > intersectEps. A near-parallel
// ray/plane or a hit outside the barycentric triangle reports false. A hit
// exactly on the a-b edge (v == 0) is not counted, so a ray through the
// diagonal shared by the two triangles (a,b,c) and (a,c,d) of a split quad
// crosses it once rather than twice.
func intersectRayTriangle(origin vec.Point, dir vec.Vector, a, b, c vec.Point) (float64, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det > -intersectEps && det < intersectEps {
		return 0, false
	}
	invDet := 1.0 / det
	tvec := origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, false
	}
	qvec := tvec.Cross(edge1)
	v := dir.Dot(qvec) * invDet
	if v <= 0 || u+v > 1 {
		return 0, false
	}
	t := edge2.Dot(qvec) * invDet
	if t <= intersectEps {
		return 0, false
	}
	return t, true
}
