package field

import "errors"

// ErrDegenerateRay names the case of a cast direction (numerically)
// parallel to a triangle's plane. No function in this package returns it:
// the ray-triangle intersection step counts such a triangle as not hit.
var ErrDegenerateRay = errors.New("field: ray parallel to triangle plane")

// ErrEmptySoup is returned by NewTriSoupOracle when given a TriangleSource
// with zero faces, since "inside" is undefined without a boundary.
var ErrEmptySoup = errors.New("field: triangle soup has no faces")
