/*
Package hull computes convex hulls of finite 2D point sets.

The package provides the shared geometric primitives (orientation test,
squared distance), the Ring type for counter-clockwise convex polygons,
and logarithmic tangent location on such polygons. The four hull
construction algorithms live in the subpackages graham, jarvis, tchan
and increm; all of them accept an optional trace recorder which captures
an ordered log of their internal decisions for step-by-step visualization.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hull

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hull'
func tracer() tracing.Trace {
	return tracing.Select("hull")
}

// Epsilon is the collinearity tolerance: orientation values with a
// magnitude below ε are treated as exactly 0. Callers operating at
// unusual coordinate scales may tune it.
var Epsilon float64 = 1e-10

// Orientation classifies the ordered triplet (p, q, r) by the sign of
// the cross product (q−p) × (r−p).
//
//	> 0: counter-clockwise (left turn)
//	< 0: clockwise (right turn)
//	= 0: collinear (within Epsilon)
//
// The signed value is returned unchanged above the tolerance, so callers
// may use its magnitude for tie-breaking.
func Orientation(p, q, r arithm.Pair) float64 {
	v := (q.X()-p.X())*(r.Y()-p.Y()) - (q.Y()-p.Y())*(r.X()-p.X())
	if math.Abs(v) < Epsilon {
		return 0
	}
	return v
}

// DistSquared returns the squared Euclidean distance between two points.
// It is used for tie-breaking only, never for the convexity test itself.
func DistSquared(p, q arithm.Pair) float64 {
	dx := p.X() - q.X()
	dy := p.Y() - q.Y()
	return dx*dx + dy*dy
}

// Leftmost returns the index of the point with minimum x-coordinate,
// ties broken by minimum y. This point is provably on the convex hull.
// Returns -1 for an empty slice.
func Leftmost(points []arithm.Pair) int {
	if len(points) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(points); i++ {
		x, y := points[i].X(), points[i].Y()
		bx, by := points[best].X(), points[best].Y()
		if x < bx || (x == bx && y < by) {
			best = i
		}
	}
	return best
}
