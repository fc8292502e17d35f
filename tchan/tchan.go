// Package tchan implements T. Chan's hybrid convex hull algorithm. The
// input is partitioned into groups of at most m points, each group is
// hulled with the monotone chain, and a gift-wrapping walk across the
// mini-hulls picks each next vertex from one tangent query per mini-hull.
// Guesses m = 4, 16, 256, … grow by repeated squaring until the walk
// closes within m steps, which bounds the total work by O(n log h)
// without knowing the hull size h in advance.
package tchan

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/hull"
	"github.com/npillmayer/hull/graham"
	"github.com/npillmayer/hull/trace"
)

// tracer writes to trace with key 'hull'
func tracer() tracing.Trace {
	return tracing.Select("hull")
}

// Hull computes the counter-clockwise convex hull of points. Fewer than
// 3 points are returned unchanged.
func Hull(points []arithm.Pair, rec *trace.Recorder) hull.Ring {
	n := len(points)
	if n < 3 {
		return append(hull.Ring{}, points...)
	}
	for m := 4; ; m = m * m {
		if m >= n {
			m = n
		}
		if rec.On() {
			rec.Record(&Guess{M: m})
		}
		if h, ok := attempt(points, m, rec); ok {
			return h
		}
		if rec.On() {
			rec.Record(&NoClose{M: m})
		}
		if m == n {
			break
		}
	}
	// The walk cannot close when the hull degenerates to a single vertex
	// (all input points coincide); the monotone chain handles any input.
	tracer().Infof("no group size closed the walk, falling back to monotone chain")
	h := graham.Chain(points)
	if rec.On() {
		rec.Record(&Done{M: n, Hull: trace.Pts(h), Fallback: true})
	}
	return h
}

// attempt runs one outer walk with group size m. It reports failure when
// the walk does not return to its starting point within m steps.
func attempt(points []arithm.Pair, m int, rec *trace.Recorder) (hull.Ring, bool) {
	hulls := miniHulls(points, m, rec)
	start := points[hull.Leftmost(points)]
	current := start
	h := make(hull.Ring, 0, m)

	for step := 0; step < m; step++ {
		h = append(h, current)
		if rec.On() {
			rec.Record(&Walk{
				Point: trace.Pt(current),
				Step:  step,
				Limit: m,
				Hull:  trace.Pts(h),
			})
		}
		best, group, ok := nextVertex(current, hulls)
		if !ok {
			break
		}
		if rec.On() {
			rec.Record(&Edge{
				From:  trace.Pt(current),
				To:    trace.Pt(best),
				Group: group,
				Hull:  trace.Pts(h),
			})
		}
		if best == start {
			if rec.On() {
				rec.Record(&Done{M: m, Hull: trace.Pts(h)})
			}
			return h, true
		}
		current = best
	}
	return nil, false
}

// miniHulls partitions the points in input order into contiguous groups
// of at most m and hulls each group independently.
func miniHulls(points []arithm.Pair, m int, rec *trace.Recorder) []hull.Ring {
	n := len(points)
	groups := (n + m - 1) / m
	hulls := make([]hull.Ring, 0, groups)
	for i := 0; i < n; i += m {
		end := i + m
		if end > n {
			end = n
		}
		group := points[i:end]
		mini := graham.Scan(group, nil)
		hulls = append(hulls, mini)
		if rec.On() {
			rec.Record(&MiniHull{
				Group:  len(hulls) - 1,
				Groups: groups,
				Points: trace.Pts(group),
				Hull:   trace.Pts(mini),
				Hulls:  snapshot(hulls),
			})
		}
	}
	return hulls
}

// nextVertex queries every mini-hull for its tangent candidate seen from
// current and picks the globally most counter-clockwise one, collinear
// ties broken by farther squared distance.
func nextVertex(current arithm.Pair, hulls []hull.Ring) (arithm.Pair, int, bool) {
	var best arithm.Pair
	group := -1
	for gi, mh := range hulls {
		cand, ok := candidate(current, mh)
		if !ok {
			continue
		}
		if group < 0 {
			best, group = cand, gi
			continue
		}
		orient := hull.Orientation(current, cand, best)
		if orient > 0 ||
			(orient == 0 && hull.DistSquared(current, cand) > hull.DistSquared(current, best)) {
			best, group = cand, gi
		}
	}
	return best, group, group >= 0
}

// candidate returns the vertex of mh from which the whole mini-hull lies
// to the left of the ray out of current: the left tangent vertex. When
// current is itself a vertex of mh (or duplicates one), its CCW
// successor is the candidate instead.
func candidate(current arithm.Pair, mh hull.Ring) (arithm.Pair, bool) {
	if mh.N() == 0 {
		return arithm.Origin, false
	}
	idx, err := mh.LeftTangent(current)
	if err != nil {
		return arithm.Origin, false
	}
	cand := mh.At(idx)
	if cand == current {
		cand = mh.At(idx + 1)
	}
	if cand == current {
		return arithm.Origin, false
	}
	return cand, true
}

func snapshot(hulls []hull.Ring) [][]trace.XY {
	rings := make([][]arithm.Pair, len(hulls))
	for i, h := range hulls {
		rings[i] = h
	}
	return trace.Rings(rings)
}
