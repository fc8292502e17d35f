// Package jarvis builds convex hulls by gift wrapping (Jarvis march):
// starting from the leftmost point, each step scans all points and keeps
// the most counter-clockwise candidate. O(n·h) for h hull vertices,
// degrading to O(n²) when every point is on the hull.
package jarvis

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/hull"
	"github.com/npillmayer/hull/trace"
)

// tracer writes to trace with key 'hull'
func tracer() tracing.Trace {
	return tracing.Select("hull")
}

// March computes the counter-clockwise convex hull of points. Fewer
// than 3 points are returned unchanged. Ties between an exactly
// collinear candidate and the current best keep whichever lies farther
// from the current hull point, so interior collinear points are skipped.
//
// A safety bound aborts the walk with the partial hull should it ever
// exceed the input size; this cannot happen for consistent orientation
// results but guards against tolerance-induced loops.
func March(points []arithm.Pair, rec *trace.Recorder) hull.Ring {
	n := len(points)
	if n < 3 {
		return append(hull.Ring{}, points...)
	}
	start := hull.Leftmost(points)
	h := make(hull.Ring, 0, 8)
	p := start
	for iteration := 1; ; iteration++ {
		h = append(h, points[p])
		if rec.On() {
			rec.Record(&Walk{
				Point:     trace.Pt(points[p]),
				Index:     p,
				Iteration: iteration,
				Hull:      trace.Pts(h),
			})
		}

		// Retain the candidate forming the most counter-clockwise turn.
		q := (p + 1) % n
		for i := 0; i < n; i++ {
			if i == p {
				continue
			}
			orient := hull.Orientation(points[p], points[i], points[q])
			better := false
			reason := ""
			if orient > 0 {
				better = true
				reason = "more counter-clockwise"
			} else if orient == 0 &&
				hull.DistSquared(points[p], points[i]) > hull.DistSquared(points[p], points[q]) {
				better = true
				reason = "collinear but farther"
			}
			if rec.On() {
				rec.Record(&Probe{
					Point:       trace.Pt(points[p]),
					Candidate:   trace.Pt(points[q]),
					Probe:       trace.Pt(points[i]),
					Orientation: orient,
					Class:       classify(orient),
					Better:      better,
				})
			}
			if better {
				q = i
				if rec.On() {
					rec.Record(&Pick{
						Point:     trace.Pt(points[p]),
						Selected:  trace.Pt(points[i]),
						Reason:    reason,
						Iteration: iteration,
						Hull:      trace.Pts(h),
					})
				}
			}
		}

		p = q
		// Closure is by coordinates, not index: the winning candidate may
		// be a duplicate of the starting point at another index.
		if points[p] == points[start] {
			if rec.On() {
				rec.Record(&Done{Hull: trace.Pts(h)})
			}
			break
		}
		if len(h) > n {
			tracer().Errorf("gift wrap walk failed to close after %d steps, aborting", len(h))
			break
		}
	}
	return h
}

func classify(orient float64) string {
	switch {
	case orient > 0:
		return "counter_clockwise"
	case orient < 0:
		return "clockwise"
	}
	return "collinear"
}
