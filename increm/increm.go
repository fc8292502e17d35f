// Package increm maintains a convex hull incrementally: points are
// inserted one at a time, interior points are discarded after a
// containment test, and exterior points are spliced in between their two
// tangent vertices. Tangent location is O(log h) per insertion, O(n log h)
// overall.
package increm

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

// Builder maintains a running counter-clockwise hull. The zero value is
// usable; pass a recorder with NewBuilder to capture step records.
//
//	b := increm.NewBuilder(nil)
//	for _, p := range points {
//		b.Insert(p)
//	}
//	h := b.Ring()
type Builder struct {
	ring hull.Ring
	rec  *trace.Recorder
}

// NewBuilder creates a Builder recording its steps to rec (which may be
// nil for an untraced builder).
func NewBuilder(rec *trace.Recorder) *Builder {
	return &Builder{rec: rec}
}

// Ring returns the current hull. Callers must not modify it.
func (b *Builder) Ring() hull.Ring {
	return b.ring
}

// Insert adds one point to the hull. Part of builder functionality.
func (b *Builder) Insert(p arithm.Pair) *Builder {
	if b.ring.N() < 3 {
		b.seed(p)
		return b
	}
	if b.ring.Contains(p) {
		if b.rec.On() {
			b.rec.Record(&Inside{Point: trace.Pt(p), Hull: trace.Pts(b.ring)})
		}
		return b
	}
	b.splice(p)
	return b
}

// seed rebuilds the hull from scratch while it has fewer than 3
// vertices. The monotone chain keeps only extreme points, so duplicates
// and collinear runs may hold the hull below 3 vertices for a while.
func (b *Builder) seed(p arithm.Pair) {
	before := b.ring
	b.ring = graham.Chain(append(before.Dup(), p))
	if b.rec.On() {
		b.rec.Record(&Seed{
			Point:  trace.Pt(p),
			Before: trace.Pts(before),
			After:  trace.Pts(b.ring),
		})
	}
}

// splice replaces the vertex run hidden by p with p itself, keeping the
// two tangent vertices as the new edges' endpoints.
func (b *Builder) splice(p arithm.Pair) {
	ring := b.ring
	n := ring.N()
	rt, errR := ring.RightTangent(p)
	lt, errL := ring.LeftTangent(p)
	if errR != nil || errL != nil {
		// Cannot happen once seeded; skip the point rather than corrupt
		// the ring.
		tracer().Errorf("tangent lookup failed for %s, point skipped", p)
		return
	}
	if b.rec.On() {
		b.rec.Record(&Tangents{
			Point:      trace.Pt(p),
			Hull:       trace.Pts(ring),
			Right:      trace.Pt(ring[rt]),
			Left:       trace.Pt(ring[lt]),
			RightIndex: rt,
			LeftIndex:  lt,
		})
	}

	next := make(hull.Ring, 0, n+2)
	next = append(next, ring[rt], p)
	if rt <= lt {
		next = append(next, ring[lt:]...)
		next = append(next, ring[:rt]...)
	} else {
		// The kept run wraps around the seam of the circular index space.
		next = append(next, ring[lt:rt+1]...)
	}
	next = dedup(next)

	if b.rec.On() {
		b.rec.Record(&Spliced{
			Point:  trace.Pt(p),
			Before: trace.Pts(ring),
			After:  trace.Pts(next),
		})
	}
	b.ring = next
}

// dedup removes adjacent repeated vertices and an incidental closing
// duplicate left behind by the splice.
func dedup(ring hull.Ring) hull.Ring {
	out := ring[:0]
	for _, p := range ring {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	if len(out) >= 2 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// Hull computes the counter-clockwise convex hull of points in arrival
// order. Fewer than 3 points are returned unchanged.
func Hull(points []arithm.Pair, rec *trace.Recorder) hull.Ring {
	if len(points) < 3 {
		return append(hull.Ring{}, points...)
	}
	b := NewBuilder(rec)
	for _, p := range points {
		b.Insert(p)
	}
	if rec.On() {
		rec.Record(&Done{Hull: trace.Pts(b.Ring())})
	}
	return b.Ring()
}
