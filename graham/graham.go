// Package graham builds convex hulls with the monotone chain variant of
// Graham's scan: points are sorted by (x, y) and two chains are built by
// stack-popping every triple that fails to make a strict left turn. The
// sort dominates at O(n log n); the scan itself is amortized O(n).
//
// Scan is the traced, stand-alone algorithm. Chain is the untraced
// subroutine form used by Chan's algorithm and the incremental builder.
package graham

import (
	"sort"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/hull"
	"github.com/npillmayer/hull/trace"
)

// Scan computes the counter-clockwise convex hull of points. Fewer than
// 3 points are returned unchanged (a degenerate hull, not an error).
// Duplicate input points and collinear boundary points do not survive
// into the hull.
//
// If rec is non-nil, every sorting, testing, popping and accepting
// decision is recorded.
func Scan(points []arithm.Pair, rec *trace.Recorder) hull.Ring {
	if len(points) < 3 {
		return append(hull.Ring{}, points...)
	}
	sorted := compact(sortedByX(points))
	if rec.On() {
		rec.Record(&Sorted{Points: trace.Pts(sorted)})
	}
	if len(sorted) == 1 {
		h := hull.Ring(sorted)
		if rec.On() {
			rec.Record(&Done{Hull: trace.Pts(h)})
		}
		return h
	}
	lower := scanChain(sorted, false, "lower", rec)
	upper := scanChain(sorted, true, "upper", rec)
	h := combine(lower, upper)
	if rec.On() {
		rec.Record(&Done{
			Lower: trace.Pts(lower),
			Upper: trace.Pts(upper),
			Hull:  trace.Pts(h),
		})
	}
	return h
}

// Chain is the subroutine form of the scan: duplicates are removed up
// front and no trace is kept. A single point (after deduplication) is
// returned as is; two distinct points form a degenerate 2-ring.
func Chain(points []arithm.Pair) hull.Ring {
	pts := sortedByX(points)
	pts = compact(pts)
	if len(pts) <= 1 {
		return hull.Ring(pts)
	}
	lower := scanChain(pts, false, "", nil)
	upper := scanChain(pts, true, "", nil)
	return combine(lower, upper)
}

func sortedByX(points []arithm.Pair) []arithm.Pair {
	pts := append([]arithm.Pair{}, points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X() != pts[j].X() {
			return pts[i].X() < pts[j].X()
		}
		return pts[i].Y() < pts[j].Y()
	})
	return pts
}

// compact removes exactly-equal neighbors from a sorted slice.
func compact(pts []arithm.Pair) []arithm.Pair {
	out := pts[:0]
	for _, p := range pts {
		if len(out) == 0 || out[len(out)-1] != p {
			out = append(out, p)
		}
	}
	return out
}

// scanChain builds one chain over the sorted points, in ascending order
// for the lower chain and descending for the upper. A point joins the
// chain only after every top-of-stack point that would break the strict
// left turn invariant has been popped.
func scanChain(sorted []arithm.Pair, reversed bool, label string, rec *trace.Recorder) hull.Ring {
	n := len(sorted)
	chain := make(hull.Ring, 0, n)
	for k := 0; k < n; k++ {
		i := k
		if reversed {
			i = n - 1 - k
		}
		p := sorted[i]
		if rec.On() {
			rec.Record(&Processing{Chain: label, Point: trace.Pt(p), Index: i, Stack: trace.Pts(chain)})
		}
		for len(chain) >= 2 {
			a, b := chain[len(chain)-2], chain[len(chain)-1]
			orient := hull.Orientation(a, b, p)
			if rec.On() {
				rec.Record(&Tested{
					Chain:       label,
					Test:        trace.Pts([]arithm.Pair{a, b, p}),
					Orientation: orient,
					LeftTurn:    orient > 0,
				})
			}
			if orient > 0 {
				if rec.On() {
					rec.Record(&Accepted{Chain: label, Orientation: orient})
				}
				break
			}
			if rec.On() {
				rec.Record(&Popped{Chain: label, Point: trace.Pt(b), Orientation: orient})
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
		if rec.On() {
			rec.Record(&Added{Chain: label, Point: trace.Pt(p), Stack: trace.Pts(chain)})
		}
	}
	return chain
}

// combine closes the loop from both chains, dropping each chain's last
// point (the other chain's starting point).
func combine(lower, upper hull.Ring) hull.Ring {
	h := make(hull.Ring, 0, len(lower)+len(upper)-2)
	h = append(h, lower[:len(lower)-1]...)
	h = append(h, upper[:len(upper)-1]...)
	return h
}
