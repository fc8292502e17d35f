package hull

import (
	"errors"
	"math"

	"github.com/npillmayer/arithm"
)

// ErrEmptyRing indicates a tangent query on a ring without vertices.
var ErrEmptyRing = errors.New("tangent query on empty ring")

// RightTangent returns the index of the vertex v where visibility from p
// ends: the edge (v, next) turns clockwise-or-collinear as seen from p
// while the edge (prev, v) turns strictly counter-clockwise. Every other
// vertex of the ring lies to the right of the ray p→v.
//
// The search is a binary search over the circular vertex index space,
// O(log n), with an exhaustive fallback scan once the remaining range is
// small. Callers must not query with p inside the ring.
func (r Ring) RightTangent(p arithm.Pair) (int, error) {
	return r.tangent(p, false)
}

// LeftTangent returns the index of the vertex where visibility from p
// begins; every other vertex of the ring lies to the left of the ray p→v.
// See RightTangent for the search strategy.
func (r Ring) LeftTangent(p arithm.Pair) (int, error) {
	return r.tangent(p, true)
}

func (r Ring) tangent(p arithm.Pair, left bool) (int, error) {
	n := len(r)
	switch n {
	case 0:
		return 0, ErrEmptyRing
	case 1:
		return 0, nil
	case 2:
		// Direct case analysis: the right tangent is the vertex the other
		// one is clockwise from, the left tangent its counterpart.
		ccw := Orientation(p, r[0], r[1]) > 0
		if ccw == left {
			return 0, nil
		}
		return 1, nil
	}

	lo, hi := 0, n-1
	maxIters := int(2 * (math.Log2(float64(n)) + 3))
	for iter := 0; iter < maxIters; iter++ {
		mid := (lo + hi) / 2
		sideNext := Orientation(p, r.At(mid), r.At(mid+1))
		sidePrev := Orientation(p, r.At(mid-1), r.At(mid))
		if tangentAt(sideNext, sidePrev, left) {
			return mid, nil
		}
		// Shrink towards the half that can still contain the tangent.
		descending := sideNext > 0
		if left {
			descending = sideNext <= 0
		}
		if descending {
			hi = (mid - 1 + n) % n
		} else {
			lo = (mid + 1) % n
		}
		if (hi+n-lo)%n <= 2 {
			break
		}
	}

	// Exhaustive scan over the remainder. This bounds the worst case and
	// sidesteps wraparound subtleties near the seam of the index space.
	for k := 0; k < n; k++ {
		i := (lo + k) % n
		sideNext := Orientation(p, r.At(i), r.At(i+1))
		sidePrev := Orientation(p, r.At(i-1), r.At(i))
		if tangentAt(sideNext, sidePrev, left) {
			return i, nil
		}
	}
	tracer().Errorf("no tangent from %s onto %s", p, AsString(r))
	return 0, nil
}

func tangentAt(sideNext, sidePrev float64, left bool) bool {
	if left {
		return sideNext > 0 && sidePrev <= 0
	}
	return sideNext <= 0 && sidePrev > 0
}
