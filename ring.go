package hull

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
)

// Ring is a convex polygon, represented by its boundary vertices in
// counter-clockwise order without a closing duplicate. Rings of fewer
// than 3 vertices are the degenerate pass-through results of the hull
// algorithms.
type Ring []arithm.Pair

// N returns the vertex count.
func (r Ring) N() int {
	return len(r)
}

// At returns the vertex at position (i mod N). Negative indices wrap
// around, so r.At(-1) is the last vertex.
func (r Ring) At(i int) arithm.Pair {
	n := len(r)
	i %= n
	if i < 0 {
		i += n
	}
	return r[i]
}

// Dup returns a copy of the ring. Hulls own their vertices; callers that
// keep snapshots must not alias the original storage.
func (r Ring) Dup() Ring {
	return append(Ring{}, r...)
}

// Contains reports whether p lies inside the ring or exactly on its
// boundary. The ring must be convex and counter-clockwise; the test
// confirms that no edge has p strictly to its right.
func (r Ring) Contains(p arithm.Pair) bool {
	switch len(r) {
	case 0:
		return false
	case 1:
		return DistSquared(p, r[0]) < Epsilon
	case 2:
		a, b := r[0], r[1]
		if Orientation(a, b, p) != 0 {
			return false
		}
		// p is on the carrier line; check it lies between a and b
		apx, apy := p.X()-a.X(), p.Y()-a.Y()
		abx, aby := b.X()-a.X(), b.Y()-a.Y()
		denom := abx*abx + aby*aby
		if denom == 0 {
			return DistSquared(p, a) < Epsilon
		}
		t := (apx*abx + apy*aby) / denom
		return t >= 0 && t <= 1
	}
	for i := range r {
		if Orientation(r.At(i), r.At(i+1), p) < 0 {
			return false
		}
	}
	return true
}

// Contour converts the ring to a polyclip contour for boolean polygon
// operations.
func (r Ring) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(r))
	for _, p := range r {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// Matches reports whether two rings describe the same convex region,
// regardless of rotation, reflection, or retained collinear boundary
// points. Identical vertex sets match immediately; proper rings are
// otherwise compared by symmetric difference, degenerate rings (fewer
// than 3 vertices) by vertex sets only.
func (r Ring) Matches(other Ring) bool {
	if sameVertexSet(r, other) {
		return true
	}
	if len(r) < 3 || len(other) < 3 {
		return false
	}
	a := polyclip.Polygon{r.Contour()}
	b := polyclip.Polygon{other.Contour()}
	diff := a.Construct(polyclip.XOR, b)
	for _, c := range diff {
		if len(c) > 0 {
			return false
		}
	}
	return true
}

func sameVertexSet(a, b Ring) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, p := range a {
		for j, q := range b {
			if !used[j] && p == q {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// AsString returns the ring as a one-line debugging string, e.g.
//
//	(0,0) -- (4,0) -- (4,4) -- (0,4) -- cycle
func AsString(r Ring) string {
	var s string
	for i, p := range r {
		if i > 0 {
			s += " -- "
		}
		s += p.String()
	}
	if len(r) > 0 {
		s += " -- cycle"
	}
	return s
}
