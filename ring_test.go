package hull

import (
	"testing"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func unitSquare() Ring {
	return Ring{arithm.P(0, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4)}
}

func TestRingAtWrapsAround(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := unitSquare()
	assert.Equal(t, r[0], r.At(4))
	assert.Equal(t, r[3], r.At(-1))
	assert.Equal(t, r[1], r.At(9))
}

func TestRingContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := unitSquare()
	assert.True(t, r.Contains(arithm.P(2, 2)), "interior point")
	assert.True(t, r.Contains(arithm.P(0, 0)), "vertex counts as inside")
	assert.True(t, r.Contains(arithm.P(2, 0)), "boundary point counts as inside")
	assert.False(t, r.Contains(arithm.P(5, 2)))
	assert.False(t, r.Contains(arithm.P(-0.001, 2)))
}

func TestRingContainsDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.False(t, Ring{}.Contains(arithm.P(0, 0)))

	single := Ring{arithm.P(1, 1)}
	assert.True(t, single.Contains(arithm.P(1, 1)))
	assert.False(t, single.Contains(arithm.P(1, 2)))

	segment := Ring{arithm.P(0, 0), arithm.P(4, 0)}
	assert.True(t, segment.Contains(arithm.P(2, 0)))
	assert.True(t, segment.Contains(arithm.P(4, 0)))
	assert.False(t, segment.Contains(arithm.P(5, 0)), "beyond the segment")
	assert.False(t, segment.Contains(arithm.P(2, 1)), "off the carrier line")
}

func TestRingContainsAgreesWithPolyclip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Ring{arithm.P(0, 0), arithm.P(6, 1), arithm.P(7, 5), arithm.P(2, 6), arithm.P(-1, 3)}
	c := r.Contour()
	probes := []arithm.Pair{
		arithm.P(3, 3), arithm.P(6, 4), arithm.P(-2, 3), arithm.P(10, 10), arithm.P(1, 1),
	}
	for _, p := range probes {
		want := c.Contains(polyclip.Point{X: p.X(), Y: p.Y()})
		assert.Equal(t, want, r.Contains(p), "disagreement with polyclip raycast at %s", p)
	}
}

func TestRingMatchesModuloRotation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := unitSquare()
	rotated := Ring{r[2], r[3], r[0], r[1]}
	assert.True(t, r.Matches(rotated))

	// A retained collinear boundary point describes the same region.
	withCollinear := Ring{arithm.P(0, 0), arithm.P(2, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4)}
	assert.True(t, r.Matches(withCollinear))

	shifted := Ring{arithm.P(1, 0), arithm.P(5, 0), arithm.P(5, 4), arithm.P(1, 4)}
	assert.False(t, r.Matches(shifted))
}

func TestRingMatchesDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := Ring{arithm.P(0, 0), arithm.P(1, 1)}
	b := Ring{arithm.P(1, 1), arithm.P(0, 0)}
	assert.True(t, a.Matches(b))
	assert.False(t, a.Matches(Ring{arithm.P(0, 0)}))
}

func TestAsString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Ring{arithm.P(0, 0), arithm.P(1, 3)}
	assert.Equal(t, "(0,0) -- (1,3) -- cycle", AsString(r))
	assert.Equal(t, "", AsString(Ring{}))
}
