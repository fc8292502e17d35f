package hull_test

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/hull"
	"github.com/npillmayer/hull/graham"
	"github.com/npillmayer/hull/increm"
	"github.com/npillmayer/hull/jarvis"
	"github.com/npillmayer/hull/tchan"
	"github.com/npillmayer/hull/trace"
)

type hullFunc func([]arithm.Pair, *trace.Recorder) hull.Ring

var allAlgorithms = map[string]hullFunc{
	"graham":      graham.Scan,
	"jarvis":      jarvis.March,
	"chan":        tchan.Hull,
	"incremental": increm.Hull,
}

func vertexSet(r hull.Ring) map[arithm.Pair]bool {
	set := make(map[arithm.Pair]bool, r.N())
	for _, p := range r {
		set[p] = true
	}
	return set
}

// isConvexCCW checks that no consecutive vertex triple, wraparound
// included, makes a right turn.
func isConvexCCW(r hull.Ring) bool {
	for i := 0; i < r.N(); i++ {
		if hull.Orientation(r.At(i), r.At(i+1), r.At(i+2)) < 0 {
			return false
		}
	}
	return true
}

func TestSquareWithInteriorPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []arithm.Pair{
		arithm.P(0, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4), arithm.P(2, 2),
	}
	want := vertexSet(hull.Ring{arithm.P(0, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4)})
	for name, fn := range allAlgorithms {
		h := fn(points, nil)
		assert.Equal(t, 4, h.N(), "%s hull size", name)
		assert.Equal(t, want, vertexSet(h), "%s vertex set", name)
		assert.True(t, isConvexCCW(h), "%s winding", name)
	}
}

func TestQuadrilateralWithInteriorPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []arithm.Pair{
		arithm.P(0, 0), arithm.P(3, 1), arithm.P(4, 4), arithm.P(1, 3), arithm.P(2, 2),
	}
	want := vertexSet(hull.Ring{arithm.P(0, 0), arithm.P(3, 1), arithm.P(4, 4), arithm.P(1, 3)})
	for name, fn := range allAlgorithms {
		h := fn(points, nil)
		assert.Equal(t, 4, h.N(), "%s hull size", name)
		assert.Equal(t, want, vertexSet(h), "%s vertex set", name)
		assert.True(t, isConvexCCW(h), "%s winding", name)
	}
}

// A jagged curve with a small hull: the group size guessing must settle
// on an m well below the input size.
func TestSmallHullClosesWithSmallGroupSize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var points []arithm.Pair
	for i := 0; i < 50; i++ {
		points = append(points, arithm.P(float64(i), float64((i*i)%17)))
	}
	rec := trace.New()
	h := tchan.Hull(points, rec)
	g := graham.Scan(points, nil)
	assert.Equal(t, vertexSet(g), vertexSet(h), "hybrid and monotone chain disagree")

	var lastGuess *tchan.Guess
	for _, s := range rec.Steps() {
		if guess, ok := s.(*tchan.Guess); ok {
			lastGuess = guess
		}
	}
	require.NotNil(t, lastGuess)
	assert.Less(t, lastGuess.M, len(points), "group size should stay below n for a small hull")

	done, ok := rec.Steps()[rec.Len()-1].(*tchan.Done)
	require.True(t, ok, "last step should be completion")
	assert.False(t, done.Fallback)
}

func TestRandomCloudProperties(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{10, 40, 120} {
		points := make([]arithm.Pair, n)
		for i := range points {
			points[i] = arithm.P(rng.Float64()*100, rng.Float64()*100)
		}
		input := vertexSet(hull.Ring(points))

		var reference hull.Ring
		for name, fn := range allAlgorithms {
			h := fn(points, nil)
			assert.True(t, isConvexCCW(h), "%s winding, n=%d", name, n)
			for _, v := range h {
				assert.True(t, input[v], "%s returned a vertex not in the input", name)
			}
			for _, p := range points {
				assert.True(t, h.Contains(p), "%s hull misses input point %s", name, p)
			}
			if reference == nil {
				reference = h
			} else {
				assert.True(t, reference.Matches(h), "%s disagrees on n=%d", name, n)
			}

			// Re-running on the hull's own vertices changes nothing.
			again := fn(h, nil)
			assert.True(t, h.Matches(again), "%s not idempotent, n=%d", name, n)
		}
	}
}

func TestDuplicateInputPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Duplicated extreme points (including the leftmost starting point)
	// and duplicated interior points; every vertex still occurs once and
	// the algorithms keep agreeing.
	points := []arithm.Pair{
		arithm.P(0, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4),
		arithm.P(0, 0), arithm.P(4, 4), arithm.P(2, 2), arithm.P(2, 2),
	}
	want := vertexSet(hull.Ring{arithm.P(0, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4)})
	for name, fn := range allAlgorithms {
		h := fn(points, nil)
		assert.Equal(t, 4, h.N(), "%s hull size", name)
		assert.Equal(t, want, vertexSet(h), "%s vertex set", name)
	}

	// All points coincide: a single-vertex hull from every algorithm.
	same := []arithm.Pair{arithm.P(1, 1), arithm.P(1, 1), arithm.P(1, 1)}
	for name, fn := range allAlgorithms {
		h := fn(same, nil)
		assert.Equal(t, 1, h.N(), "%s on coincident points", name)
	}
}

func TestDegenerateInputs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	small := [][]arithm.Pair{
		nil,
		{arithm.P(1, 2)},
		{arithm.P(1, 2), arithm.P(3, 4)},
	}
	for name, fn := range allAlgorithms {
		for _, points := range small {
			h := fn(points, nil)
			assert.Equal(t, len(points), h.N(), "%s on %d points", name, len(points))
			for i, p := range points {
				assert.Equal(t, p, h[i], "%s must pass tiny inputs through", name)
			}
		}
		// Collinear input collapses to the two extreme points.
		collinear := []arithm.Pair{arithm.P(0, 0), arithm.P(2, 0), arithm.P(4, 0)}
		h := fn(collinear, nil)
		assert.Equal(t, vertexSet(hull.Ring{arithm.P(0, 0), arithm.P(4, 0)}), vertexSet(h),
			"%s on collinear input", name)
	}
}
