package jarvis

import (
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/hull/trace"
)

func TestMarchSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []arithm.Pair{
		arithm.P(4, 4), arithm.P(0, 0), arithm.P(2, 2), arithm.P(4, 0), arithm.P(0, 4),
	}
	h := March(points, nil)
	require.Equal(t, 4, h.N())
	// The walk starts at the leftmost point and wraps counter-clockwise.
	assert.Equal(t, arithm.P(0, 0), h[0])
	assert.Equal(t, arithm.P(4, 0), h[1])
	assert.Equal(t, arithm.P(4, 4), h[2])
	assert.Equal(t, arithm.P(0, 4), h[3])
}

func TestMarchSkipsInteriorCollinearPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// (2,0) and (4,2) lie on hull edges; the farther-ties rule must walk
	// past them to the edge endpoints.
	points := []arithm.Pair{
		arithm.P(0, 0), arithm.P(2, 0), arithm.P(4, 0), arithm.P(4, 2),
		arithm.P(4, 4), arithm.P(0, 4),
	}
	h := March(points, nil)
	assert.Equal(t, 4, h.N())
	assert.NotContains(t, h, arithm.P(2, 0))
	assert.NotContains(t, h, arithm.P(4, 2))
}

func TestMarchClosesOnDuplicateOfStart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// The trailing (0,0) duplicates the starting point; the walk must
	// close on it by coordinates instead of wrapping a second time.
	points := []arithm.Pair{
		arithm.P(0, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4), arithm.P(0, 0),
	}
	h := March(points, nil)
	require.Equal(t, 4, h.N())
	seen := make(map[arithm.Pair]bool)
	for _, p := range h {
		assert.False(t, seen[p], "vertex %s occurs twice", p)
		seen[p] = true
	}
}

func TestMarchAllPointsCoincide(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []arithm.Pair{arithm.P(1, 1), arithm.P(1, 1), arithm.P(1, 1)}
	h := March(points, nil)
	require.Equal(t, 1, h.N())
	assert.Equal(t, arithm.P(1, 1), h[0])
}

func TestMarchTinyInputsPassThrough(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	two := []arithm.Pair{arithm.P(3, 3), arithm.P(1, 1)}
	h := March(two, nil)
	require.Equal(t, 2, h.N())
	assert.Equal(t, two[0], h[0])
}

func TestMarchStepRecords(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []arithm.Pair{
		arithm.P(0, 0), arithm.P(4, 0), arithm.P(4, 4), arithm.P(0, 4), arithm.P(2, 2),
	}
	rec := trace.New()
	March(points, rec)
	steps := rec.Steps()
	require.NotEmpty(t, steps)

	walk, ok := steps[0].(*Walk)
	require.True(t, ok, "first step starts the walk")
	assert.Equal(t, trace.XY{X: 0, Y: 0}, walk.Point)
	assert.Equal(t, 1, walk.Iteration)

	done, ok := steps[len(steps)-1].(*Done)
	require.True(t, ok, "last step is completion")
	assert.Len(t, done.Hull, 4)

	// Four walk steps, each probing the n-1 other points.
	var walks, probes int
	for _, s := range steps {
		switch s.(type) {
		case *Walk:
			walks++
		case *Probe:
			probes++
		}
	}
	assert.Equal(t, 4, walks)
	assert.Equal(t, 4*(len(points)-1), probes)
}
