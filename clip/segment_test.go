package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectSegmentsCrossing(t *testing.T) {
	res := intersectSegments(xy{0, 0}, xy{4, 4}, xy{0, 4}, xy{4, 0})
	require.NotNil(t, res.point)
	require.NotNil(t, res.frac)
	assert.InDelta(t, 2, res.point.x, 1e-9)
	assert.InDelta(t, 2, res.point.y, 1e-9)
	assert.InDelta(t, 0.5, res.frac.alpha, 1e-9)
	assert.InDelta(t, 0.5, res.frac.beta, 1e-9)
}

func TestIntersectSegmentsParallelDisjoint(t *testing.T) {
	res := intersectSegments(xy{0, 0}, xy{1, 0}, xy{0, 1}, xy{1, 1})
	assert.Nil(t, res.point)
	assert.Nil(t, res.frac)
}

func TestIntersectSegmentsCollinearOverlap(t *testing.T) {
	res := intersectSegments(xy{0, 0}, xy{4, 0}, xy{2, 0}, xy{6, 0})
	assert.Nil(t, res.point)
	require.NotNil(t, res.frac)
	assert.InDelta(t, 0.5, res.frac.alpha, 1e-9) // b1=(2,0) is halfway along a1-a2
	assert.InDelta(t, -0.5, res.frac.beta, 1e-9) // a1=(0,0) is -0.5 along b1-b2
}

func TestIntersectSegmentsOutsideExtent(t *testing.T) {
	// The lines cross well outside segment A's own extent (alpha=5); the
	// primitive still reports the line intersection, leaving segment
	// clipping to the caller.
	res := intersectSegments(xy{0, 0}, xy{1, 0}, xy{5, 1}, xy{5, -1})
	require.NotNil(t, res.point)
	require.NotNil(t, res.frac)
	assert.InDelta(t, 5, res.point.x, 1e-9)
	assert.InDelta(t, 0, res.point.y, 1e-9)
	assert.InDelta(t, 5, res.frac.alpha, 1e-9)
	assert.InDelta(t, 0.5, res.frac.beta, 1e-9)
}

func TestCross(t *testing.T) {
	assert.Equal(t, 1.0, cross(xy{1, 0}, xy{0, 1}))
	assert.Equal(t, 0.0, cross(xy{1, 1}, xy{2, 2}))
}
