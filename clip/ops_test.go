package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two congruent squares (drawn as diamonds) overlapping on a band: P is
// centered at x=5, Q at x=8, each with diagonal 10, so each has area 50
// and the overlap is the smaller square (6.5,3.5), (10,0), (6.5,-3.5),
// (3,0), of area 24.5.
func diamondP() testPolygon {
	return mkPoly(mkRing(pt(0, 0), pt(5, 5), pt(10, 0), pt(5, -5)))
}

func diamondQ() testPolygon {
	return mkPoly(mkRing(pt(3, 0), pt(8, 5), pt(13, 0), pt(8, -5)))
}

func TestIntersectionOverlappingDiamonds(t *testing.T) {
	got, err := Intersection(diamondP(), diamondQ())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 24.5, polygonArea(got[0]), 1e-9)
}

func TestUnionOverlappingDiamonds(t *testing.T) {
	got, err := Union(diamondP(), diamondQ())
	require.NoError(t, err)
	require.Len(t, got, 1)
	// union = area(P) + area(Q) - area(intersection)
	assert.InDelta(t, 50+50-24.5, polygonArea(got[0]), 1e-9)
}

func TestDifferenceOverlappingDiamonds(t *testing.T) {
	got, err := Difference(diamondP(), diamondQ())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 50-24.5, polygonArea(got[0]), 1e-9)
}

// Disjoint diamonds: Q shifted well clear of P.
func diamondQFarAway() testPolygon {
	return mkPoly(mkRing(pt(23, 0), pt(28, 5), pt(33, 0), pt(28, -5)))
}

func TestDisjointPolygons(t *testing.T) {
	p, q := diamondP(), diamondQFarAway()

	inter, err := Intersection(p, q)
	require.NoError(t, err)
	assert.Empty(t, inter)

	union, err := Union(p, q)
	require.NoError(t, err)
	require.Len(t, union, 2)
	assert.InDelta(t, 100, totalArea(union), 1e-9)

	diff, err := Difference(p, q)
	require.NoError(t, err)
	require.Len(t, diff, 1)
	assert.InDelta(t, 50, polygonArea(diff[0]), 1e-9)
}

// A 3x3 square containing a fully interior 1x1 square.
func outerSquare() testPolygon {
	return mkPoly(mkRing(pt(0, 0), pt(3, 0), pt(3, 3), pt(0, 3)))
}

func innerSquare() testPolygon {
	return mkPoly(mkRing(pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2)))
}

func TestContainment(t *testing.T) {
	outer, inner := outerSquare(), innerSquare()

	inter, err := Intersection(outer, inner)
	require.NoError(t, err)
	require.Len(t, inter, 1)
	assert.InDelta(t, 1, polygonArea(inter[0]), 1e-9)

	union, err := Union(outer, inner)
	require.NoError(t, err)
	require.Len(t, union, 1)
	assert.InDelta(t, 9, polygonArea(union[0]), 1e-9)

	diff, err := Difference(outer, inner)
	require.NoError(t, err)
	require.Len(t, diff, 1)
	assert.InDelta(t, 8, polygonArea(diff[0]), 1e-9)
	require.Len(t, diff[0].Holes(), 1)
}

// Two triangles that touch at exactly one shared vertex: no true crossing
// exists, so the engine must fall back to its no-intersection containment
// analysis rather than emit a degenerate zero-area ring.
func TestSinglePointTouch(t *testing.T) {
	p := mkPoly(mkRing(pt(0, 0), pt(2, 0), pt(0, 2)))
	q := mkPoly(mkRing(pt(0, 0), pt(-2, 0), pt(0, -2)))

	inter, err := Intersection(p, q)
	require.NoError(t, err)
	assert.Empty(t, inter)

	union, err := Union(p, q)
	require.NoError(t, err)
	assert.InDelta(t, 4, totalArea(union), 1e-9)

	diff, err := Difference(p, q)
	require.NoError(t, err)
	require.Len(t, diff, 1)
	assert.InDelta(t, 2, polygonArea(diff[0]), 1e-9)
}

// The worked example from the Greiner-Hormann paper: a wide rectangle P
// and a zigzag Q that pokes above P's bottom edge in two separate places,
// so the two intersection pieces are disjoint triangular wedges rather
// than one connected ring.
func greinerP() testPolygon {
	return mkPoly(mkRing(pt(0, 0), pt(0, 4), pt(7, 4), pt(7, 0)))
}

func greinerQ() testPolygon {
	return mkPoly(mkRing(pt(1, -3), pt(1, 1), pt(3.5, -1.5), pt(6, 1), pt(6, -3)))
}

func TestGreinerPaperTwoIntersectionRings(t *testing.T) {
	got, err := Intersection(greinerP(), greinerQ())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 1.0, totalArea(got), 1e-9)
	for _, piece := range got {
		assert.InDelta(t, 0.5, polygonArea(piece), 1e-9)
	}
}

// Fig. 13: P and Q share exactly the same six vertices, connected into two
// different hexagons -- a rectangle with a trapezoidal notch cut from the
// top (P) and the same rectangle notched from the bottom instead (Q). P
// and Q share three full edges outright: (3,1)-(1,1) in the same
// direction, and (4,0)-(4,2) and (0,0)-(0,2) each in opposite directions.
// Every vertex of either ring coincides with a vertex of the other, and
// the two shared-direction/opposite-direction edges pin the classifier's
// collinear-chain logic against both of its terminal cases at once: the
// notches only touch along the zero-width segment (1,1)-(3,1), so the true
// intersection is two disjoint unit-area triangles, not one ring.
func fig13P() testPolygon {
	return mkPoly(mkRing(pt(0, 0), pt(4, 0), pt(4, 2), pt(3, 1), pt(1, 1), pt(0, 2)))
}

func fig13Q() testPolygon {
	return mkPoly(mkRing(pt(4, 0), pt(3, 1), pt(1, 1), pt(0, 0), pt(0, 2), pt(4, 2)))
}

func TestFig13EveryVertexIsIntersection(t *testing.T) {
	got, err := Intersection(fig13P(), fig13Q())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.InDelta(t, 2.0, totalArea(got), 1e-9)
	for _, piece := range got {
		assert.InDelta(t, 1.0, polygonArea(piece), 1e-9)
	}
}

func TestUnsupportedOperandNil(t *testing.T) {
	_, err := Intersection(nil, diamondP())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedOperand)
}
