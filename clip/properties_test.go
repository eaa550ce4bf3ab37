package clip

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// eqArea fails the test unless two areas agree to within a small absolute
// tolerance, using the same epsilon-tolerant comparator the rest of the
// module's ambient stack uses for floating-point area checks.
func eqArea(t *testing.T, want, got float64) {
	t.Helper()
	if !floats.EqualWithinAbs(want, got, 1e-9) {
		t.Fatalf("area mismatch: want %v, got %v", want, got)
	}
}

// TestCommutativity checks that intersection and union do not depend on
// operand order, for a pair of overlapping polygons.
func TestCommutativity(t *testing.T) {
	p, q := diamondP(), diamondQ()

	pq, err := Intersection(p, q)
	require.NoError(t, err)
	qp, err := Intersection(q, p)
	require.NoError(t, err)
	eqArea(t, totalArea(pq), totalArea(qp))

	up, err := Union(p, q)
	require.NoError(t, err)
	uq, err := Union(q, p)
	require.NoError(t, err)
	eqArea(t, totalArea(up), totalArea(uq))
}

// TestIdempotence checks that the intersection and the union of a polygon
// with itself return that polygon's own area, and their difference none.
func TestIdempotence(t *testing.T) {
	p := diamondP()

	inter, err := Intersection(p, p)
	require.NoError(t, err)
	eqArea(t, polygonArea(p), totalArea(inter))

	union, err := Union(p, p)
	require.NoError(t, err)
	eqArea(t, polygonArea(p), totalArea(union))

	diff, err := Difference(p, p)
	require.NoError(t, err)
	eqArea(t, 0, totalArea(diff))
}

// TestInclusionExclusion checks the classic set-theoretic identity
// area(union) = area(p) + area(q) - area(intersection).
func TestInclusionExclusion(t *testing.T) {
	p, q := diamondP(), diamondQ()

	inter, err := Intersection(p, q)
	require.NoError(t, err)
	union, err := Union(p, q)
	require.NoError(t, err)

	eqArea(t, polygonArea(p)+polygonArea(q)-totalArea(inter), totalArea(union))
}

// TestDifferenceComplement checks area(p) = area(p-q) + area(p intersect q).
func TestDifferenceComplement(t *testing.T) {
	p, q := diamondP(), diamondQ()

	diff, err := Difference(p, q)
	require.NoError(t, err)
	inter, err := Intersection(p, q)
	require.NoError(t, err)

	eqArea(t, polygonArea(p), totalArea(diff)+totalArea(inter))
}

// TestUnionCoversBoth checks that union area is at least each operand's
// own area and at most their sum, for any pair of overlapping polygons.
func TestUnionCoversBoth(t *testing.T) {
	p, q := diamondP(), diamondQ()

	union, err := Union(p, q)
	require.NoError(t, err)

	ua := totalArea(union)
	if ua < polygonArea(p) || ua < polygonArea(q) {
		t.Fatalf("union area %v smaller than an operand", ua)
	}
	if ua > polygonArea(p)+polygonArea(q)+1e-9 {
		t.Fatalf("union area %v exceeds sum of operands", ua)
	}
}

// TestDoubleDifferenceIsIntersectionComplement checks
// area(p) - area(p - q) == area(p intersect q), the oracle-property form
// used to cross-check the engine against an independent computation of
// the same quantity.
func TestDoubleDifferenceIsIntersectionComplement(t *testing.T) {
	p, q := outerSquare(), innerSquare()

	diff, err := Difference(p, q)
	require.NoError(t, err)
	inter, err := Intersection(p, q)
	require.NoError(t, err)

	eqArea(t, polygonArea(p)-totalArea(diff), totalArea(inter))
}
