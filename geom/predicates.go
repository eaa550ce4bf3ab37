package geom

import "zappem.net/pub/math/polyclip/clip"

// This file implements an OGC/DE-9IM-flavored relation predicate layer on
// top of the same point-in-ring oracle the clip engine uses internally
// (clip.Locate) plus the bounding-box short-circuits
// zappem.net/pub/math/polygon uses throughout its own intersect/combine
// code (BB, MinMax). Because the module's own Non-goals rule out
// self-intersecting input, these predicates are vertex-and-boundary
// based rather than a full interior/boundary/exterior DE-9IM matrix:
// sufficient for the simple-ring polygons this package accepts
// everywhere else.

// bboxOverlap reports whether the bounding boxes of a and b overlap,
// used as a cheap early-out before the more expensive vertex and edge
// scans below.
func bboxOverlap(a, b Ring) bool {
	aLo, aHi := a.BoundingBox()
	bLo, bHi := b.BoundingBox()
	return aLo[0] <= bHi[0] && aHi[0] >= bLo[0] && aLo[1] <= bHi[1] && aHi[1] >= bLo[1]
}

// allVerticesIn reports whether every vertex of r lies inside or on
// target.
func allVerticesIn(r Ring, target Ring) bool {
	for _, p := range r.Open() {
		in, on, _ := clip.Locate(p, target)
		if !in && !on {
			return false
		}
	}
	return true
}

// anyVertexStrictlyInside reports whether any vertex of r lies strictly
// inside target (on-boundary does not count).
func anyVertexStrictlyInside(r Ring, target Ring) bool {
	for _, p := range r.Open() {
		in, _, _ := clip.Locate(p, target)
		if in {
			return true
		}
	}
	return false
}

// anyVertexOnBoundary reports whether any vertex of r lies exactly on
// target's boundary. Two rings that only touch tip-to-tip at a shared
// vertex never produce a properSegmentCrossing and, when the touching
// edges run collinear with each other, never produce a
// segmentIntersectionPoint either (that function ignores collinear
// pairs), so Disjoint and Touches also need this vertex-coincidence
// check to see the shared point.
func anyVertexOnBoundary(r Ring, target Ring) bool {
	for _, p := range r.Open() {
		_, on, _ := clip.Locate(p, target)
		if on {
			return true
		}
	}
	return false
}

// boundariesShareAPoint reports whether a and b's boundaries have any
// point in common: a transversal crossing, a collinear overlap endpoint,
// or a bare vertex-to-vertex or vertex-to-edge touch.
func boundariesShareAPoint(a, b Ring) bool {
	return len(IntersectionPoints(a, b)) > 0 ||
		anyVertexOnBoundary(a, b) || anyVertexOnBoundary(b, a)
}

// properSegmentCrossing reports whether segments (a1,a2) and (b1,b2)
// cross transversally, each strictly separating the other's endpoints --
// a shared endpoint or a tangential touch does not count.
func properSegmentCrossing(a1, a2, b1, b2 Point) bool {
	d1 := cross2(a2.Sub(a1), b1.Sub(a1))
	d2 := cross2(a2.Sub(a1), b2.Sub(a1))
	d3 := cross2(b2.Sub(b1), a1.Sub(b1))
	d4 := cross2(b2.Sub(b1), a2.Sub(b1))
	return (d1 > 0) != (d2 > 0) && d1 != 0 && d2 != 0 &&
		(d3 > 0) != (d4 > 0) && d3 != 0 && d4 != 0
}

func cross2(a, b Point) float64 { return a[0]*b[1] - a[1]*b[0] }

// boundariesCrossProperly reports whether any edge of a crosses any edge
// of b transversally.
func boundariesCrossProperly(a, b Ring) bool {
	ea, eb := a.Open(), b.Open()
	for i := range ea {
		a1, a2 := ea[i], ea[(i+1)%len(ea)]
		for j := range eb {
			b1, b2 := eb[j], eb[(j+1)%len(eb)]
			if properSegmentCrossing(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

// segmentIntersectionPoint returns the point at which segments (a1,a2)
// and (b1,b2) meet, if any, and whether one exists. Parallel segments
// (including collinear overlaps) are reported as no intersection here;
// IntersectionPoints below reports a vertex where an edge of each ring
// starts by itself and uses this function for every other meeting point.
func segmentIntersectionPoint(a1, a2, b1, b2 Point) (Point, bool) {
	r, s := a2.Sub(a1), b2.Sub(b1)
	denom := cross2(r, s)
	if denom == 0 {
		return Point{}, false
	}
	qmp := b1.Sub(a1)
	t := cross2(qmp, s) / denom
	u := cross2(qmp, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a1.Add(r.Scale(t)), true
}

// IntersectionPoints returns every point at which a's boundary meets b's
// boundary. Each edge is treated as half-open, [p1, p2): an edge owns its
// start point but not its end point, so a vertex shared by two adjacent
// edges is reported exactly once (by the edge that starts there) rather
// than once per incident edge pair. Downstream predicates (Disjoint and
// Touches, through boundariesShareAPoint) depend on this exact
// convention; do not change it without updating them.
func IntersectionPoints(a, b Ring) []Point {
	ea, eb := a.Open(), b.Open()
	seen := map[Point]bool{}
	var out []Point
	for i := range ea {
		p1, p2 := ea[i], ea[(i+1)%len(ea)]
		for j := range eb {
			q1, q2 := eb[j], eb[(j+1)%len(eb)]
			var pt Point
			var ok bool
			if MatchPoint(p1, q1) {
				// Both edges start at this shared vertex, so this pair
				// owns it, even when the two edges run collinear.
				pt, ok = p1, true
			} else {
				pt, ok = segmentIntersectionPoint(p1, p2, q1, q2)
			}
			if !ok {
				continue
			}
			if MatchPoint(pt, p2) || MatchPoint(pt, q2) {
				continue // owned by the next edge, not this one
			}
			if !seen[pt] {
				seen[pt] = true
				out = append(out, pt)
			}
		}
	}
	return out
}

// Within reports whether a lies entirely within b: every vertex of a's
// exterior is inside or on b, and the two boundaries never cross
// transversally.
func Within(a, b Polygon) bool {
	if !bboxOverlap(a.exterior, b.exterior) {
		return false
	}
	return allVerticesIn(a.exterior, b.exterior) && !boundariesCrossProperly(a.exterior, b.exterior)
}

// Covers reports whether a covers b (b lies entirely within a).
func Covers(a, b Polygon) bool { return Within(b, a) }

// Disjoint reports whether a and b share no point at all.
func Disjoint(a, b Polygon) bool {
	if !bboxOverlap(a.exterior, b.exterior) {
		return true
	}
	if boundariesCrossProperly(a.exterior, b.exterior) {
		return false
	}
	if boundariesShareAPoint(a.exterior, b.exterior) {
		return false
	}
	return !anyVertexStrictlyInside(a.exterior, b.exterior) && !anyVertexStrictlyInside(b.exterior, a.exterior)
}

// Touches reports whether a and b share at least one boundary point but
// neither interior overlaps the other.
func Touches(a, b Polygon) bool {
	if !bboxOverlap(a.exterior, b.exterior) {
		return false
	}
	shared := boundariesShareAPoint(a.exterior, b.exterior)
	if !shared {
		return false
	}
	if boundariesCrossProperly(a.exterior, b.exterior) {
		return false
	}
	return !anyVertexStrictlyInside(a.exterior, b.exterior) && !anyVertexStrictlyInside(b.exterior, a.exterior)
}

// Crosses reports whether a and b's boundaries cross transversally
// without either fully containing the other, the polygon-polygon analog
// of a line crossing through a region rather than skirting or enclosing
// it.
func Crosses(a, b Polygon) bool {
	if !boundariesCrossProperly(a.exterior, b.exterior) {
		return false
	}
	return !Within(a, b) && !Within(b, a)
}

// Overlaps reports whether a and b's interiors partially intersect: some
// area is shared, but neither contains the other.
func Overlaps(a, b Polygon) bool {
	if !bboxOverlap(a.exterior, b.exterior) {
		return false
	}
	if Within(a, b) || Within(b, a) {
		return false
	}
	res, err := Intersection(a, b)
	if err != nil || len(res) == 0 {
		return false
	}
	for _, p := range res {
		if area := SignedArea(p.exterior); area > Zeroish || area < -Zeroish {
			return true
		}
	}
	return false
}

// Equals reports whether a and b describe the same region, tested by
// mutual containment rather than coordinate-for-coordinate comparison.
func Equals(a, b Polygon) bool {
	return Within(a, b) && Within(b, a)
}
