package clip

// segResult is the outcome of intersectSegments: point is the intersection
// point when the two lines cross at a single point (nil for the collinear
// case); frac is the (alpha, beta) pair whenever the primitive can compute
// one at all (nil only for parallel, non-collinear segments).
type segResult struct {
	point *xy
	frac  *fracs
}

// intersectSegments is the segment-intersection primitive: given two
// directed segments (a1,a2) and (b1,b2), it returns the intersection of
// their extended lines and the parametric fractions locating that point on
// each line. It performs no clipping to [0,1] itself -- the caller decides
// whether the returned fractions land on the segments.
//
// If the segments are parallel and non-collinear, both return values are
// nil. If they are collinear and overlapping, point is nil but frac is
// non-nil: the sentinel pairing (point == nil, frac != nil) is the
// collinear signal to the weaving builder.
//
// No epsilon handling is used: r x s is compared strictly against zero, as
// specified.
func intersectSegments(a1, a2, b1, b2 xy) segResult {
	r := a2.sub(a1)
	s := b2.sub(b1)
	denom := cross(r, s)

	if denom != 0 {
		t := cross(b1.sub(a1), s) / denom
		u := cross(b1.sub(a1), r) / denom
		p := a1.add(r.scale(t))
		return segResult{point: &p, frac: &fracs{alpha: t, beta: u}}
	}

	// Parallel. Collinear iff (b1-a1) x r == 0.
	qmp := b1.sub(a1)
	if cross(qmp, r) != 0 {
		return segResult{}
	}

	// Collinear (overlapping or not): locate b1 along (a1,a2) by the x
	// component of r, or by the y component when r.x is zero.
	var alpha float64
	if r.x != 0 {
		alpha = qmp.x / r.x
	} else if r.y != 0 {
		alpha = qmp.y / r.y
	}

	// Locate a1 along (b1,b2) symmetrically.
	pmq := a1.sub(b1)
	var beta float64
	if s.x != 0 {
		beta = pmq.x / s.x
	} else if s.y != 0 {
		beta = pmq.y / s.y
	}

	return segResult{point: nil, frac: &fracs{alpha: alpha, beta: beta}}
}

// cross is the 2D cross product (a determinant), the r x s of the
// determinant-based line-intersection formulation.
func cross(a, b xy) float64 {
	return a.x*b.y - a.y*b.x
}
