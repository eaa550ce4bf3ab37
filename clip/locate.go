package clip

// locate is the point-in-ring oracle: it classifies pt as inside, on, or
// outside the closed ring described by pts (pts[0] == pts[len(pts)-1]).
//
// The classifier is exact at vertices and on edges -- a point precisely on
// an edge or vertex yields onBoundary. It is implemented with a
// ray-crossing count, checking for on-segment membership on every edge
// before the crossing test runs, so an on-boundary point can never be
// miscounted as a crossing.
func locate(pt xy, pts []xy) location {
	n := len(pts)
	if n > 1 && pts[0] == pts[n-1] {
		n--
	}
	if n < 3 {
		return outside
	}

	inCount := 0
	for i := 0; i < n; i++ {
		a := pts[i]
		b := pts[(i+1)%n]

		if onSegment(pt, a, b) {
			return onBoundary
		}

		if (a.y > pt.y) != (b.y > pt.y) {
			// x coordinate at which edge (a,b) crosses pt.y
			xAt := a.x + (pt.y-a.y)*(b.x-a.x)/(b.y-a.y)
			if xAt > pt.x {
				inCount++
			}
		}
	}

	if inCount%2 == 1 {
		return inside
	}
	return outside
}

// onSegment reports whether pt lies on the closed segment [a,b],
// including its endpoints.
func onSegment(pt, a, b xy) bool {
	cr := cross(b.sub(a), pt.sub(a))
	if cr != 0 {
		return false
	}
	if a.x != b.x {
		return between(pt.x, a.x, b.x)
	}
	return between(pt.y, a.y, b.y)
}

func between(v, a, b float64) bool {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// Locate exposes the point-in-ring oracle for the geom package's predicate
// layer (Within, Disjoint, Covers, ...), which needs the same exact-on-
// boundary classification the engine uses internally.
func Locate(pt Point, ring Ring) (isInside, isOn, isOutside bool) {
	pts := toXY(ring.Points())
	switch locate(ptOf(pt), pts) {
	case inside:
		return true, false, false
	case onBoundary:
		return false, true, false
	default:
		return false, false, true
	}
}

func toXY(pts []Point) []xy {
	out := make([]xy, len(pts))
	for i, p := range pts {
		out[i] = ptOf(p)
	}
	return out
}
