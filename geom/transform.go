package geom

import "math"

// SignedArea returns twice-halved shoelace area of ring, positive for a
// counter-clockwise ring and negative for a clockwise one, matching the
// package's own x-right/y-up orientation convention
// (zappem.net/pub/math/polygon's Shapes.Append uses the same
// cross-product sign to decide its Hole flag).
func SignedArea(r Ring) float64 {
	pts := r.Open()
	n := len(pts)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += a[0]*b[1] - b[0]*a[1]
	}
	return sum / 2
}

// Area returns a polygon's area (exterior minus holes), always
// non-negative regardless of ring orientation.
func Area(p Polygon) float64 {
	area := math.Abs(SignedArea(p.exterior))
	for _, h := range p.holes {
		area -= math.Abs(SignedArea(h))
	}
	return area
}

// Centroid returns the area-weighted centroid of a ring. For a ring with
// fewer than three points or of zero area it returns the ring's first
// point, and the zero Point for an empty ring.
func Centroid(r Ring) Point {
	pts := r.Open()
	n := len(pts)
	if n < 3 {
		if n > 0 {
			return pts[0]
		}
		return Point{}
	}
	var cx, cy, area float64
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		cr := a[0]*b[1] - b[0]*a[1]
		area += cr
		cx += (a[0] + b[0]) * cr
		cy += (a[1] + b[1]) * cr
	}
	if area == 0 {
		return pts[0]
	}
	area /= 2
	return Point{cx / (6 * area), cy / (6 * area)}
}

// Flip reverses a ring's point order, turning a counter-clockwise
// exterior into a clockwise one or vice versa, grounded on
// zappem.net/pub/math/polygon's Shapes.Invert (which reverses PS[1:] in
// place to flip a shape's orientation without moving its start point).
func Flip(r Ring) Ring {
	pts := r.Open()
	out := make(Ring, len(pts))
	copy(out, pts)
	if len(out) > 1 {
		for i, j := 1, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return NewRing(out...)
}

// perpendicularDistance returns the distance from p to the line through
// a and b.
func perpendicularDistance(p, a, b Point) float64 {
	if a == b {
		return math.Hypot(p[0]-a[0], p[1]-a[1])
	}
	num := math.Abs(cross2(b.Sub(a), p.Sub(a)))
	den := math.Hypot(b[0]-a[0], b[1]-a[1])
	return num / den
}

// Simplify thins a ring's vertices with the Douglas-Peucker algorithm,
// keeping only points that deviate from their local chord by more than
// tolerance, in the spirit of ctessum/geom's Simplify tolerance
// parameter. Unlike that implementation this one performs no
// self-intersection guard, since this package's rings are assumed simple
// throughout.
func Simplify(r Ring, tolerance float64) Ring {
	pts := r.Open()
	if len(pts) < 3 {
		return NewRing(pts...)
	}
	kept := douglasPeucker(pts, tolerance)
	return NewRing(kept...)
}

func douglasPeucker(pts []Point, tolerance float64) []Point {
	if len(pts) < 3 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(pts)-1; i++ {
		d := perpendicularDistance(pts[i], first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= tolerance {
		return []Point{first, last}
	}
	left := douglasPeucker(pts[:maxIdx+1], tolerance)
	right := douglasPeucker(pts[maxIdx:], tolerance)
	out := make([]Point, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// Barycentric solves for the barycentric coordinates (u, v, w) of p with
// respect to triangle tri, such that p = u*tri[0] + v*tri[1] + w*tri[2]
// and u+v+w = 1. It is used internally by nothing in this package yet
// but is exposed for callers doing point classification against a
// triangulated polygon.
func Barycentric(tri [3]Point, p Point) (u, v, w float64) {
	v0, v1, v2 := tri[1].Sub(tri[0]), tri[2].Sub(tri[0]), p.Sub(tri[0])
	d00 := v0[0]*v0[0] + v0[1]*v0[1]
	d01 := v0[0]*v1[0] + v0[1]*v1[1]
	d11 := v1[0]*v1[0] + v1[1]*v1[1]
	d20 := v2[0]*v0[0] + v2[1]*v0[1]
	d21 := v2[0]*v1[0] + v2[1]*v1[1]
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 0, 0, 0
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return
}

// Reproject applies transform to every point of r, a stand-in for the
// affine/projective reprojection ctessum/geom/proj performs for
// cartographic CRS conversion, scoped here to a caller-supplied function
// instead of a full PROJ4 string parser.
func Reproject(r Ring, transform func(Point) Point) Ring {
	pts := r.Open()
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = transform(p)
	}
	return NewRing(out...)
}
