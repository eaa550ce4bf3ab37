package geom

// Point holds a 2d coordinate as an array-backed pair with accessor
// methods, rather than exported fields, so that Point satisfies
// clip.Point directly.
type Point [2]float64

// NewPoint builds a Point from an (x, y) pair.
func NewPoint(x, y float64) Point { return Point{x, y} }

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }

// Sub, Add and Scale support the small amount of vector arithmetic the
// transform layer needs (Simplify's perpendicular-distance test,
// Barycentric's edge vectors).
func (p Point) Sub(q Point) Point     { return Point{p[0] - q[0], p[1] - q[1]} }
func (p Point) Add(q Point) Point     { return Point{p[0] + q[0], p[1] + q[1]} }
func (p Point) Scale(t float64) Point { return Point{p[0] * t, p[1] * t} }

// Zeroish merges points to avoid rounding error problems; this package's
// predicates use it for approximate coincidence and zero-area tests.
var Zeroish = 1e-9

// MatchPoint reports whether a is within Zeroish of any of b.
func MatchPoint(a Point, b ...Point) bool {
	for _, c := range b {
		dx, dy := a[0]-c[0], a[1]-c[1]
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx < Zeroish && dy < Zeroish {
			return true
		}
	}
	return false
}

// MinMax sorts two numbers into ascending order.
func MinMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// BB returns the lower-left and upper-right corners of the bounding box
// of a and b.
func BB(a, b Point) (lo, hi Point) {
	lo[0], hi[0] = MinMax(a[0], b[0])
	lo[1], hi[1] = MinMax(a[1], b[1])
	return
}
