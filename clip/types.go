package clip

// Point is the minimal coordinate accessor the engine requires of a caller's
// point type.
type Point interface {
	X() float64
	Y() float64
}

// Ring is a closed sequence of points: the caller's Points() slice is
// expected to have its first and last entries coincide, representing the
// boundary of a simply-connected planar region.
type Ring interface {
	Points() []Point
}

// Polygon is one exterior ring plus zero or more hole rings.
type Polygon interface {
	Exterior() Ring
	Holes() []Ring
}

// xy is the engine's own concrete point, used for every intermediate
// computation so that arithmetic never has to cross the Point interface
// boundary more than once per input coordinate.
type xy struct {
	x, y float64
}

func ptOf(p Point) xy { return xy{p.X(), p.Y()} }

func (p xy) X() float64 { return p.x }
func (p xy) Y() float64 { return p.y }

func (p xy) sub(q xy) xy   { return xy{p.x - q.x, p.y - q.y} }
func (p xy) add(q xy) xy   { return xy{p.x + q.x, p.y + q.y} }
func (p xy) scale(t float64) xy { return xy{p.x * t, p.y * t} }
func (p xy) eq(q xy) bool  { return p.x == q.x && p.y == q.y }

// fracs is the (alpha, beta) parametric-position pair described in the
// data model: alpha locates a point along its host edge in list A, beta
// along its host edge in list B.
type fracs struct {
	alpha, beta float64
}

// node is the unit of a woven vertex list.
type node struct {
	point xy

	inter bool // arose from an intersection of the two rings

	// neighbor is an index into the *other* list. During weave
	// construction it may temporarily hold a B-edge index; after weaving
	// completes it is the twin node's position, meaningful only when
	// inter is true.
	neighbor int

	entry bool // ent_exit: true = entry (outside->inside), false = exit

	frac fracs

	crossing bool // true iff the classifier has confirmed this is a real crossing
}

// vertexList is one polygon ring's woven sequence of nodes.
type vertexList struct {
	nodes []node
}

func (l *vertexList) len() int { return len(l.nodes) }

// step returns the position (idx+delta), wrapped modulo the list length.
func (l *vertexList) step(idx, delta int) int {
	n := len(l.nodes)
	idx = (idx + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// location is the result of the point-in-ring oracle.
type location int

const (
	outside location = iota
	inside
	onBoundary
)
