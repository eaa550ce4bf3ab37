package geom

import (
	"fmt"

	"zappem.net/pub/math/polyclip/clip"
)

// Polygon is one exterior ring plus zero or more hole rings. Polygon
// satisfies clip.Polygon.
type Polygon struct {
	exterior Ring
	holes    []Ring
}

// NewPolygon builds a Polygon, closing exterior and each hole ring if
// needed. It returns an error if exterior has fewer than three distinct
// points, matching zappem.net/pub/math/polygon's own minimum-vertex
// check.
func NewPolygon(exterior Ring, holes ...Ring) (Polygon, error) {
	ext := exterior.Open()
	distinct := map[Point]bool{}
	for _, p := range ext {
		distinct[p] = true
	}
	if len(distinct) < 3 {
		return Polygon{}, fmt.Errorf("%w: got %d distinct points", clip.ErrEmptyPolygon, len(distinct))
	}
	closedHoles := make([]Ring, len(holes))
	for i, h := range holes {
		closedHoles[i] = NewRing(h.Open()...)
	}
	return Polygon{exterior: NewRing(ext...), holes: closedHoles}, nil
}

// MustPolygon is NewPolygon for callers who have already validated their
// input and want a panic instead of an error return, mirroring
// zappem.net/pub/math/polygon's Shapes.Builder wrapper around
// Shapes.Append.
func MustPolygon(exterior Ring, holes ...Ring) Polygon {
	p, err := NewPolygon(exterior, holes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Exterior implements clip.Polygon.
func (p Polygon) Exterior() clip.Ring { return p.exterior }

// Holes implements clip.Polygon.
func (p Polygon) Holes() []clip.Ring {
	out := make([]clip.Ring, len(p.holes))
	for i, h := range p.holes {
		out[i] = h
	}
	return out
}

// ExteriorRing returns the polygon's exterior as a concrete Ring, for
// callers in this package that need Ring-specific operations rather than
// the clip.Ring interface.
func (p Polygon) ExteriorRing() Ring { return p.exterior }

// HoleRings returns the polygon's holes as concrete Rings.
func (p Polygon) HoleRings() []Ring { return p.holes }

// FromClip copies a clip.Polygon's points into a concrete Polygon,
// converting the engine's own unexported result type (or any other
// caller-supplied implementation of clip.Polygon) into one this package's
// predicate and transform functions can operate on directly.
func FromClip(p clip.Polygon) Polygon {
	holes := p.Holes()
	out := Polygon{exterior: fromClipRing(p.Exterior()), holes: make([]Ring, len(holes))}
	for i, h := range holes {
		out.holes[i] = fromClipRing(h)
	}
	return out
}
