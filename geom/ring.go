package geom

import "zappem.net/pub/math/polyclip/clip"

// Ring is a closed sequence of points: by convention the first and last
// entries coincide. Ring satisfies clip.Ring.
type Ring []Point

// NewRing closes pts if the caller did not already repeat the first
// point at the end, and returns the result as a Ring.
func NewRing(pts ...Point) Ring {
	if len(pts) == 0 {
		return nil
	}
	if pts[0] != pts[len(pts)-1] {
		pts = append(append([]Point{}, pts...), pts[0])
	}
	return Ring(pts)
}

// Points implements clip.Ring.
func (r Ring) Points() []clip.Point {
	out := make([]clip.Point, len(r))
	for i, p := range r {
		out[i] = p
	}
	return out
}

// Open returns r with its closing duplicate point removed, if present.
func (r Ring) Open() Ring {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}

// BoundingBox returns the lower-left and upper-right corners of r's
// bounding box.
func (r Ring) BoundingBox() (lo, hi Point) {
	pts := r.Open()
	if len(pts) == 0 {
		return
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p[0] < lo[0] {
			lo[0] = p[0]
		}
		if p[0] > hi[0] {
			hi[0] = p[0]
		}
		if p[1] < lo[1] {
			lo[1] = p[1]
		}
		if p[1] > hi[1] {
			hi[1] = p[1]
		}
	}
	return
}

// fromClipRing copies a clip.Ring's points into a concrete Ring.
func fromClipRing(r clip.Ring) Ring {
	pts := r.Points()
	out := make(Ring, len(pts))
	for i, p := range pts {
		out[i] = NewPoint(p.X(), p.Y())
	}
	return out
}
