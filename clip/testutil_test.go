package clip

// Small concrete implementations of the Point/Ring/Polygon accessor
// contract, used only by this package's own tests. Callers of the
// engine normally supply their own (see package geom in this module).

type testPoint struct{ x, y float64 }

func (p testPoint) X() float64 { return p.x }
func (p testPoint) Y() float64 { return p.y }

func pt(x, y float64) testPoint { return testPoint{x, y} }

type testRing []testPoint

func (r testRing) Points() []Point {
	out := make([]Point, len(r))
	for i, p := range r {
		out[i] = p
	}
	return out
}

// mkRing closes an open list of vertices (appending the first point again
// if the caller did not already do so) and returns it as a Ring.
func mkRing(pts ...testPoint) testRing {
	if len(pts) == 0 {
		return nil
	}
	if pts[0] != pts[len(pts)-1] {
		pts = append(append([]testPoint{}, pts...), pts[0])
	}
	return testRing(pts)
}

type testPolygon struct {
	ext   testRing
	holes []testRing
}

func (p testPolygon) Exterior() Ring { return p.ext }

func (p testPolygon) Holes() []Ring {
	out := make([]Ring, len(p.holes))
	for i, h := range p.holes {
		out[i] = h
	}
	return out
}

func mkPoly(ext testRing, holes ...testRing) testPolygon {
	return testPolygon{ext: ext, holes: holes}
}

// shoelaceArea is the unsigned polygon area of a closed point list, used
// by tests to check areas without depending on package geom.
func shoelaceArea(pts []Point) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}
	if pts[0].X() == pts[n-1].X() && pts[0].Y() == pts[n-1].Y() {
		n--
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func polygonArea(p Polygon) float64 {
	area := shoelaceArea(p.Exterior().Points())
	for _, h := range p.Holes() {
		area -= shoelaceArea(h.Points())
	}
	return area
}

func totalArea(ps []Polygon) float64 {
	sum := 0.0
	for _, p := range ps {
		sum += polygonArea(p)
	}
	return sum
}
