package geom

import "zappem.net/pub/math/polyclip/clip"

// Intersection, Union and Difference run the Greiner-Hormann engine over
// two concrete polygons and convert its results back into this package's
// own Polygon type.
func Intersection(a, b Polygon) ([]Polygon, error) { return runClip(clip.Intersection, a, b) }
func Union(a, b Polygon) ([]Polygon, error)         { return runClip(clip.Union, a, b) }
func Difference(a, b Polygon) ([]Polygon, error)    { return runClip(clip.Difference, a, b) }

func runClip(op func(a, b clip.Polygon) ([]clip.Polygon, error), a, b Polygon) ([]Polygon, error) {
	res, err := op(a, b)
	if err != nil {
		return nil, err
	}
	out := make([]Polygon, len(res))
	for i, p := range res {
		out[i] = FromClip(p)
	}
	return out, nil
}

// MustIntersection, MustUnion and MustDifference panic instead of
// returning an error, mirroring zappem.net/pub/math/polygon's
// Shapes.Builder wrapper around Shapes.Append for callers who have
// already validated their operands.
func MustIntersection(a, b Polygon) []Polygon { return must(Intersection(a, b)) }
func MustUnion(a, b Polygon) []Polygon        { return must(Union(a, b)) }
func MustDifference(a, b Polygon) []Polygon   { return must(Difference(a, b)) }

func must(ps []Polygon, err error) []Polygon {
	if err != nil {
		panic(err)
	}
	return ps
}
