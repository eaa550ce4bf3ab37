package clip

import (
	"errors"
	"fmt"
)

// opKind selects which of the three Boolean operations a given pipeline
// run performs; it drives both the tracer's step rule and the hole
// integrator's per-operation folding rule.
type opKind int

const (
	opIntersection opKind = iota
	opUnion
	opDifference
)

func (k opKind) rule() stepRuleFn {
	switch k {
	case opIntersection:
		return intersectionStep
	case opUnion:
		return unionStep
	default:
		return differenceStep
	}
}

// Intersection returns the polygons representing the overlap of a and b.
func Intersection(a, b Polygon) ([]Polygon, error) { return dispatch(opIntersection, a, b) }

// Union returns the polygons representing the combined area of a and b.
func Union(a, b Polygon) ([]Polygon, error) { return dispatch(opUnion, a, b) }

// Difference returns the polygons representing a with b's area removed.
func Difference(a, b Polygon) ([]Polygon, error) { return dispatch(opDifference, a, b) }

func dispatch(kind opKind, a, b Polygon) ([]Polygon, error) {
	if a == nil || b == nil || a.Exterior() == nil || b.Exterior() == nil {
		return nil, fmt.Errorf("%w: nil operand", ErrUnsupportedOperand)
	}

	ns, err := runOp(kind, a, b)
	if err != nil {
		return nil, err
	}

	if len(a.Holes()) == 0 && len(b.Holes()) == 0 {
		return nestingToPolygons(ns), nil
	}
	ns, err = integrateHoles(kind, a, b, ns)
	if err != nil {
		return nil, err
	}
	return nestingToPolygons(ns), nil
}

// runOp drives the weave/label/classify/trace pipeline for exterior-only
// inputs (holes are the caller's concern, applied afterward by
// integrateHoles). It is also the primitive the hole integrator itself
// uses to recursively difference/intersect bare rings.
func runOp(kind opKind, a, b Polygon) ([]nesting, error) {
	aExt := openRing(toXY(a.Exterior().Points()))
	bExt := openRing(toXY(b.Exterior().Points()))

	if len(aExt) < 3 && len(bExt) < 3 {
		return nil, nil
	}
	if len(aExt) < 3 {
		if kind == opUnion {
			return []nesting{{exterior: bExt}}, nil
		}
		return nil, nil
	}
	if len(bExt) < 3 {
		if kind == opIntersection {
			return nil, nil
		}
		return []nesting{{exterior: aExt}}, nil
	}

	listA, listB, aIdx := weave(aExt, bExt)

	if len(aIdx) == 0 {
		return noIntersectionResult(kind, aExt, bExt), nil
	}

	if err := labelEntryExit(listA, bExt); err != nil {
		if errors.Is(err, ErrDegenerateBoundary) {
			return identicalRingsResult(kind, aExt), nil
		}
		return nil, err
	}
	if err := labelEntryExit(listB, aExt); err != nil {
		if errors.Is(err, ErrDegenerateBoundary) {
			return identicalRingsResult(kind, aExt), nil
		}
		return nil, err
	}

	classifyCrossings(listA, listB, aIdx)

	rings := trace(listA, listB, aIdx, kind.rule())
	if len(rings) == 0 {
		// Every intersection turned out to be a bounce: there is no
		// topological crossing, so fall back to the same containment
		// analysis used when there were no intersections at all.
		return noIntersectionResult(kind, aExt, bExt), nil
	}
	return groupByContainment(rings), nil
}

// noIntersectionResult implements the three no-crossing cases of the ring
// tracer: one ring wholly inside the other, or the two disjoint.
func noIntersectionResult(kind opKind, aExt, bExt []xy) []nesting {
	aInB := locate(aExt[0], bExt) == inside
	bInA := locate(bExt[0], aExt) == inside

	switch {
	case aInB:
		switch kind {
		case opIntersection:
			return []nesting{{exterior: aExt}}
		case opUnion:
			return []nesting{{exterior: bExt}}
		default: // difference
			return nil
		}
	case bInA:
		switch kind {
		case opIntersection:
			return []nesting{{exterior: bExt}}
		case opUnion:
			return []nesting{{exterior: aExt}}
		default: // difference: B carves a hole out of A
			return []nesting{{exterior: aExt, holes: [][]xy{bExt}}}
		}
	default: // disjoint
		switch kind {
		case opIntersection:
			return nil
		case opUnion:
			return []nesting{{exterior: aExt}, {exterior: bExt}}
		default: // difference
			return []nesting{{exterior: aExt}}
		}
	}
}

// identicalRingsResult implements the fully-on-boundary degeneracy
// resolution of the error handling design: when the entry/exit labeller
// cannot find any node unambiguously inside or outside the opposite ring,
// the two rings are identical.
func identicalRingsResult(kind opKind, aExt []xy) []nesting {
	if kind == opDifference {
		return nil
	}
	return []nesting{{exterior: aExt}}
}

// ringResult and polygonResult are the engine's own concrete
// implementations of Ring and Polygon, used only for values it returns
// (and for the bare rings it builds internally while recursing through
// the hole integrator). The engine never needs to import the geom
// package's own types.
type ringResult []xy

func (r ringResult) Points() []Point {
	out := make([]Point, len(r)+1)
	for i, p := range r {
		out[i] = p
	}
	if len(r) > 0 {
		out[len(r)] = r[0]
	}
	return out
}

type polygonResult struct {
	exterior ringResult
	holes    []ringResult
}

func (p polygonResult) Exterior() Ring { return p.exterior }

func (p polygonResult) Holes() []Ring {
	out := make([]Ring, len(p.holes))
	for i, h := range p.holes {
		out[i] = h
	}
	return out
}

func extPoly(ext []xy) polygonResult { return polygonResult{exterior: ringResult(ext)} }

func nestingToPolygons(ns []nesting) []Polygon {
	if ns == nil {
		return nil
	}
	out := make([]Polygon, len(ns))
	for i, n := range ns {
		holes := make([]ringResult, len(n.holes))
		for j, h := range n.holes {
			holes[j] = ringResult(h)
		}
		out[i] = polygonResult{exterior: ringResult(n.exterior), holes: holes}
	}
	return out
}

func polygonsToNestings(ps []Polygon) []nesting {
	out := make([]nesting, len(ps))
	for i, p := range ps {
		out[i] = nesting{
			exterior: openRing(toXY(p.Exterior().Points())),
			holes:    ringsOf(p.Holes()),
		}
	}
	return out
}

func ringsOf(rs []Ring) [][]xy {
	out := make([][]xy, len(rs))
	for i, r := range rs {
		out[i] = openRing(toXY(r.Points()))
	}
	return out
}
