package clip

// integrateHoles is the hole integrator. runOp (ops.go) produces the
// exterior-only answer for kind; this re-applies the holes carried by the
// original operands, following a different rule per operation:
// intersection subtracts every hole of both operands out of the
// exterior-only working set; difference subtracts a's holes and adds back,
// as new pieces, the part of each of b's holes that lies inside a's
// exterior; union re-attaches each hole wherever the other operand's
// exterior does not cover it.
func integrateHoles(kind opKind, a, b Polygon, ns []nesting) ([]nesting, error) {
	working := ns
	aHoles := ringsOf(a.Holes())
	bHoles := ringsOf(b.Holes())
	aExt := openRing(toXY(a.Exterior().Points()))
	bExt := openRing(toXY(b.Exterior().Points()))

	switch kind {
	case opIntersection:
		for _, h := range aHoles {
			working = subtractHoleFromWorkingSet(working, h)
		}
		for _, h := range bHoles {
			working = subtractHoleFromWorkingSet(working, h)
		}
	case opUnion:
		working = applyUnionHoles(working, aHoles, bHoles, aExt, bExt)
	case opDifference:
		for _, h := range aHoles {
			working = subtractHoleFromWorkingSet(working, h)
		}
		for _, h := range bHoles {
			pieces, err := runOp(opIntersection, extPoly(h), extPoly(aExt))
			if err != nil {
				return nil, err
			}
			working = append(working, pieces...)
		}
	}
	return working, nil
}

// subtractHoleFromWorkingSet differences hole out of every polygon
// currently in working, replacing each with the resulting list of pieces
// (which may grow, shrink, or vanish the set), per "subtract polygon(h)
// from every current result polygon ... replacing each polygon with the
// resulting list."
func subtractHoleFromWorkingSet(working []nesting, hole []xy) []nesting {
	var out []nesting
	for _, w := range working {
		pieces, err := runOp(opDifference, extPoly(w.exterior), extPoly(hole))
		if err != nil || len(pieces) == 0 {
			continue
		}
		for i, p := range pieces {
			if i == 0 {
				// The primary remnant keeps w's already-accumulated
				// holes; a hole wholly inside w's exterior stays
				// inside its remnant unless the subtraction carved
				// through it, which the recursive difference above
				// would already have resolved for that particular
				// hole ring.
				p.holes = append(p.holes, w.holes...)
			}
			out = append(out, p)
		}
	}
	return out
}

// applyUnionHoles implements the union hole rule: each operand's hole
// survives wherever the other operand's exterior does not cover it.
func applyUnionHoles(working []nesting, aHoles, bHoles [][]xy, aExt, bExt []xy) []nesting {
	attach := func(hole []xy, otherExt []xy) {
		pieces, err := runOp(opDifference, extPoly(hole), extPoly(otherExt))
		if err != nil {
			return
		}
		for _, piece := range pieces {
			working = attachHoleToOwner(working, piece)
		}
	}
	for _, h := range aHoles {
		attach(h, bExt)
	}
	for _, h := range bHoles {
		attach(h, aExt)
	}
	return working
}

// attachHoleToOwner adds piece as a hole of whichever polygon in working
// geometrically contains it. If working has exactly one polygon (the
// common merged-into-one-piece union case), the hole is attached to it
// unconditionally.
func attachHoleToOwner(working []nesting, piece nesting) []nesting {
	if len(working) == 0 {
		return working
	}
	if len(working) == 1 {
		working[0].holes = append(working[0].holes, piece.exterior)
		working[0].holes = append(working[0].holes, piece.holes...)
		return working
	}
	if len(piece.exterior) == 0 {
		return working
	}
	for i := range working {
		if locate(piece.exterior[0], working[i].exterior) == inside {
			working[i].holes = append(working[i].holes, piece.exterior)
			working[i].holes = append(working[i].holes, piece.holes...)
			return working
		}
	}
	// No owner found (should not happen for valid input); attach to the
	// first piece rather than silently dropping the hole.
	working[0].holes = append(working[0].holes, piece.exterior)
	return working
}
