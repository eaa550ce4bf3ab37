package clip

// classifyCrossings is the crossing classifier. It walks aIdx (A's
// intersection positions, in ring order) and, for every intersection node,
// decides whether it is a genuine topological crossing or a bounce,
// resolving collinear overlap chains into a single delayed verdict at the
// chain's terminal node.
//
// Both twins of a resolved node always end up with the same crossing
// value.
func classifyCrossings(listA, listB *vertexList, aIdx []int) {
	n := len(aIdx)
	if n == 0 {
		return
	}
	done := make([]bool, n)

	for k := 0; k < n; k++ {
		if done[k] {
			continue
		}
		i := aIdx[k]
		I := &listA.nodes[i]
		j := I.neighbor
		J := &listB.nodes[j]

		pm := listA.nodes[listA.step(i, -1)].point
		pp := listA.nodes[listA.step(i, 1)].point
		qm := listB.nodes[listB.step(j, -1)].point
		qp := listB.nodes[listB.step(j, 1)].point

		matchesQm := pp.eq(qm)
		matchesQp := pp.eq(qp)

		if !matchesQm && !matchesQp {
			// No overlap chain begins here: a plain crossing/bounce
			// test against the local arc.
			leftQm := sideOf(qm, pm, I.point, pp)
			leftQp := sideOf(qp, pm, I.point, pp)
			verdict := leftQm != leftQp
			I.crossing = verdict
			J.crossing = verdict
			done[k] = true
			continue
		}

		// Overlap chain begins at I. Mark it a bounce provisionally and
		// record the side of whichever Q endpoint is not the one
		// coincident with the forward step.
		var startOther xy
		if matchesQm {
			startOther = qp
		} else {
			startOther = qm
		}
		startSide := sideOf(startOther, pm, I.point, pp)
		I.crossing = false
		J.crossing = false
		done[k] = true

		end := k
		for {
			nk := (end + 1) % n
			if nk == k {
				// Wrapped all the way around: the whole ring is one
				// chain. There is no terminal node distinct from the
				// start; leave everything a bounce.
				break
			}

			ei := aIdx[nk]
			E := &listA.nodes[ei]
			ej := E.neighbor
			Ej := &listB.nodes[ej]

			ePm := listA.nodes[listA.step(ei, -1)].point
			ePp := listA.nodes[listA.step(ei, 1)].point
			eQm := listB.nodes[listB.step(ej, -1)].point
			eQp := listB.nodes[listB.step(ej, 1)].point

			backMatchesQm := ePm.eq(eQm)
			backMatchesQp := ePm.eq(eQp)

			if !backMatchesQm && !backMatchesQp {
				// The chain broke before reaching a coherent
				// terminal node (malformed/degenerate input); stop
				// defensively, leaving what we have as bounces.
				break
			}

			forwardMatchesQm := ePp.eq(eQm)
			forwardMatchesQp := ePp.eq(eQp)

			if forwardMatchesQm || forwardMatchesQp {
				// Still inside the chain.
				E.crossing = false
				Ej.crossing = false
				done[nk] = true
				end = nk
				continue
			}

			// Terminal node: its backward step is still collinear
			// with the chain, but its forward step leaves it.
			var endOther xy
			if backMatchesQm {
				endOther = eQp
			} else {
				endOther = eQm
			}
			endSide := sideOf(endOther, ePm, E.point, ePp)
			verdict := startSide != endSide
			E.crossing = verdict
			Ej.crossing = verdict
			done[nk] = true
			break
		}
	}
}

// sideOf implements the side function from the crossing classifier: given
// Q and the oriented triple (p1,p2,p3), it reports whether Q lies to the
// "left" of the arc, using the sign of three signed-triangle areas rather
// than an angle computation.
func sideOf(q, p1, p2, p3 xy) bool {
	s1 := signedArea(q, p1, p2)
	s2 := signedArea(q, p2, p3)
	s3 := signedArea(p1, p2, p3)
	if s3 >= 0 {
		return s1 > 0 && s2 > 0
	}
	return !(s1 > 0 || s2 > 0)
}

func signedArea(a, b, c xy) float64 {
	return cross(b.sub(a), c.sub(a))
}
