package clip

import "sort"

// aIntersection is a candidate node discovered while scanning one A-edge
// against every B-edge, pending sort-by-alpha and insertion.
type aIntersection struct {
	point  xy
	alpha  float64
	edgeB  int
	beta   float64
	markA1 bool // this hit re-marks the edge's own a1 node rather than inserting a new one
}

// aXing tracks, for one finalized A-side intersection node, where it needs
// to be injected into list B (by originating B-edge index and its beta
// fraction along that edge).
type aXing struct {
	aPos  int
	edgeB int
	beta  float64
}

// weave is the weaving builder. Given the (already deduplicated, open)
// point sequences of two exterior rings, it produces the two woven vertex
// lists and the index positions of A's intersection nodes.
func weave(aPts, bPts []xy) (listA, listB *vertexList, aIdx []int) {
	n, m := len(aPts), len(bPts)
	listA = &vertexList{}
	var toB []aXing

	for i := 0; i < n; i++ {
		a1, a2 := aPts[i], aPts[(i+1)%n]
		a1Pos := len(listA.nodes)
		listA.nodes = append(listA.nodes, node{point: a1})

		var hits []aIntersection
		for j := 0; j < m; j++ {
			b1, b2 := bPts[j], bPts[(j+1)%m]
			res := intersectSegments(a1, a2, b1, b2)
			if res.frac == nil {
				continue
			}
			alpha, beta := res.frac.alpha, res.frac.beta

			if res.point != nil {
				switch {
				case alpha > 0 && alpha < 1 && beta > 0 && beta < 1:
					// Standard interior intersection on both edges.
					hits = append(hits, aIntersection{point: *res.point, alpha: alpha, edgeB: j, beta: beta})
				case alpha == 0 && beta >= 0 && beta < 1:
					// a1 lies on the current B-edge (or on b1).
					hits = append(hits, aIntersection{point: a1, alpha: 0, edgeB: j, beta: beta, markA1: true})
				case alpha > 0 && alpha < 1 && beta == 0:
					// b1 lies strictly inside the A-edge.
					hits = append(hits, aIntersection{point: b1, alpha: alpha, edgeB: j, beta: 0})
				}
				// alpha == 1 or beta == 1 are the *next* edge's alpha
				// == 0 / beta == 0 case; each vertex starts exactly
				// one edge, so it is handled there instead.
				continue
			}

			// Collinear overlap: alpha locates b1 along (a1,a2); beta
			// locates a1 along (b1,b2). Apply the same endpoint rules.
			if alpha > 0 && alpha < 1 {
				hits = append(hits, aIntersection{point: b1, alpha: alpha, edgeB: j, beta: 0})
			}
			if beta >= 0 && beta < 1 {
				hits = append(hits, aIntersection{point: a1, alpha: 0, edgeB: j, beta: beta, markA1: true})
			}
		}

		sort.Slice(hits, func(x, y int) bool { return hits[x].alpha < hits[y].alpha })

		for _, h := range hits {
			if h.markA1 {
				listA.nodes[a1Pos].inter = true
				listA.nodes[a1Pos].neighbor = h.edgeB
				listA.nodes[a1Pos].frac = fracs{alpha: 0, beta: h.beta}
				toB = append(toB, aXing{aPos: a1Pos, edgeB: h.edgeB, beta: h.beta})
				continue
			}
			pos := len(listA.nodes)
			listA.nodes = append(listA.nodes, node{
				point: h.point, inter: true, neighbor: h.edgeB,
				frac: fracs{alpha: h.alpha, beta: h.beta},
			})
			toB = append(toB, aXing{aPos: pos, edgeB: h.edgeB, beta: h.beta})
		}
	}

	// Build B by walking its own original vertices, injecting A's
	// intersections in edge order and, within an edge, ascending beta.
	sort.SliceStable(toB, func(x, y int) bool {
		if toB[x].edgeB != toB[y].edgeB {
			return toB[x].edgeB < toB[y].edgeB
		}
		return toB[x].beta < toB[y].beta
	})

	listB = &vertexList{}
	ti := 0
	for k := 0; k < m; k++ {
		bPos := len(listB.nodes)
		listB.nodes = append(listB.nodes, node{point: bPts[k]})

		for ti < len(toB) && toB[ti].edgeB == k {
			x := toB[ti]
			ti++
			pt := listA.nodes[x.aPos].point

			if pt.eq(bPts[k]) {
				// Coalesce onto the vertex node just emitted instead
				// of duplicating it.
				listB.nodes[bPos].inter = true
				listB.nodes[bPos].neighbor = x.aPos
				listB.nodes[bPos].frac = fracs{alpha: 0, beta: 0}
				listA.nodes[x.aPos].neighbor = bPos
				continue
			}

			newPos := len(listB.nodes)
			listB.nodes = append(listB.nodes, node{
				point: pt, inter: true, neighbor: x.aPos,
				frac: fracs{alpha: listA.nodes[x.aPos].frac.alpha, beta: x.beta},
			})
			listA.nodes[x.aPos].neighbor = newPos
		}
	}

	for i, nd := range listA.nodes {
		if nd.inter {
			aIdx = append(aIdx, i)
		}
	}
	return listA, listB, aIdx
}

// openRing strips a ring's closing duplicate point, if present, so that
// weave always works with n distinct vertices and implicit wraparound.
func openRing(pts []xy) []xy {
	n := len(pts)
	if n > 1 && pts[0].eq(pts[n-1]) {
		return pts[:n-1]
	}
	return pts
}
