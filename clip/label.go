package clip

// labelEntryExit is the entry/exit labeller. It walks list, assigning
// each intersection node an alternating ent_exit flag relative to the
// containment of list's ring inside the opposite ring's points (opp).
//
// The seed is the containment status of the first node in the list whose
// location with respect to opp is not itself on the boundary -- an
// original vertex lying exactly on the opposite ring is ambiguous and is
// skipped when picking the seed, per the degeneracy rule in the error
// handling design. If every node is on the opposite boundary, the two
// rings are considered identical and ErrDegenerateBoundary is returned.
func labelEntryExit(list *vertexList, opp []xy) error {
	seed := location(-1)
	for _, nd := range list.nodes {
		loc := locate(nd.point, opp)
		if loc != onBoundary {
			seed = loc
			break
		}
	}
	if seed == location(-1) {
		return ErrDegenerateBoundary
	}

	status := seed != inside // status = not-inside
	for i := range list.nodes {
		if !list.nodes[i].inter {
			continue
		}
		list.nodes[i].entry = status
		status = !status
	}
	return nil
}
