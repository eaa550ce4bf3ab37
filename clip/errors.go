package clip

import "errors"

// The engine's error taxonomy (see SPEC_FULL.md section 7). Callers should
// use errors.Is against these sentinels; every returned error wraps one of
// them with fmt.Errorf("...: %w", ...) for additional context.
var (
	// ErrEmptyPolygon means a ring has fewer than three distinct
	// vertices and is treated as an empty polygon.
	ErrEmptyPolygon = errors.New("clip: polygon has fewer than three distinct vertices")

	// ErrDegenerateBoundary means the entry/exit labeller could not find
	// a node whose containment relative to the opposite ring was
	// unambiguous: every node lies exactly on the opposite boundary,
	// meaning the two rings are identical.
	ErrDegenerateBoundary = errors.New("clip: cannot determine unambiguous containment; rings are identical")

	// ErrUnsupportedOperand means an operand did not satisfy the polygon
	// accessor contract well enough to proceed (a nil polygon or a nil
	// exterior ring).
	ErrUnsupportedOperand = errors.New("clip: operand does not satisfy the polygon accessor contract")
)
