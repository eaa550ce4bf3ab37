package geom

// This package reuses clip's error taxonomy (clip.ErrEmptyPolygon,
// clip.ErrUnsupportedOperand, clip.ErrDegenerateBoundary) rather than
// defining its own -- NewPolygon and the clipping wrappers in ops.go surface
// those same sentinels, so callers use one errors.Is vocabulary
// regardless of which package returned the error.
