// Package geom provides concrete two-dimensional point, ring, and polygon
// types satisfying package clip's minimal accessor contract, plus the
// predicate and transform layer built on top of them: containment and
// relation tests, signed area and centroid, simplification, orientation
// flipping, barycentric coordinates, and coordinate reprojection.
//
// The conventions for this package match its ancestor: x increases to
// the right, y increases up the page, which gives meaning to clockwise
// and counter-clockwise.
package geom
