// Package clip implements Greiner-Hormann polygon clipping: the Boolean
// set operations intersection, union, and difference between two simple
// polygons that may each carry holes.
//
// The package works entirely against a minimal geometry-accessor
// contract (Point, Ring, Polygon below) rather than any concrete geometry
// type, so callers can plug in their own point/ring/polygon
// representations. Package geom, in this module, is one such caller.
//
// The pipeline, leaf to root:
//
//	segment.go   - directed segment intersection primitive
//	locate.go    - point-in-ring classification
//	weave.go     - weaves two rings into indexed vertex lists at every
//	               intersection
//	label.go     - entry/exit labelling of intersections
//	classify.go  - crossing vs. bounce classification, including
//	               collinear overlap chains
//	trace.go     - walks the woven lists to emit result rings
//	holes.go     - re-applies input holes to an exterior-only result
//	ops.go       - Intersection, Union, Difference entry points
//
// The engine is purely synchronous: every exported operation is a single
// self-contained computation over its own local state, safe to call
// concurrently from independent goroutines as long as the Polygon
// arguments are not mutated concurrently.
package clip
