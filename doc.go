// Package geoconstraint is a 2D parametric geometric constraint engine:
// give it a sketch of points, lines, and circles plus a set of declarative
// constraints, and it moves the sketch's degrees of freedom until every
// constraint holds — or reports how close it got.
//
// The engine is organized under four subpackages, leaves first:
//
//	ident/         — mints unique opaque identifiers for entities and constraints
//	geom/          — the Geometry aggregate: points, lines, circles, constraints
//	constraint/    — pure per-kind residual/gradient evaluation
//	solver/        — the momentum gradient-descent loop that drives a sketch to rest
//
// sketchbuilder/ composes common shapes (rectangles, regular polygons,
// anchored polylines) out of those primitives for tests and quick starts.
//
// This module is a library with no rendering, UI, or persistence concerns:
// a caller builds a geom.Geometry, hands it to a solver.Solver, and gets
// back the coordinates the solver reached plus a pass/fail report.
//
//	go get github.com/sketchforge/geoconstraint
package geoconstraint
