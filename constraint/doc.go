// Package constraint is the pure constraint evaluator: given one
// geom.Constraint and the geom.Geometry it belongs to, it computes a
// ConstraintViolation carrying the squared residual ("error") and the
// analytical partial derivatives of that error with respect to every
// point coordinate the constraint depends on ("gradient").
//
// Evaluate never mutates its Geometry argument and never errors: missing
// entities, wrong arity, missing values, zero-length lines and a zero-length
// angle arm all collapse to the same no-op result — zero error, empty
// gradient. Where a direction is undefined but the residual is not
// (coincident points in distance or point-on-circle, a vanishing sine in an
// angle constraint), the error is still reported and only the gradient is
// empty. Callers that want to surface those conditions
// proactively should use geom.Geometry.Validate instead; this package only
// ever reports the live, numeric residual.
//
// Every evaluator in this package is grounded the same way
// dijkstra.Dijkstra documents its own steps and complexity: a doc comment
// states the residual formula, the degenerate case, and the gradient
// derivation before the code.
package constraint
