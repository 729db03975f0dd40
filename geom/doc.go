// Package geom is the geometric sketch data model: typed containers of
// points, line segments, circles, and constraints, plus the immutable
// construction and mutation helpers that build and edit them.
//
// A Geometry is a value: every Add/Replace/Remove operation returns a new,
// logically distinct Geometry rather than mutating its receiver in place.
// Callers — in particular solver.Solver — treat updates as value-level
// snapshots, the same way core.Graph.Clone/CloneEmpty hand back an
// independent graph rather than aliasing the source.
//
//   - Point   — id, x, y (finite coordinates).
//   - Line    — id, two endpoint point IDs (non-owning references).
//   - Circle  — id, center point ID, radius-point ID; the radius is never
//     stored, it is always the live distance between those two points.
//   - Constraint — id, Kind, ordered entity IDs, optional numeric value.
//
// All referential IDs are looked up lazily. A dangling reference (a Line
// pointing at a Point that was removed, for example) is not an error at
// the geometry-model layer: the constraint evaluator (package constraint)
// treats it as a no-op. Geometry.Validate offers an optional, read-only
// diagnostic pass for callers who want to surface dangling references
// proactively, without affecting evaluation semantics.
package geom
