package geom

import "fmt"

// Diagnostic describes one dangling reference discovered by Validate: some
// entity or constraint that points at an ID no longer present in the
// Geometry.
type Diagnostic struct {
	// EntityID is the line, circle, or constraint that holds the dangling reference.
	EntityID string
	// EntityKind names the kind of EntityID ("line", "circle", "constraint").
	EntityKind string
	// MissingID is the referenced ID that could not be resolved.
	MissingID string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s references missing entity %s", d.EntityKind, d.EntityID, d.MissingID)
}

// Validate scans every Line, Circle, and Constraint and reports references
// to IDs that do not resolve within g. It never mutates g and never
// returns an error: a dangling reference is evaluated as a no-op by
// package constraint, so Validate is purely an optional, read-only
// diagnostic a caller may use to surface the same condition before ever
// invoking the solver.
//
// Complexity: O(L + C + K) where K is the total number of constraint
// entity IDs.
func (g Geometry) Validate() []Diagnostic {
	var out []Diagnostic

	for _, l := range g.Lines() {
		if _, ok := g.points[l.Point1]; !ok {
			out = append(out, Diagnostic{l.ID, "line", l.Point1})
		}
		if _, ok := g.points[l.Point2]; !ok {
			out = append(out, Diagnostic{l.ID, "line", l.Point2})
		}
	}

	for _, c := range g.Circles() {
		if _, ok := g.points[c.Center]; !ok {
			out = append(out, Diagnostic{c.ID, "circle", c.Center})
		}
		if _, ok := g.points[c.RadiusPoint]; !ok {
			out = append(out, Diagnostic{c.ID, "circle", c.RadiusPoint})
		}
	}

	for _, k := range g.Constraints() {
		for _, entityID := range k.EntityIDs {
			if referencesResolvable(g, k.Kind, entityID) {
				continue
			}
			out = append(out, Diagnostic{k.ID, "constraint", entityID})
		}
	}

	return out
}

// referencesResolvable reports whether entityID resolves to *some* entity
// this Geometry owns (a point, line, or circle); constraint entity IDs may
// name any of the three depending on Kind, so Validate does not attempt to
// re-derive per-kind expected entity types here — that classification
// lives in package constraint, which already must do it to evaluate.
func referencesResolvable(g Geometry, _ Kind, entityID string) bool {
	if _, ok := g.points[entityID]; ok {
		return true
	}
	if _, ok := g.lines[entityID]; ok {
		return true
	}
	if _, ok := g.circles[entityID]; ok {
		return true
	}
	return false
}
