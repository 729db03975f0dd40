package constraint

import (
	"github.com/sketchforge/geoconstraint/constraint/internal/vec2"
	"github.com/sketchforge/geoconstraint/geom"
)

// distanceViolation evaluates the shared distance(p1, p2, v) equation:
//
//	r = ||p2 - p1|| - v,  error = r²
//
// Degenerate when p1 and p2 coincide: the direction p2-p1 is undefined, so
// the gradient is zero, but error is still r² = v² (nonzero whenever
// v > 0) — the constraint correctly reports "still violated", it just
// cannot suggest which way to move. p1ID/p2ID are the IDs the returned
// gradient is keyed by, letting KindRadius reuse this verbatim against a
// circle's center/radius-point IDs, since a circle's radius is just the
// distance between those two points.
func distanceViolation(id, p1ID string, p1 geom.Point, p2ID string, p2 geom.Point, v float64) Violation {
	delta := vec2.Sub(vec2.V{X: p2.X, Y: p2.Y}, vec2.V{X: p1.X, Y: p1.Y})
	dist := vec2.Length(delta)
	r := dist - v

	if dist == 0 {
		return Violation{ConstraintID: id, Error: r * r}
	}

	u := vec2.V{X: delta.X / dist, Y: delta.Y / dist}
	// ∂r/∂p2 = u, ∂r/∂p1 = -u; ∂error/∂p = 2r · ∂r/∂p.
	g2 := Grad{2 * r * u.X, 2 * r * u.Y}
	g1 := Grad{-2 * r * u.X, -2 * r * u.Y}

	return Violation{
		ConstraintID: id,
		Error:        r * r,
		Gradient:     map[string]Grad{p1ID: g1, p2ID: g2},
	}
}

// evalDistanceConstraint implements distance(p1, p2, v): ‖p2−p1‖ = v.
func evalDistanceConstraint(c geom.Constraint, g geom.Geometry) Violation {
	if len(c.EntityIDs) != 2 || c.Value == nil {
		return noop(c.ID)
	}
	p1, ok1 := g.Point(c.EntityIDs[0])
	p2, ok2 := g.Point(c.EntityIDs[1])
	if !ok1 || !ok2 {
		return noop(c.ID)
	}
	return distanceViolation(c.ID, c.EntityIDs[0], p1, c.EntityIDs[1], p2, *c.Value)
}

// evalAxisDistance implements x-distance/y-distance(p1, p2, v):
// signed (p2.<axis> − p1.<axis>) = v. Gradient lands only on <axis>.
func evalAxisDistance(c geom.Constraint, g geom.Geometry, a axis) Violation {
	if len(c.EntityIDs) != 2 || c.Value == nil {
		return noop(c.ID)
	}
	p1, ok1 := g.Point(c.EntityIDs[0])
	p2, ok2 := g.Point(c.EntityIDs[1])
	if !ok1 || !ok2 {
		return noop(c.ID)
	}
	r := a.of(p2) - a.of(p1) - *c.Value
	d := 2 * r

	var g1, g2 Grad
	if a == axisX {
		g1, g2 = Grad{X: -d}, Grad{X: d}
	} else {
		g1, g2 = Grad{Y: -d}, Grad{Y: d}
	}

	return Violation{
		ConstraintID: c.ID,
		Error:        r * r,
		Gradient:     map[string]Grad{c.EntityIDs[0]: g1, c.EntityIDs[1]: g2},
	}
}

// evalAxisPosition implements x(p, v) / y(p, v): p.<axis> = v.
func evalAxisPosition(c geom.Constraint, g geom.Geometry, a axis) Violation {
	if len(c.EntityIDs) != 1 || c.Value == nil {
		return noop(c.ID)
	}
	p, ok := g.Point(c.EntityIDs[0])
	if !ok {
		return noop(c.ID)
	}
	r := a.of(p) - *c.Value
	d := 2 * r

	var grad Grad
	if a == axisX {
		grad = Grad{X: d}
	} else {
		grad = Grad{Y: d}
	}

	return Violation{
		ConstraintID: c.ID,
		Error:        r * r,
		Gradient:     map[string]Grad{c.EntityIDs[0]: grad},
	}
}
