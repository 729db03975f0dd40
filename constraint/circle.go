package constraint

import (
	"math"

	"github.com/sketchforge/geoconstraint/constraint/internal/vec2"
	"github.com/sketchforge/geoconstraint/geom"
)

// evalRadius implements radius(c, v) by re-expressing it as
// distance(center_id, radius_point_id, v) and delegating to
// distanceViolation verbatim: a circle's radius is never cached, so this
// evaluator reuses the distance code path against the circle's two owned
// points instead of a stored scalar.
func evalRadius(c geom.Constraint, g geom.Geometry) Violation {
	if len(c.EntityIDs) != 1 || c.Value == nil {
		return noop(c.ID)
	}
	circ, ok := g.Circle(c.EntityIDs[0])
	if !ok {
		return noop(c.ID)
	}
	center, ok1 := g.Point(circ.Center)
	radiusPt, ok2 := g.Point(circ.RadiusPoint)
	if !ok1 || !ok2 {
		return noop(c.ID)
	}
	return distanceViolation(c.ID, circ.Center, center, circ.RadiusPoint, radiusPt, *c.Value)
}

// evalPointOnCircle implements point-on-circle(p, c):
//
//	r = ‖p − center(c)‖ − radius(c),  error = r²
//
// Degenerate when p coincides with the circle's center — the
// direction from center to p is undefined, so only the gradient is
// suppressed; error is still reported as radius². Gradient lands on p and
// on the circle's center with opposite sign; the circle's radius point is
// not perturbed by this constraint.
func evalPointOnCircle(c geom.Constraint, g geom.Geometry) Violation {
	if len(c.EntityIDs) != 2 {
		return noop(c.ID)
	}
	p, okP := g.Point(c.EntityIDs[0])
	center, radiusPt, radius, okC := circleGeometry(g, c.EntityIDs[1])
	if !okP || !okC {
		return noop(c.ID)
	}
	_ = radiusPt

	delta := vec2.Sub(vec2.V{X: p.X, Y: p.Y}, vec2.V{X: center.X, Y: center.Y})
	dist := vec2.Length(delta)
	r := dist - radius

	if dist == 0 {
		return Violation{ConstraintID: c.ID, Error: r * r}
	}

	u := vec2.V{X: delta.X / dist, Y: delta.Y / dist}
	gP := Grad{2 * r * u.X, 2 * r * u.Y}
	gCenter := gP.Scale(-1)

	circ, _ := g.Circle(c.EntityIDs[1])
	return Violation{
		ConstraintID: c.ID,
		Error:        r * r,
		Gradient:     map[string]Grad{c.EntityIDs[0]: gP, circ.Center: gCenter},
	}
}

// evalLineTangentToCircle implements line-tangent-to-circle(l, c):
//
//	r = |perpendicular distance from center(c) to l| − radius(c)
//
// Degenerate (no-op) when the line has zero length, or when the center
// lies exactly on the line (the sign of the perpendicular offset is then
// undefined, so its subgradient cannot be chosen analytically). The
// center's gradient pushes it toward/away from the line along the unit
// normal; the line's two endpoints receive an equal, opposite-signed
// share of that push — translating the line laterally along the same
// normal — scaled by max(10, length/10) to keep convergence responsive on
// long lines, mirroring the scaling factor the parallel evaluator uses.
func evalLineTangentToCircle(c geom.Constraint, g geom.Geometry) Violation {
	if len(c.EntityIDs) != 2 {
		return noop(c.ID)
	}
	p1, p2, okL := lineEndpoints(g, c.EntityIDs[0])
	center, _, radius, okC := circleGeometry(g, c.EntityIDs[1])
	if !okL || !okC {
		return noop(c.ID)
	}

	dir := vec2.Sub(vec2.V{X: p2.X, Y: p2.Y}, vec2.V{X: p1.X, Y: p1.Y})
	length := vec2.Length(dir)
	if length == 0 {
		return noop(c.ID)
	}
	n := vec2.Normal(dir) // unit normal

	toCenter := vec2.Sub(vec2.V{X: center.X, Y: center.Y}, vec2.V{X: p1.X, Y: p1.Y})
	signedDist := vec2.Dot(toCenter, n)
	if signedDist == 0 {
		return noop(c.ID)
	}

	perp := math.Abs(signedDist)
	r := perp - radius
	sign := signedDist / perp // +/- 1

	dErrdR := 2 * r
	gCenter := Grad{X: dErrdR * sign * n.X, Y: dErrdR * sign * n.Y}

	scale := math.Max(10, length/10)
	gEndpoint := gCenter.Scale(-0.5 * scale)

	l, _ := g.Line(c.EntityIDs[0])
	return Violation{
		ConstraintID: c.ID,
		Error:        r * r,
		Gradient: map[string]Grad{
			l.Point1:         gEndpoint,
			l.Point2:         gEndpoint,
			circleCenterID(g, c.EntityIDs[1]): gCenter,
		},
	}
}

func circleCenterID(g geom.Geometry, circleID string) string {
	circ, _ := g.Circle(circleID)
	return circ.Center
}
