package constraint

import "github.com/sketchforge/geoconstraint/geom"

// evalAlignment implements horizontal/vertical/same-x/same-y.
//
// Given a point sequence p1..pn (resolved either from a single Line's two
// endpoints, or from N>=2 directly-referenced points — see
// pointSequence), the residual is the sum over *consecutive* pairs, not
// all pairs:
//
//	error = Σ_i (p_i.<axis> − p_(i+1).<axis>)²
//
// For the two-point line case this degenerates to the single-pair formula
// for "horizontal on a line" / "vertical on a line" (r = p2.y−p1.y, resp.
// p2.x−p1.x). Gradients accumulate linearly
// across pairs: each pair contributes ±2r to its two points' <axis>
// component independently, so a point shared by two pairs (the middle
// point of an N>2 chain) sums both contributions.
func evalAlignment(c geom.Constraint, g geom.Geometry, a axis) Violation {
	ids, pts, ok := pointSequence(g, c)
	if !ok || len(pts) < 2 {
		return noop(c.ID)
	}

	gradient := make(map[string]Grad, len(pts))
	var total float64

	for i := 0; i < len(pts)-1; i++ {
		r := a.of(pts[i]) - a.of(pts[i+1])
		total += r * r
		d := 2 * r

		var gi, gj Grad
		if a == axisX {
			gi, gj = Grad{X: d}, Grad{X: -d}
		} else {
			gi, gj = Grad{Y: d}, Grad{Y: -d}
		}
		gradient[ids[i]] = gradient[ids[i]].Add(gi)
		gradient[ids[i+1]] = gradient[ids[i+1]].Add(gj)
	}

	return Violation{ConstraintID: c.ID, Error: total, Gradient: gradient}
}
