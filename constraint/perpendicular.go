package constraint

import (
	"math"

	"github.com/sketchforge/geoconstraint/constraint/internal/vec2"
	"github.com/sketchforge/geoconstraint/geom"
)

// perpendicularZeroGradient suppresses gradient noise once the normalized
// dot product is already close enough to zero.
const perpendicularZeroGradient = 1e-6

// evalPerpendicular implements perpendicular(l1, l2): let
//
//	d = (v1 · v2) / (‖v1‖ ‖v2‖)
//
// be the normalized dot product of the two lines' direction vectors.
// error = d². Degenerate (no-op) when either line has zero length. The
// gradient is derived via the quotient rule on d and chained through
// v1 = p1b−p1a, v2 = p2b−p2a; it is zeroed once |d| < perpendicularZeroGradient.
func evalPerpendicular(c geom.Constraint, g geom.Geometry) Violation {
	if len(c.EntityIDs) != 2 {
		return noop(c.ID)
	}
	p1a, p1b, ok1 := lineEndpoints(g, c.EntityIDs[0])
	p2a, p2b, ok2 := lineEndpoints(g, c.EntityIDs[1])
	if !ok1 || !ok2 {
		return noop(c.ID)
	}
	l1, _ := g.Line(c.EntityIDs[0])
	l2, _ := g.Line(c.EntityIDs[1])

	v1 := vec2.Sub(vec2.V{X: p1b.X, Y: p1b.Y}, vec2.V{X: p1a.X, Y: p1a.Y})
	v2 := vec2.Sub(vec2.V{X: p2b.X, Y: p2b.Y}, vec2.V{X: p2a.X, Y: p2a.Y})
	len1 := vec2.Length(v1)
	len2 := vec2.Length(v2)
	if len1 == 0 || len2 == 0 {
		return noop(c.ID)
	}

	dot := vec2.Dot(v1, v2)
	denom := len1 * len2
	d := dot / denom
	errVal := d * d

	if math.Abs(d) < perpendicularZeroGradient {
		return Violation{ConstraintID: c.ID, Error: errVal}
	}

	dErrdD := 2 * d
	len1Cubed := len1 * len1 * len1
	len2Cubed := len2 * len2 * len2

	dD_dx1 := v2.X/denom - dot*v1.X/(len1Cubed*len2)
	dD_dy1 := v2.Y/denom - dot*v1.Y/(len1Cubed*len2)
	dD_dx2 := v1.X/denom - dot*v2.X/(len1*len2Cubed)
	dD_dy2 := v1.Y/denom - dot*v2.Y/(len1*len2Cubed)

	gEnd1 := Grad{X: dErrdD * dD_dx1, Y: dErrdD * dD_dy1}
	gStart1 := gEnd1.Scale(-1)
	gEnd2 := Grad{X: dErrdD * dD_dx2, Y: dErrdD * dD_dy2}
	gStart2 := gEnd2.Scale(-1)

	return Violation{
		ConstraintID: c.ID,
		Error:        errVal,
		Gradient: map[string]Grad{
			l1.Point1: gStart1, l1.Point2: gEnd1,
			l2.Point1: gStart2, l2.Point2: gEnd2,
		},
	}
}
