package constraint

import (
	"math"

	"github.com/sketchforge/geoconstraint/constraint/internal/vec2"
	"github.com/sketchforge/geoconstraint/geom"
)

// angleSuppressRad is the |φ-θ| suppression window (0.1°, in radians).
var angleSuppressRad = 0.1 * math.Pi / 180

// angleSinFloor is the sin(φ) floor below which the acos derivative blows
// up and the gradient is zeroed instead.
const angleSinFloor = 1e-6

// evalAngle implements angle(p1, v, p2, θ): the unsigned angle at vertex v
// between v→p1 and v→p2 equals θ degrees, 0 <= θ <= 180.
//
//	a = p1 - v,  b = p2 - v
//	cosSim = clamp(a·b / (‖a‖‖b‖), -1, 1)
//	φ = acos(cosSim)
//	error = (φ - θ_rad)²
//
// Degenerate (no-op) when either a or b has zero length. The gradient is
// the chain rule through acos and the normalized dot product; it is
// zeroed when |φ-θ_rad| < 0.1° or sin(φ) < angleSinFloor, since both
// conditions make d(acos)/dx = -1/sqrt(1-cosSim²) numerically unstable or
// the constraint already satisfied.
func evalAngle(c geom.Constraint, g geom.Geometry) Violation {
	if len(c.EntityIDs) != 3 || c.Value == nil {
		return noop(c.ID)
	}
	p1, ok1 := g.Point(c.EntityIDs[0])
	vertex, okV := g.Point(c.EntityIDs[1])
	p2, ok2 := g.Point(c.EntityIDs[2])
	if !ok1 || !okV || !ok2 {
		return noop(c.ID)
	}

	a := vec2.Sub(vec2.V{X: p1.X, Y: p1.Y}, vec2.V{X: vertex.X, Y: vertex.Y})
	b := vec2.Sub(vec2.V{X: p2.X, Y: p2.Y}, vec2.V{X: vertex.X, Y: vertex.Y})
	la := vec2.Length(a)
	lb := vec2.Length(b)
	if la == 0 || lb == 0 {
		return noop(c.ID)
	}

	cosSim := clamp(vec2.Dot(a, b)/(la*lb), -1, 1)
	phi := math.Acos(cosSim)
	thetaRad := *c.Value * math.Pi / 180
	diff := phi - thetaRad
	errVal := diff * diff

	sinPhi := math.Sin(phi)
	if math.Abs(diff) < angleSuppressRad || sinPhi < angleSinFloor {
		return Violation{ConstraintID: c.ID, Error: errVal}
	}

	// error -> phi -> cosSim -> (a, b) -> (p1, vertex, p2)
	dErrdPhi := 2 * diff
	dPhidCos := -1 / sinPhi
	dErrdCos := dErrdPhi * dPhidCos

	ab := vec2.Dot(a, b)
	la3lb := la * la * la * lb
	lalb3 := la * lb * lb * lb

	dCosDa := vec2.V{
		X: b.X/(la*lb) - ab*a.X/la3lb,
		Y: b.Y/(la*lb) - ab*a.Y/la3lb,
	}
	dCosDb := vec2.V{
		X: a.X/(la*lb) - ab*b.X/lalb3,
		Y: a.Y/(la*lb) - ab*b.Y/lalb3,
	}

	gP1 := Grad{X: dErrdCos * dCosDa.X, Y: dErrdCos * dCosDa.Y}
	gP2 := Grad{X: dErrdCos * dCosDb.X, Y: dErrdCos * dCosDb.Y}
	// a = p1 - vertex, b = p2 - vertex, so ∂(a,b)/∂vertex = -(∂/∂a + ∂/∂b).
	gVertex := gP1.Scale(-1).Add(gP2.Scale(-1))

	return Violation{
		ConstraintID: c.ID,
		Error:        errVal,
		Gradient: map[string]Grad{
			c.EntityIDs[0]: gP1,
			c.EntityIDs[1]: gVertex,
			c.EntityIDs[2]: gP2,
		},
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
