package constraint

import (
	"math"

	"github.com/sketchforge/geoconstraint/constraint/internal/vec2"
	"github.com/sketchforge/geoconstraint/geom"
)

// verticalEpsilon is the |dx| threshold below which a line's direction is
// treated as vertical (slope undefined) by the parallel evaluator.
const verticalEpsilon = 1e-10

// parallelZeroGradient is the error floor below which the parallel
// gradient is suppressed to stop floating-point noise from fighting other
// constraints' real gradients during aggregation.
const parallelZeroGradient = 1e-6

// evalParallel implements parallel(l1, l2) with a slope-difference
// formulation rather than a normalized-dot-product residual: dot-product
// parallel constraints elongate lines chasing a directional residual,
// while slope-based residuals localize the fix to angular change.
//
// Let v1, v2 be each line's direction vector (p2 - p1). A line is
// "vertical" when |v.X| < verticalEpsilon.
//
//   - both vertical: error = 0.
//   - one vertical, one not: error = 1 + slope(other)²; the gradient pushes
//     the non-vertical line's slope toward ±∞ (i.e. toward vertical), so in
//     this case it is the negated derivative of slope², not ∂error/∂p. The
//     vertical line gets no gradient.
//   - neither vertical: error = (slope1 - slope2)².
//
// In the non-degenerate cases, the gradient is scaled by
// max(10, avg_len/10), where avg_len is the harmonic mean of the two line
// lengths, to keep convergence responsive on long lines. If error falls
// below parallelZeroGradient, the gradient is zeroed to prevent jitter.
func evalParallel(c geom.Constraint, g geom.Geometry) Violation {
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

	vert1 := math.Abs(v1.X) < verticalEpsilon
	vert2 := math.Abs(v2.X) < verticalEpsilon

	if vert1 && vert2 {
		return Violation{ConstraintID: c.ID, Error: 0}
	}

	scale := math.Max(10, harmonicMean(len1, len2)/10)

	if vert1 != vert2 {
		// Exactly one is vertical: push the other toward vertical.
		nonVertDir, nonVertID1, nonVertID2 := v1, l1.Point1, l1.Point2
		if vert1 {
			nonVertDir, nonVertID1, nonVertID2 = v2, l2.Point1, l2.Point2
		}
		dx, dy := nonVertDir.X, nonVertDir.Y
		slope := dy / dx
		errVal := 1 + slope*slope
		if errVal < parallelZeroGradient {
			return Violation{ConstraintID: c.ID, Error: errVal}
		}

		// The returned gradient is -∂(slope²)/∂p, so a descent step grows
		// |slope| and steepens the line toward vertical; slope = dy/dx.
		dErrdSlope := -2 * slope
		dSlopeDdx := -dy / (dx * dx)
		dSlopeDdy := 1 / dx

		gEnd := Grad{X: dErrdSlope * dSlopeDdx, Y: dErrdSlope * dSlopeDdy}.Scale(scale)
		gStart := gEnd.Scale(-1)

		return Violation{
			ConstraintID: c.ID,
			Error:        errVal,
			Gradient:     map[string]Grad{nonVertID1: gStart, nonVertID2: gEnd},
		}
	}

	// Neither vertical.
	slope1 := v1.Y / v1.X
	slope2 := v2.Y / v2.X
	diff := slope1 - slope2
	errVal := diff * diff
	if errVal < parallelZeroGradient {
		return Violation{ConstraintID: c.ID, Error: errVal}
	}

	dErrdSlope1 := 2 * diff
	dErrdSlope2 := -2 * diff

	g1End := Grad{X: dErrdSlope1 * (-v1.Y / (v1.X * v1.X)), Y: dErrdSlope1 * (1 / v1.X)}.Scale(scale)
	g1Start := g1End.Scale(-1)
	g2End := Grad{X: dErrdSlope2 * (-v2.Y / (v2.X * v2.X)), Y: dErrdSlope2 * (1 / v2.X)}.Scale(scale)
	g2Start := g2End.Scale(-1)

	return Violation{
		ConstraintID: c.ID,
		Error:        errVal,
		Gradient: map[string]Grad{
			l1.Point1: g1Start, l1.Point2: g1End,
			l2.Point1: g2Start, l2.Point2: g2End,
		},
	}
}

// harmonicMean returns the harmonic mean of two positive numbers.
func harmonicMean(a, b float64) float64 {
	return 2 / (1/a + 1/b)
}
