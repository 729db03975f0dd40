package constraint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchforge/geoconstraint/constraint"
	"github.com/sketchforge/geoconstraint/geom"
)

func val(f float64) *float64 { return &f }

func TestEvaluate_DistanceSatisfiedHasNearZeroError(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(3, 4)
	g, kid, err := g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(5))
	require.NoError(t, err)
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	assert.True(t, v.Satisfied())
	assert.InDelta(t, 0, v.Error, 1e-9)
}

func TestEvaluate_DistanceDegenerateCoincidentPoints(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(2, 2)
	g, p2, _ := g.AddPoint(2, 2)
	g, kid, _ := g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(5))
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	assert.InDelta(t, 25, v.Error, 1e-9, "coincident points still report error = v^2")
	assert.Empty(t, v.Gradient, "coincident points cannot supply a direction")
}

func TestEvaluate_DanglingReferenceIsNoOp(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, kid, _ := g.AddConstraint(geom.KindDistance, []string{p1, "missing"}, val(5))
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	assert.Zero(t, v.Error)
	assert.Empty(t, v.Gradient)
}

func TestEvaluate_IsPure(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(1, 1)
	g, kid, _ := g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(5))
	c, _ := g.Constraint(kid)

	first := ev.Evaluate(c, g)
	second := ev.Evaluate(c, g)
	assert.Equal(t, first, second)

	// Evaluating must not mutate the geometry's points.
	p1After, _ := g.Point(p1)
	assert.Equal(t, 0.0, p1After.X)
}

func TestEvaluate_HorizontalLineAndPointFormsAgree(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(5, 3)
	g, lineID, _ := g.AddLine(p1, p2)
	g, kid, _ := g.AddConstraint(geom.KindHorizontal, []string{lineID}, nil)
	c, _ := g.Constraint(kid)

	viaLine := ev.Evaluate(c, g)

	g2 := geom.NewGeometry()
	g2, q1, _ := g2.AddPoint(0, 0)
	g2, q2, _ := g2.AddPoint(5, 3)
	g2, kid2, _ := g2.AddConstraint(geom.KindHorizontal, []string{q1, q2}, nil)
	c2, _ := g2.Constraint(kid2)
	viaPoints := ev.Evaluate(c2, g2)

	assert.InDelta(t, viaLine.Error, viaPoints.Error, 1e-9)
}

func TestEvaluate_SameXAccumulatesAcrossConsecutivePairs(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(200, 200)
	g, p2, _ := g.AddPoint(300, 250)
	g, p3, _ := g.AddPoint(400, 300)
	g, kid, _ := g.AddConstraint(geom.KindSameX, []string{p1, p2, p3}, nil)
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	expected := math.Pow(200-300, 2) + math.Pow(300-400, 2)
	assert.InDelta(t, expected, v.Error, 1e-9)
	assert.Len(t, v.Gradient, 3, "all three points participate in a consecutive pair")
}

func TestEvaluate_ParallelBothVertical(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(0, 5)
	g, p3, _ := g.AddPoint(2, 0)
	g, p4, _ := g.AddPoint(2, 7)
	g, l1, _ := g.AddLine(p1, p2)
	g, l2, _ := g.AddLine(p3, p4)
	g, kid, _ := g.AddConstraint(geom.KindParallel, []string{l1, l2}, nil)
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	assert.Zero(t, v.Error)
}

func TestEvaluate_PerpendicularDegenerateZeroLengthLine(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(0, 0)
	g, p3, _ := g.AddPoint(1, 0)
	g, p4, _ := g.AddPoint(1, 1)
	g, l1, _ := g.AddLine(p1, p2)
	g, l2, _ := g.AddLine(p3, p4)
	g, kid, _ := g.AddConstraint(geom.KindPerpendicular, []string{l1, l2}, nil)
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	assert.Zero(t, v.Error)
	assert.Empty(t, v.Gradient)
}

func TestEvaluate_PointOnCircle(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, center, _ := g.AddPoint(0, 0)
	g, circleID, _, _ := g.AddCircle(center, 5)
	g, p, _ := g.AddPoint(5, 5) // distance from origin is sqrt(50) != 5
	g, kid, _ := g.AddConstraint(geom.KindPointOnCircle, []string{p, circleID}, nil)
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	want := math.Hypot(5, 5) - 5
	assert.InDelta(t, want*want, v.Error, 1e-9)
	assert.Contains(t, v.Gradient, p)
	assert.Contains(t, v.Gradient, center)
}

func TestEvaluate_LineTangentToCircle(t *testing.T) {
	ev := constraint.NewEvaluator()
	g := geom.NewGeometry()
	g, center, _ := g.AddPoint(0, 0)
	g, circleID, _, _ := g.AddCircle(center, 3)
	g, p1, _ := g.AddPoint(-5, 5)
	g, p2, _ := g.AddPoint(5, 5) // horizontal line y=5, perpendicular distance from origin is 5
	g, lineID, _ := g.AddLine(p1, p2)
	g, kid, _ := g.AddConstraint(geom.KindLineTangentToCircle, []string{lineID, circleID}, nil)
	c, _ := g.Constraint(kid)

	v := ev.Evaluate(c, g)
	want := 5.0 - 3.0
	assert.InDelta(t, want*want, v.Error, 1e-6)
}

func TestPriority_DefaultAggregationWeights(t *testing.T) {
	assert.Equal(t, 1.5, constraint.Priority(geom.KindX))
	assert.Equal(t, 1.3, constraint.Priority(geom.KindDistance))
	assert.Equal(t, 0.8, constraint.Priority(geom.KindRadius))
	assert.Equal(t, 1.0, constraint.Priority(geom.KindAngle))
}
