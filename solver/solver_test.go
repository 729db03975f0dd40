package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sketchforge/geoconstraint/geom"
	"github.com/sketchforge/geoconstraint/solver"
)

func val(f float64) *float64 { return &f }

func dist(p1, p2 geom.Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// TestSolve_DistanceAnchor anchors p1 at the origin and pulls p2 to
// distance 10 from it.
func TestSolve_DistanceAnchor(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(3, 4)
	g, _, err := g.AddConstraint(geom.KindX, []string{p1}, val(0))
	require.NoError(t, err)
	g, _, err = g.AddConstraint(geom.KindY, []string{p1}, val(0))
	require.NoError(t, err)
	g, _, err = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(10))
	require.NoError(t, err)

	s := solver.New()
	res := s.Solve(g)

	require.True(t, res.Success)
	pt1, _ := res.Geometry.Point(p1)
	pt2, _ := res.Geometry.Point(p2)
	assert.InDelta(t, 0, pt1.X, 1e-3)
	assert.InDelta(t, 0, pt1.Y, 1e-3)
	assert.InDelta(t, 10, dist(pt1, pt2), 1e-2)
}

// TestSolve_EquilateralTriangle checks that three pairwise distance
// constraints of 6 converge within 500 iterations.
func TestSolve_EquilateralTriangle(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(10, 0)
	g, p3, _ := g.AddPoint(5, 5)
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(6))
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p2, p3}, val(6))
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p3}, val(6))

	s := solver.New(solver.WithMaxIterations(500))
	res := s.Solve(g)

	require.True(t, res.Success)
	assert.LessOrEqual(t, res.Iterations, 500)
	pt1, _ := res.Geometry.Point(p1)
	pt2, _ := res.Geometry.Point(p2)
	pt3, _ := res.Geometry.Point(p3)
	assert.InDelta(t, 6, dist(pt1, pt2), 1e-2)
	assert.InDelta(t, 6, dist(pt2, pt3), 1e-2)
	assert.InDelta(t, 6, dist(pt1, pt3), 1e-2)
}

// TestSolve_RightTriangleMixedConstraints builds an anchored right-angle
// corner from horizontal/vertical lines plus two distance constraints and
// checks it reaches a 3-4-5 triangle.
func TestSolve_RightTriangleMixedConstraints(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(5, 0)
	g, p3, _ := g.AddPoint(0, 3)
	g, _, _ = g.AddConstraint(geom.KindX, []string{p1}, val(0))
	g, _, _ = g.AddConstraint(geom.KindY, []string{p1}, val(0))
	g, l1, _ := g.AddLine(p1, p2)
	g, l2, _ := g.AddLine(p1, p3)
	g, _, _ = g.AddConstraint(geom.KindHorizontal, []string{l1}, nil)
	g, _, _ = g.AddConstraint(geom.KindVertical, []string{l2}, nil)
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(4))
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p3}, val(3))

	s := solver.New()
	res := s.Solve(g)

	pt1, _ := res.Geometry.Point(p1)
	pt2, _ := res.Geometry.Point(p2)
	pt3, _ := res.Geometry.Point(p3)
	assert.InDelta(t, 4, dist(pt1, pt2), 1e-1)
	assert.InDelta(t, 3, dist(pt1, pt3), 1e-1)
	assert.InDelta(t, 5, dist(pt2, pt3), 1e-1)
	assert.InDelta(t, pt1.Y, pt2.Y, 1e-1)
	assert.InDelta(t, pt1.X, pt3.X, 1e-1)
}

// TestSolve_NPointSameX checks that three points constrained to share an
// x coordinate converge to a common vertical line.
func TestSolve_NPointSameX(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(200, 200)
	g, p2, _ := g.AddPoint(300, 250)
	g, p3, _ := g.AddPoint(400, 300)
	g, _, _ = g.AddConstraint(geom.KindY, []string{p1}, val(200))
	g, _, _ = g.AddConstraint(geom.KindSameX, []string{p1, p2, p3}, nil)

	s := solver.New()
	res := s.Solve(g)

	pt1, _ := res.Geometry.Point(p1)
	pt2, _ := res.Geometry.Point(p2)
	pt3, _ := res.Geometry.Point(p3)
	assert.InDelta(t, pt1.X, pt2.X, 1e-2)
	assert.InDelta(t, pt2.X, pt3.X, 1e-2)
}

// TestSolve_NinetyDegreeAngle checks that an angle constraint pinned at
// 90 degrees converges to a right angle at the vertex.
func TestSolve_NinetyDegreeAngle(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(1, 1)
	g, vtx, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(2, 0)
	g, _, _ = g.AddConstraint(geom.KindX, []string{vtx}, val(0))
	g, _, _ = g.AddConstraint(geom.KindY, []string{vtx}, val(0))
	g, _, _ = g.AddConstraint(geom.KindX, []string{p2}, val(2))
	g, _, _ = g.AddConstraint(geom.KindY, []string{p2}, val(0))
	g, _, _ = g.AddConstraint(geom.KindAngle, []string{p1, vtx, p2}, val(90))

	s := solver.New()
	res := s.Solve(g)

	pt1, _ := res.Geometry.Point(p1)
	ptv, _ := res.Geometry.Point(vtx)
	pt2, _ := res.Geometry.Point(p2)
	a := geom.Point{X: pt1.X - ptv.X, Y: pt1.Y - ptv.Y}
	b := geom.Point{X: pt2.X - ptv.X, Y: pt2.Y - ptv.Y}
	cosSim := (a.X*b.X + a.Y*b.Y) / (math.Hypot(a.X, a.Y) * math.Hypot(b.X, b.Y))
	angleDeg := math.Acos(cosSim) * 180 / math.Pi
	assert.InDelta(t, 90, angleDeg, 1)
}

// TestSolve_OverConstrainedDistanceReportsFailure checks that two
// contradictory distance constraints on the same pair of points, which can
// never both be satisfied, make the solver report failure with a
// compromise position.
func TestSolve_OverConstrainedDistanceReportsFailure(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(1, 0)
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(5))
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(10))

	s := solver.New()
	res := s.Solve(g)

	assert.False(t, res.Success)
	assert.Greater(t, res.Iterations, 0)
}

// TestSolve_IdempotentOnSatisfiedGeometry checks that solving an
// already-satisfied geometry changes nothing and finishes in at most one
// iteration.
func TestSolve_IdempotentOnSatisfiedGeometry(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(3, 4)
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(5))

	s := solver.New()
	res := s.Solve(g)

	require.True(t, res.Success)
	assert.LessOrEqual(t, res.Iterations, 1)
	pt2, _ := res.Geometry.Point(p2)
	assert.InDelta(t, 3, pt2.X, 1e-3)
	assert.InDelta(t, 4, pt2.Y, 1e-3)
}

// TestSolve_DoesNotMutateInputGeometry checks the non-mutation guarantee
// directly: the caller's Geometry value must read the same before and
// after Solve.
func TestSolve_DoesNotMutateInputGeometry(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(3, 4)
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(10))

	before, _ := g.Point(p2)
	s := solver.New()
	_ = s.Solve(g)
	after, _ := g.Point(p2)

	assert.Equal(t, before, after)
}

// TestSolve_NoOpConstraintDoesNotAffectOutcome checks that a dangling
// constraint does not change the solve's error or final geometry.
func TestSolve_NoOpConstraintDoesNotAffectOutcome(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(3, 4)
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(10))

	withNoop := g
	withNoop, _, _ = withNoop.AddConstraint(geom.KindDistance, []string{p1, "missing"}, val(99))

	s1 := solver.New()
	s2 := solver.New()
	res := s1.Solve(g)
	resNoop := s2.Solve(withNoop)

	assert.Equal(t, res.Success, resNoop.Success)
	assert.InDelta(t, res.FinalError, resNoop.FinalError, 1e-9)
}

func TestSolve_ResetClearsVelocities(t *testing.T) {
	g := geom.NewGeometry()
	g, p1, _ := g.AddPoint(0, 0)
	g, p2, _ := g.AddPoint(3, 4)
	g, _, _ = g.AddConstraint(geom.KindDistance, []string{p1, p2}, val(10))

	s := solver.New()
	first := s.Solve(g)
	s.Reset()
	second := s.Solve(g)

	assert.Equal(t, first.Success, second.Success)
	assert.Equal(t, first.Iterations, second.Iterations)
}
