package constraint

import "github.com/sketchforge/geoconstraint/geom"

// SatisfactionThreshold is tau (τ), the single numerical tolerance shared
// between the solver's success test and user-facing "constraint satisfied"
// reporting. It bounds |residual|; evaluators and callers comparing against
// squared error use SatisfactionThreshold*SatisfactionThreshold.
const SatisfactionThreshold = 1e-3

// Grad is a pair of partial derivatives (∂error/∂x, ∂error/∂y) for one point.
type Grad struct {
	X, Y float64
}

// Add returns the component-wise sum of g and other.
func (g Grad) Add(other Grad) Grad {
	return Grad{g.X + other.X, g.Y + other.Y}
}

// Scale returns g with both components multiplied by factor.
func (g Grad) Scale(factor float64) Grad {
	return Grad{g.X * factor, g.Y * factor}
}

// Violation is the result of evaluating one constraint: its squared
// residual ("error") and the gradient of that error with respect to every
// point it depends on. Points that do not appear in the residual have no
// entry in Gradient — this is how the solver knows which points a
// constraint can move.
type Violation struct {
	ConstraintID string
	Error        float64
	Gradient     map[string]Grad
}

// Satisfied reports whether the residual that produced v is within
// SatisfactionThreshold, i.e. v.Error <= τ².
func (v Violation) Satisfied() bool {
	return v.Error <= SatisfactionThreshold*SatisfactionThreshold
}

// noop is the shared zero-error, empty-gradient result returned whenever a
// constraint cannot be evaluated against the current geometry: missing
// entities, wrong arity, missing value, or a degenerate configuration.
func noop(id string) Violation {
	return Violation{ConstraintID: id}
}

// Evaluator evaluates constraints against a Geometry. It carries no state;
// the zero value is ready to use. It exists, rather than a bare function,
// so the evaluation surface can grow methods (caching, instrumentation)
// without breaking callers.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() Evaluator { return Evaluator{} }

// Evaluate dispatches constraint against geometry and returns its
// ConstraintViolation. It is a pure function: calling it twice with equal
// arguments yields equal results, and it never mutates geometry.
func (Evaluator) Evaluate(c geom.Constraint, g geom.Geometry) Violation {
	switch c.Kind {
	case geom.KindDistance:
		return evalDistanceConstraint(c, g)
	case geom.KindXDistance:
		return evalAxisDistance(c, g, axisX)
	case geom.KindYDistance:
		return evalAxisDistance(c, g, axisY)
	case geom.KindHorizontal:
		return evalAlignment(c, g, axisY)
	case geom.KindVertical:
		return evalAlignment(c, g, axisX)
	case geom.KindSameX:
		return evalAlignment(c, g, axisX)
	case geom.KindSameY:
		return evalAlignment(c, g, axisY)
	case geom.KindParallel:
		return evalParallel(c, g)
	case geom.KindPerpendicular:
		return evalPerpendicular(c, g)
	case geom.KindAngle:
		return evalAngle(c, g)
	case geom.KindX:
		return evalAxisPosition(c, g, axisX)
	case geom.KindY:
		return evalAxisPosition(c, g, axisY)
	case geom.KindRadius:
		return evalRadius(c, g)
	case geom.KindPointOnCircle:
		return evalPointOnCircle(c, g)
	case geom.KindLineTangentToCircle:
		return evalLineTangentToCircle(c, g)
	default:
		return noop(c.ID)
	}
}

// axis selects which coordinate an evaluator reads/writes.
type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) of(p geom.Point) float64 {
	if a == axisX {
		return p.X
	}
	return p.Y
}

// Priority returns the default aggregation-weight multiplier for kind,
// used when the solver normalizes gradients across constraints of very
// different magnitude. Unlisted kinds default to 1.0.
func Priority(kind geom.Kind) float64 {
	switch kind {
	case geom.KindX, geom.KindY:
		return 1.5
	case geom.KindDistance, geom.KindXDistance, geom.KindYDistance:
		return 1.3
	case geom.KindHorizontal, geom.KindVertical:
		return 1.2
	case geom.KindSameX, geom.KindSameY:
		return 1.1
	case geom.KindAngle:
		return 1.0
	case geom.KindParallel, geom.KindPerpendicular:
		return 0.9
	case geom.KindRadius:
		return 0.8
	default:
		return 1.0
	}
}
