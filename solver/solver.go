package solver

import (
	"math"

	"github.com/sketchforge/geoconstraint/constraint"
	"github.com/sketchforge/geoconstraint/geom"
)

// Solver runs the momentum gradient-descent loop described in package doc.
// The zero value is not ready to use; construct one with New.
type Solver struct {
	opts       Options
	evaluator  constraint.Evaluator
	velocities map[string]constraint.Grad
	state      runState
}

// New returns a Solver configured with DefaultOptions, as overridden by opts.
func New(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{
		opts:       cfg,
		evaluator:  constraint.NewEvaluator(),
		velocities: make(map[string]constraint.Grad),
		state:      stateIdle,
	}
}

// Reset clears accumulated velocities and returns the Solver to its initial
// state, so the next Solve call starts its momentum from zero instead of
// carrying state over from an unrelated geometry. It is safe to call on a
// fresh or already-idle Solver.
func (s *Solver) Reset() {
	s.velocities = make(map[string]constraint.Grad)
	s.state = stateIdle
}

// Solve drives g toward a configuration satisfying all of its constraints
// and returns the outcome. g itself is never mutated — Geometry's mutators
// all return new values — so the caller's copy is untouched regardless of
// how Solve's internal working copy evolves.
func (s *Solver) Solve(g geom.Geometry) Result {
	s.state = stateRunning
	working := g

	iterations := 0
	for iterations < s.opts.MaxIterations {
		violations := s.evaluateAll(working)
		if allSatisfied(violations) {
			s.state = stateConverged
			return s.result(true, iterations, working)
		}

		agg := aggregate(nonZero(violations))
		if len(agg) == 0 {
			s.state = stateStagnated
			return s.result(false, iterations, working)
		}

		moved := false
		for pointID, grad := range agg {
			vel := s.velocities[pointID].Scale(s.opts.Momentum).Add(grad.Scale(-s.opts.LearningRate))
			s.velocities[pointID] = vel
			if math.Abs(vel.X) > s.opts.MovementTolerance || math.Abs(vel.Y) > s.opts.MovementTolerance {
				moved = true
			}
			p, ok := working.Point(pointID)
			if !ok {
				continue
			}
			next, err := working.ReplacePoint(pointID, p.X+vel.X, p.Y+vel.Y)
			if err != nil {
				continue
			}
			working = next
		}
		iterations++

		if !moved {
			s.state = stateStagnated
			return s.result(allSatisfied(s.evaluateAll(working)), iterations, working)
		}
	}

	finalViolations := s.evaluateAll(working)
	success := allSatisfied(finalViolations)
	if success {
		s.state = stateConverged
	} else {
		s.state = stateExhausted
	}
	return s.result(success, iterations, working)
}

func (s *Solver) result(success bool, iterations int, working geom.Geometry) Result {
	final := s.evaluateAll(working)
	s.state = stateIdle
	return Result{
		Success:    success,
		Iterations: iterations,
		FinalError: totalError(final),
		Geometry:   working,
	}
}

func (s *Solver) evaluateAll(g geom.Geometry) []weighted {
	cs := g.Constraints()
	out := make([]weighted, len(cs))
	for i, c := range cs {
		out[i] = weighted{kind: c.Kind, v: s.evaluator.Evaluate(c, g)}
	}
	return out
}

func allSatisfied(ws []weighted) bool {
	for _, w := range ws {
		if !w.v.Satisfied() {
			return false
		}
	}
	return true
}

func nonZero(ws []weighted) []weighted {
	out := make([]weighted, 0, len(ws))
	for _, w := range ws {
		if w.v.Error > 0 {
			out = append(out, w)
		}
	}
	return out
}

func totalError(ws []weighted) float64 {
	sum := 0.0
	for _, w := range ws {
		sum += w.v.Error
	}
	return sum
}
